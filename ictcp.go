// seehuhn.de/go/color - colour space conversions for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package color

import (
	stdcolor "image/color"
	"math"
)

// The ICtCp matrices from Rec. ITU-R BT.2100-2.
var (
	ictcpRGBToLMS = Matrix{
		1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096,
		683.0 / 4096, 2951.0 / 4096, 462.0 / 4096,
		99.0 / 4096, 309.0 / 4096, 3688.0 / 4096,
	}
	ictcpLMSToRGB = ictcpRGBToLMS.Inverse()

	ictcpLMSToICtCp = Matrix{
		0.5, 0.5, 0,
		6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096,
		17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096,
	}
	ictcpICtCpToLMS = ictcpLMSToICtCp.Inverse()
)

// Constants of the SMPTE ST 2084 perceptual quantizer.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// pqOETF encodes a linear light value in [0, 1] with the PQ curve.
func pqOETF(x float64) float64 {
	if x < 0 {
		x = 0
	}
	xp := math.Pow(x, pqM1)
	return math.Pow((pqC1+pqC2*xp)/(1+pqC3*xp), pqM2)
}

// pqEOTF is the inverse of pqOETF.
func pqEOTF(x float64) float64 {
	if x < 0 {
		x = 0
	}
	xp := math.Pow(x, 1/pqM2)
	num := xp - pqC1
	if num < 0 {
		num = 0
	}
	return math.Pow(num/(pqC2-pqC3*xp), 1/pqM1)
}

// ictcpFromBT2020 converts linear BT.2020 components to ICtCp.
func ictcpFromBT2020(r, g, b, alpha float64) ICtCp {
	l, m, s := ictcpRGBToLMS.Mul(r, g, b)
	i, ct, cp := ictcpLMSToICtCp.Mul(pqOETF(l), pqOETF(m), pqOETF(s))
	return ICtCp{I: i, Ct: ct, Cp: cp, Alpha: alpha}
}

// ICtCp is a colour in the ITU-R BT.2100 ICtCp space: a PQ-encoded
// intensity component I and the two chroma components Ct ("tritan") and
// Cp ("protan").
type ICtCp struct {
	I, Ct, Cp float64
	Alpha     float64
}

// Model implements the [Color] interface.
func (c ICtCp) Model() Model {
	return ModelICtCp
}

// Values implements the [Color] interface.
func (c ICtCp) Values() []float64 {
	return []float64{c.I, c.Ct, c.Cp, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c ICtCp) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// BT2020 converts the colour into the BT.2020 colour space on the direct
// path, bypassing XYZ.
func (c ICtCp) BT2020() RGB {
	lp, mp, sp := ictcpICtCpToLMS.Mul(c.I, c.Ct, c.Cp)
	r, g, b := ictcpLMSToRGB.Mul(pqEOTF(lp), pqEOTF(mp), pqEOTF(sp))
	tf := BT2020.tf
	return RGB{
		R:     tf.OETF(r),
		G:     tf.OETF(g),
		B:     tf.OETF(b),
		Alpha: c.Alpha,
		Space: BT2020,
	}
}

// XYZ converts the colour to tristimulus values relative to D65.
func (c ICtCp) XYZ() XYZ {
	return c.BT2020().XYZ()
}

// ICtCp implements the [Color] interface.
func (c ICtCp) ICtCp() ICtCp {
	return c
}

func (c ICtCp) SRGB() RGB    { return c.XYZ().SRGB() }
func (c ICtCp) Lab() Lab     { return c.XYZ().Lab() }
func (c ICtCp) LCh() LCh     { return c.XYZ().LCh() }
func (c ICtCp) Luv() Luv     { return c.XYZ().Luv() }
func (c ICtCp) HCL() HCL     { return c.XYZ().HCL() }
func (c ICtCp) Oklab() Oklab { return c.XYZ().Oklab() }
func (c ICtCp) Oklch() Oklch { return c.XYZ().Oklch() }

func (c ICtCp) HSL() HSL   { return c.SRGB().HSL() }
func (c ICtCp) HSV() HSV   { return c.SRGB().HSV() }
func (c ICtCp) HWB() HWB   { return c.SRGB().HWB() }
func (c ICtCp) CMYK() CMYK { return c.SRGB().CMYK() }

func (c ICtCp) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c ICtCp) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// == ICtCp model ============================================================

// ModelICtCp is the colour model of [ICtCp] values.
var ModelICtCp Model = modelICtCp{}

type modelICtCp struct{}

func (modelICtCp) Name() string     { return "ICtCp" }
func (modelICtCp) Channels() int    { return 3 }
func (modelICtCp) Polar(i int) bool { return false }

func (modelICtCp) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("ICtCp", values, 3)
	if err != nil {
		return nil, err
	}
	return ICtCp{I: v[0], Ct: v[1], Cp: v[2], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelICtCp) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).ICtCp()
}
