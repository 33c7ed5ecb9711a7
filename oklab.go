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

// The Oklab matrices, from Björn Ottosson's reference implementation.
// The XYZ pair is relative to D65.
var (
	oklabXYZToLMS = Matrix{
		0.8190224432164319, 0.3619062562801221, -0.12887378261216414,
		0.0329836671980271, 0.9292868468965546, 0.03614466816999844,
		0.048177199566046255, 0.26423952494422764, 0.6335478258136937,
	}
	oklabLMSToXYZ = Matrix{
		1.2268798733741557, -0.5578149965554813, 0.28139105017721583,
		-0.04057576262431372, 1.1122868293970594, -0.07171106666151701,
		-0.07637294974672142, -0.4214933239627914, 1.5869240244272418,
	}
	oklabLMSToOklab = Matrix{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}
	oklabOklabToLMS = Matrix{
		0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339,
		1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402,
		1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399,
	}

	// The direct path between linear sRGB and the LMS-like intermediate,
	// bypassing XYZ.
	oklabSRGBToLMS = Matrix{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	}
	oklabLMSToSRGB = Matrix{
		4.0767416621, -3.3077115913, 0.2309699292,
		-1.2684380046, 2.6097574011, -0.3413193965,
		-0.0041960863, -0.7034186147, 1.7076147010,
	}
)

// oklabFromLinearSRGB converts linear sRGB components to Oklab on the
// direct path.
func oklabFromLinearSRGB(r, g, b, alpha float64) Oklab {
	l, m, s := oklabSRGBToLMS.Mul(r, g, b)
	ll, aa, bb := oklabLMSToOklab.Mul(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return Oklab{L: ll, A: aa, B: bb, Alpha: alpha}
}

// Oklab is a colour in the Oklab perceptual space.  The lightness L is
// nominally in [0, 1].  Oklab is always relative to D65.
type Oklab struct {
	L, A, B float64
	Alpha   float64
}

// Model implements the [Color] interface.
func (c Oklab) Model() Model {
	return ModelOklab
}

// Values implements the [Color] interface.
func (c Oklab) Values() []float64 {
	return []float64{c.L, c.A, c.B, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Oklab) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space on the direct
// path, bypassing XYZ.
func (c Oklab) SRGB() RGB {
	l, m, s := oklabOklabToLMS.Mul(c.L, c.A, c.B)
	r, g, b := oklabLMSToSRGB.Mul(l*l*l, m*m*m, s*s*s)
	tf := SRGB.tf
	return RGB{
		R:     tf.OETF(r),
		G:     tf.OETF(g),
		B:     tf.OETF(b),
		Alpha: c.Alpha,
		Space: SRGB,
	}
}

// XYZ converts the colour to tristimulus values relative to D65.
func (c Oklab) XYZ() XYZ {
	l, m, s := oklabOklabToLMS.Mul(c.L, c.A, c.B)
	x, y, z := oklabLMSToXYZ.Mul(l*l*l, m*m*m, s*s*s)
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, Space: XYZD65}
}

// Oklab implements the [Color] interface.
func (c Oklab) Oklab() Oklab {
	return c
}

// Oklch converts the colour to its polar form.  The hue is in [0, 360).
func (c Oklab) Oklch() Oklch {
	return Oklch{
		L:     c.L,
		C:     math.Hypot(c.A, c.B),
		H:     normDeg(radToDeg(math.Atan2(c.B, c.A))),
		Alpha: c.Alpha,
	}
}

func (c Oklab) Lab() Lab     { return c.XYZ().Lab() }
func (c Oklab) LCh() LCh     { return c.XYZ().LCh() }
func (c Oklab) Luv() Luv     { return c.XYZ().Luv() }
func (c Oklab) HCL() HCL     { return c.XYZ().HCL() }
func (c Oklab) ICtCp() ICtCp { return c.XYZ().ICtCp() }

func (c Oklab) HSL() HSL   { return c.SRGB().HSL() }
func (c Oklab) HSV() HSV   { return c.SRGB().HSV() }
func (c Oklab) HWB() HWB   { return c.SRGB().HWB() }
func (c Oklab) CMYK() CMYK { return c.SRGB().CMYK() }

func (c Oklab) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c Oklab) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// Oklch is the polar form of [Oklab]: lightness, chroma, and a hue angle
// in degrees.
type Oklch struct {
	L, C, H float64
	Alpha   float64
}

// Model implements the [Color] interface.
func (c Oklch) Model() Model {
	return ModelOklch
}

// Values implements the [Color] interface.
func (c Oklch) Values() []float64 {
	return []float64{c.L, c.C, c.H, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Oklch) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// Oklab converts the colour back to rectangular form.
func (c Oklch) Oklab() Oklab {
	return Oklab{
		L:     c.L,
		A:     c.C * math.Cos(degToRad(c.H)),
		B:     c.C * math.Sin(degToRad(c.H)),
		Alpha: c.Alpha,
	}
}

// Oklch implements the [Color] interface.
func (c Oklch) Oklch() Oklch {
	return c
}

func (c Oklch) SRGB() RGB    { return c.Oklab().SRGB() }
func (c Oklch) XYZ() XYZ     { return c.Oklab().XYZ() }
func (c Oklch) Lab() Lab     { return c.Oklab().Lab() }
func (c Oklch) LCh() LCh     { return c.Oklab().LCh() }
func (c Oklch) Luv() Luv     { return c.Oklab().Luv() }
func (c Oklch) HCL() HCL     { return c.Oklab().HCL() }
func (c Oklch) ICtCp() ICtCp { return c.Oklab().ICtCp() }

func (c Oklch) HSL() HSL   { return c.SRGB().HSL() }
func (c Oklch) HSV() HSV   { return c.SRGB().HSV() }
func (c Oklch) HWB() HWB   { return c.SRGB().HWB() }
func (c Oklch) CMYK() CMYK { return c.SRGB().CMYK() }

func (c Oklch) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c Oklch) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// == Oklab and Oklch models =================================================

// ModelOklab is the colour model of [Oklab] values.
var ModelOklab Model = modelOklab{}

type modelOklab struct{}

func (modelOklab) Name() string     { return "Oklab" }
func (modelOklab) Channels() int    { return 3 }
func (modelOklab) Polar(i int) bool { return false }

func (modelOklab) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("Oklab", values, 3)
	if err != nil {
		return nil, err
	}
	return Oklab{L: v[0], A: v[1], B: v[2], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelOklab) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Oklab()
}

// ModelOklch is the colour model of [Oklch] values.  The hue component at
// index 2 is a polar angle.
var ModelOklch Model = modelOklch{}

type modelOklch struct{}

func (modelOklch) Name() string     { return "Oklch" }
func (modelOklch) Channels() int    { return 3 }
func (modelOklch) Polar(i int) bool { return i == 2 }

func (modelOklch) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("Oklch", values, 3)
	if err != nil {
		return nil, err
	}
	return Oklch{L: v[0], C: v[1], H: normDeg(v[2]), Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelOklch) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Oklch()
}
