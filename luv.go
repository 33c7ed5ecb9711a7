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

// Luv is a colour in the CIE 1976 L*u*v* space.
//
// The zero value of WhitePoint is replaced by D65.
type Luv struct {
	L, U, V    float64
	Alpha      float64
	WhitePoint Illuminant
}

func (c Luv) whitePoint() Illuminant {
	if c.WhitePoint == (Illuminant{}) {
		return WhitePointD65
	}
	return c.WhitePoint
}

// Model implements the [Color] interface.
func (c Luv) Model() Model {
	return ModelLuv
}

// Values implements the [Color] interface.
func (c Luv) Values() []float64 {
	return []float64{c.L, c.U, c.V, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Luv) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// XYZ converts the colour to tristimulus values, keeping the white point.
// A colour with L==0 is black regardless of u and v.
func (c Luv) XYZ() XYZ {
	wp := c.whitePoint()
	if c.L == 0 {
		return XYZ{Alpha: c.Alpha, Space: xyzSpaceFor(wp)}
	}

	un, vn := uvPrime(wp.X, wp.Y, wp.Z)
	up := c.U/(13*c.L) + un
	vp := c.V/(13*c.L) + vn

	var yr float64
	if c.L > cieEK {
		fy := (c.L + 16) / 116
		yr = fy * fy * fy
	} else {
		yr = c.L / cieK
	}
	y := yr * wp.Y

	if vp == 0 {
		return XYZ{Y: y, Alpha: c.Alpha, Space: xyzSpaceFor(wp)}
	}
	return XYZ{
		X:     y * 9 * up / (4 * vp),
		Y:     y,
		Z:     y * (12 - 3*up - 20*vp) / (4 * vp),
		Alpha: c.Alpha,
		Space: xyzSpaceFor(wp),
	}
}

// Luv implements the [Color] interface.
func (c Luv) Luv() Luv {
	return c
}

// HCL converts the colour to its polar form.  The hue is in [0, 360).
func (c Luv) HCL() HCL {
	return HCL{
		H:          normDeg(radToDeg(math.Atan2(c.V, c.U))),
		C:          math.Hypot(c.U, c.V),
		L:          c.L,
		Alpha:      c.Alpha,
		WhitePoint: c.WhitePoint,
	}
}

func (c Luv) SRGB() RGB    { return c.XYZ().SRGB() }
func (c Luv) Lab() Lab     { return c.XYZ().Lab() }
func (c Luv) LCh() LCh     { return c.XYZ().LCh() }
func (c Luv) Oklab() Oklab { return c.XYZ().Oklab() }
func (c Luv) Oklch() Oklch { return c.XYZ().Oklch() }
func (c Luv) ICtCp() ICtCp { return c.XYZ().ICtCp() }

func (c Luv) HSL() HSL   { return c.SRGB().HSL() }
func (c Luv) HSV() HSV   { return c.SRGB().HSV() }
func (c Luv) HWB() HWB   { return c.SRGB().HWB() }
func (c Luv) CMYK() CMYK { return c.SRGB().CMYK() }

func (c Luv) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c Luv) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// HCL is the polar form of [Luv]: a hue angle in degrees, chroma, and
// lightness.
//
// The zero value of WhitePoint is replaced by D65.
type HCL struct {
	H, C, L    float64
	Alpha      float64
	WhitePoint Illuminant
}

// Model implements the [Color] interface.
func (c HCL) Model() Model {
	return ModelHCL
}

// Values implements the [Color] interface.
func (c HCL) Values() []float64 {
	return []float64{c.H, c.C, c.L, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c HCL) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// Luv converts the colour back to rectangular form.
func (c HCL) Luv() Luv {
	return Luv{
		L:          c.L,
		U:          c.C * math.Cos(degToRad(c.H)),
		V:          c.C * math.Sin(degToRad(c.H)),
		Alpha:      c.Alpha,
		WhitePoint: c.WhitePoint,
	}
}

// HCL implements the [Color] interface.
func (c HCL) HCL() HCL {
	return c
}

func (c HCL) SRGB() RGB    { return c.Luv().SRGB() }
func (c HCL) XYZ() XYZ     { return c.Luv().XYZ() }
func (c HCL) Lab() Lab     { return c.Luv().Lab() }
func (c HCL) LCh() LCh     { return c.Luv().LCh() }
func (c HCL) Oklab() Oklab { return c.Luv().Oklab() }
func (c HCL) Oklch() Oklch { return c.Luv().Oklch() }
func (c HCL) ICtCp() ICtCp { return c.Luv().ICtCp() }

func (c HCL) HSL() HSL   { return c.SRGB().HSL() }
func (c HCL) HSV() HSV   { return c.SRGB().HSV() }
func (c HCL) HWB() HWB   { return c.SRGB().HWB() }
func (c HCL) CMYK() CMYK { return c.SRGB().CMYK() }

func (c HCL) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c HCL) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// == Luv and HCL models =====================================================

// ModelLuv is the colour model of [Luv] values.  Colours constructed
// through the model are relative to D65.
var ModelLuv Model = modelLuv{}

type modelLuv struct{}

func (modelLuv) Name() string     { return "Luv" }
func (modelLuv) Channels() int    { return 3 }
func (modelLuv) Polar(i int) bool { return false }

func (modelLuv) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("Luv", values, 3)
	if err != nil {
		return nil, err
	}
	return Luv{L: v[0], U: v[1], V: v[2], Alpha: alpha, WhitePoint: WhitePointD65}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelLuv) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Luv()
}

// ModelHCL is the colour model of [HCL] values.  The hue component at
// index 0 is a polar angle.
var ModelHCL Model = modelHCL{}

type modelHCL struct{}

func (modelHCL) Name() string     { return "HCL" }
func (modelHCL) Channels() int    { return 3 }
func (modelHCL) Polar(i int) bool { return i == 0 }

func (modelHCL) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("HCL", values, 3)
	if err != nil {
		return nil, err
	}
	return HCL{H: normDeg(v[0]), C: v[1], L: v[2], Alpha: alpha, WhitePoint: WhitePointD65}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelHCL) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).HCL()
}
