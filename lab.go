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

// Constants of the CIE 1976 L* formula.
//
// cieE is the threshold below which the cube-root curve is replaced by a
// linear segment, cieK is the slope of that segment.  Their product is
// exactly 8, the L* value at the junction.
const (
	cieE  = 216.0 / 24389
	cieK  = 24389.0 / 27
	cieEK = 8.0
)

// labF is the forward pivot function of CIE L*a*b*.
func labF(t float64) float64 {
	if t > cieE {
		return math.Cbrt(t)
	}
	return (cieK*t + 16) / 116
}

// LabSpace parameterises CIE L*a*b* values by their reference white.
type LabSpace struct {
	WhitePoint Illuminant
}

// Singleton Lab spaces for the common reference whites.
var (
	Lab65 = &LabSpace{WhitePointD65}
	Lab50 = &LabSpace{WhitePointD50}
)

func labSpaceFor(wp Illuminant) *LabSpace {
	switch wp {
	case WhitePointD65:
		return Lab65
	case WhitePointD50:
		return Lab50
	}
	return &LabSpace{wp}
}

// New returns an opaque L*a*b* colour.  The lightness l is nominally in
// [0, 100]; the ranges of a and b depend on the white point.
func (s *LabSpace) New(l, a, b float64) Lab {
	return Lab{L: l, A: a, B: b, Alpha: 1, Space: s}
}

// NewA returns an L*a*b* colour with the given alpha value.
func (s *LabSpace) NewA(l, a, b, alpha float64) Lab {
	return Lab{L: l, A: a, B: b, Alpha: alpha, Space: s}
}

// NewLCh returns an opaque colour in the polar form of L*a*b*.
// The hue h is an angle in degrees.
func (s *LabSpace) NewLCh(l, c, h float64) LCh {
	return LCh{L: l, C: c, H: normDeg(h), Alpha: 1, Space: s}
}

// Lab is a colour in the CIE 1976 L*a*b* space.
//
// A nil Space means D65.
type Lab struct {
	L, A, B float64
	Alpha   float64
	Space   *LabSpace
}

func (c Lab) space() *LabSpace {
	if c.Space == nil {
		return Lab65
	}
	return c.Space
}

// WhitePoint returns the reference white of the colour.
func (c Lab) WhitePoint() Illuminant {
	return c.space().WhitePoint
}

// Model implements the [Color] interface.
func (c Lab) Model() Model {
	return ModelLab
}

// Values implements the [Color] interface.
func (c Lab) Values() []float64 {
	return []float64{c.L, c.A, c.B, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Lab) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// XYZ converts the colour to tristimulus values, keeping the white point.
//
// A colour with L==0 is black regardless of a and b; this case bypasses
// the pivot formulas, which are numerically unstable at the origin.
func (c Lab) XYZ() XYZ {
	wp := c.space().WhitePoint
	if c.L == 0 {
		return XYZ{Alpha: c.Alpha, Space: xyzSpaceFor(wp)}
	}

	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	var xr, yr, zr float64
	if fx3 := fx * fx * fx; fx3 > cieE {
		xr = fx3
	} else {
		xr = (116*fx - 16) / cieK
	}
	if c.L > cieEK {
		yr = fy * fy * fy
	} else {
		yr = c.L / cieK
	}
	if fz3 := fz * fz * fz; fz3 > cieE {
		zr = fz3
	} else {
		zr = (116*fz - 16) / cieK
	}

	return XYZ{
		X:     xr * wp.X,
		Y:     yr * wp.Y,
		Z:     zr * wp.Z,
		Alpha: c.Alpha,
		Space: xyzSpaceFor(wp),
	}
}

// ToRGB converts the colour into the given RGB working space.
// A colour with L==0 converts to pure black directly.
func (c Lab) ToRGB(target *RGBSpace) RGB {
	if target == nil {
		target = SRGB
	}
	if c.L == 0 {
		return RGB{Alpha: c.Alpha, Space: target}
	}
	return c.XYZ().ToRGB(target)
}

// SRGB converts the colour into the sRGB colour space.
func (c Lab) SRGB() RGB {
	return c.ToRGB(SRGB)
}

// Lab implements the [Color] interface.
func (c Lab) Lab() Lab {
	return c
}

// LCh converts the colour to its polar form.  The hue is in [0, 360).
func (c Lab) LCh() LCh {
	return LCh{
		L:     c.L,
		C:     math.Hypot(c.A, c.B),
		H:     normDeg(radToDeg(math.Atan2(c.B, c.A))),
		Alpha: c.Alpha,
		Space: c.Space,
	}
}

func (c Lab) Luv() Luv     { return c.XYZ().Luv() }
func (c Lab) HCL() HCL     { return c.XYZ().HCL() }
func (c Lab) Oklab() Oklab { return c.XYZ().Oklab() }
func (c Lab) Oklch() Oklch { return c.XYZ().Oklch() }
func (c Lab) ICtCp() ICtCp { return c.XYZ().ICtCp() }

func (c Lab) HSL() HSL   { return c.SRGB().HSL() }
func (c Lab) HSV() HSV   { return c.SRGB().HSV() }
func (c Lab) HWB() HWB   { return c.SRGB().HWB() }
func (c Lab) CMYK() CMYK { return c.SRGB().CMYK() }

func (c Lab) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c Lab) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// LCh is the polar form of [Lab]: lightness, chroma, and a hue angle in
// degrees.
//
// A nil Space means D65.
type LCh struct {
	L, C, H float64
	Alpha   float64
	Space   *LabSpace
}

// Model implements the [Color] interface.
func (c LCh) Model() Model {
	return ModelLCh
}

// Values implements the [Color] interface.
func (c LCh) Values() []float64 {
	return []float64{c.L, c.C, c.H, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c LCh) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// Lab converts the colour back to rectangular form.
func (c LCh) Lab() Lab {
	return Lab{
		L:     c.L,
		A:     c.C * math.Cos(degToRad(c.H)),
		B:     c.C * math.Sin(degToRad(c.H)),
		Alpha: c.Alpha,
		Space: c.Space,
	}
}

// LCh implements the [Color] interface.
func (c LCh) LCh() LCh {
	return c
}

func (c LCh) SRGB() RGB    { return c.Lab().SRGB() }
func (c LCh) XYZ() XYZ     { return c.Lab().XYZ() }
func (c LCh) Luv() Luv     { return c.Lab().Luv() }
func (c LCh) HCL() HCL     { return c.Lab().HCL() }
func (c LCh) Oklab() Oklab { return c.Lab().Oklab() }
func (c LCh) Oklch() Oklch { return c.Lab().Oklch() }
func (c LCh) ICtCp() ICtCp { return c.Lab().ICtCp() }

func (c LCh) HSL() HSL   { return c.SRGB().HSL() }
func (c LCh) HSV() HSV   { return c.SRGB().HSV() }
func (c LCh) HWB() HWB   { return c.SRGB().HWB() }
func (c LCh) CMYK() CMYK { return c.SRGB().CMYK() }

func (c LCh) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c LCh) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// == Lab and LCh models =====================================================

// ModelLab is the colour model of [Lab] values.  Colours constructed
// through the model are relative to D65.
var ModelLab Model = modelLab{}

type modelLab struct{}

func (modelLab) Name() string     { return "Lab" }
func (modelLab) Channels() int    { return 3 }
func (modelLab) Polar(i int) bool { return false }

func (modelLab) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("Lab", values, 3)
	if err != nil {
		return nil, err
	}
	return Lab{L: v[0], A: v[1], B: v[2], Alpha: alpha, Space: Lab65}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelLab) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Lab()
}

// ModelLCh is the colour model of [LCh] values.  The hue component at
// index 2 is a polar angle.
var ModelLCh Model = modelLCh{}

type modelLCh struct{}

func (modelLCh) Name() string     { return "LCh" }
func (modelLCh) Channels() int    { return 3 }
func (modelLCh) Polar(i int) bool { return i == 2 }

func (modelLCh) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("LCh", values, 3)
	if err != nil {
		return nil, err
	}
	return LCh{L: v[0], C: v[1], H: normDeg(v[2]), Alpha: alpha, Space: Lab65}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelLCh) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).LCh()
}
