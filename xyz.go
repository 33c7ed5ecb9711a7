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

// XYZSpace parameterises XYZ tristimulus values by their reference white.
type XYZSpace struct {
	WhitePoint Illuminant
}

// Singleton XYZ spaces for the common reference whites.
var (
	XYZD65 = &XYZSpace{WhitePointD65}
	XYZD50 = &XYZSpace{WhitePointD50}
)

// xyzSpaceFor returns the XYZSpace for the given white point, reusing the
// singletons where possible.
func xyzSpaceFor(wp Illuminant) *XYZSpace {
	switch wp {
	case WhitePointD65:
		return XYZD65
	case WhitePointD50:
		return XYZD50
	}
	return &XYZSpace{wp}
}

// New returns an opaque colour with the given tristimulus values.
func (s *XYZSpace) New(x, y, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z, Alpha: 1, Space: s}
}

// NewA returns a colour with the given tristimulus and alpha values.
func (s *XYZSpace) NewA(x, y, z, alpha float64) XYZ {
	return XYZ{X: x, Y: y, Z: z, Alpha: alpha, Space: s}
}

// XYZ is a colour given as CIE 1931 tristimulus values.  XYZ is the
// connection space for all cross-family conversions.
//
// A nil Space means D65.
type XYZ struct {
	X, Y, Z float64
	Alpha   float64
	Space   *XYZSpace
}

func (c XYZ) space() *XYZSpace {
	if c.Space == nil {
		return XYZD65
	}
	return c.Space
}

// WhitePoint returns the reference white the tristimulus values are
// relative to.
func (c XYZ) WhitePoint() Illuminant {
	return c.space().WhitePoint
}

// ToRGB converts the colour into the given RGB working space.  No
// chromatic adaptation is applied if the white point of the target space
// differs from the white point of the XYZ value.
func (c XYZ) ToRGB(target *RGBSpace) RGB {
	if target == nil {
		target = SRGB
	}
	r, g, b := target.fromXYZ.Mul(c.X, c.Y, c.Z)
	return RGB{
		R:     target.tf.OETF(r),
		G:     target.tf.OETF(g),
		B:     target.tf.OETF(b),
		Alpha: c.Alpha,
		Space: target,
	}
}

// Model implements the [Color] interface.
func (c XYZ) Model() Model {
	return ModelXYZ
}

// Values implements the [Color] interface.
func (c XYZ) Values() []float64 {
	return []float64{c.X, c.Y, c.Z, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c XYZ) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.
func (c XYZ) SRGB() RGB {
	return c.ToRGB(SRGB)
}

// XYZ implements the [Color] interface.
func (c XYZ) XYZ() XYZ {
	return c
}

// Lab converts the colour to CIE L*a*b*, keeping the white point.
func (c XYZ) Lab() Lab {
	wp := c.space().WhitePoint
	fx := labF(c.X / wp.X)
	fy := labF(c.Y / wp.Y)
	fz := labF(c.Z / wp.Z)
	return Lab{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.Alpha,
		Space: labSpaceFor(wp),
	}
}

// LCh converts the colour to the polar form of CIE L*a*b*.
func (c XYZ) LCh() LCh {
	return c.Lab().LCh()
}

// Luv converts the colour to CIE L*u*v*, keeping the white point.
func (c XYZ) Luv() Luv {
	wp := c.space().WhitePoint
	un, vn := uvPrime(wp.X, wp.Y, wp.Z)
	up, vp := uvPrime(c.X, c.Y, c.Z)

	yr := c.Y / wp.Y
	var l float64
	if yr > cieE {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieK * yr
	}
	return Luv{
		L:          l,
		U:          13 * l * (up - un),
		V:          13 * l * (vp - vn),
		Alpha:      c.Alpha,
		WhitePoint: wp,
	}
}

// HCL converts the colour to the polar form of CIE L*u*v*.
func (c XYZ) HCL() HCL {
	return c.Luv().HCL()
}

// Oklab converts the colour to the Oklab colour space.  The tristimulus
// values are interpreted relative to D65.
func (c XYZ) Oklab() Oklab {
	l, m, s := oklabXYZToLMS.Mul(c.X, c.Y, c.Z)
	ll, aa, bb := oklabLMSToOklab.Mul(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return Oklab{L: ll, A: aa, B: bb, Alpha: c.Alpha}
}

// Oklch converts the colour to the polar form of Oklab.
func (c XYZ) Oklch() Oklch {
	return c.Oklab().Oklch()
}

// ICtCp converts the colour to the ITU-R BT.2100 ICtCp colour space.
func (c XYZ) ICtCp() ICtCp {
	return c.ToRGB(BT2020).ICtCp()
}

func (c XYZ) HSL() HSL   { return c.SRGB().HSL() }
func (c XYZ) HSV() HSV   { return c.SRGB().HSV() }
func (c XYZ) HWB() HWB   { return c.SRGB().HWB() }
func (c XYZ) CMYK() CMYK { return c.SRGB().CMYK() }

func (c XYZ) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c XYZ) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// uvPrime computes the u', v' chromaticity coordinates used by CIE L*u*v*.
func uvPrime(x, y, z float64) (float64, float64) {
	denom := x + 15*y + 3*z
	if denom == 0 {
		return 0, 0
	}
	return 4 * x / denom, 9 * y / denom
}

// == XYZ model ==============================================================

// ModelXYZ is the colour model of [XYZ] values.  Colours constructed
// through the model are relative to D65.
var ModelXYZ Model = modelXYZ{}

type modelXYZ struct{}

func (modelXYZ) Name() string     { return "XYZ" }
func (modelXYZ) Channels() int    { return 3 }
func (modelXYZ) Polar(i int) bool { return false }

func (modelXYZ) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("XYZ", values, 3)
	if err != nil {
		return nil, err
	}
	return XYZ{X: v[0], Y: v[1], Z: v[2], Alpha: alpha, Space: XYZD65}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelXYZ) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).XYZ()
}
