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

// RGB is a colour in an RGB working space.  Components are nominally in
// the range [0, 1]; values outside this range are kept, so that
// out-of-gamut intermediate results survive conversion chains.
//
// A nil Space means sRGB.
type RGB struct {
	R, G, B float64
	Alpha   float64
	Space   *RGBSpace
}

func (c RGB) space() *RGBSpace {
	if c.Space == nil {
		return SRGB
	}
	return c.Space
}

// ConvertTo converts the colour into the given RGB working space.
//
// If the white points of the two spaces differ, no chromatic adaptation is
// applied: the XYZ coordinates are reinterpreted relative to the target
// white point unchanged.
func (c RGB) ConvertTo(target *RGBSpace) RGB {
	src := c.space()
	if target == nil {
		target = SRGB
	}

	if spacesEqual(src, target) {
		return RGB{R: c.R, G: c.G, B: c.B, Alpha: c.Alpha, Space: target}
	}

	// The matrix round trip cancels between sRGB and linear sRGB, so only
	// the transfer function needs to be applied.
	if spacesEqual(src, SRGB) && spacesEqual(target, SRGBLinear) {
		tf := src.tf
		return RGB{
			R:     tf.EOTF(c.R),
			G:     tf.EOTF(c.G),
			B:     tf.EOTF(c.B),
			Alpha: c.Alpha,
			Space: target,
		}
	}
	if spacesEqual(src, SRGBLinear) && spacesEqual(target, SRGB) {
		tf := target.tf
		return RGB{
			R:     tf.OETF(c.R),
			G:     tf.OETF(c.G),
			B:     tf.OETF(c.B),
			Alpha: c.Alpha,
			Space: target,
		}
	}

	return c.XYZ().ToRGB(target)
}

// Clamp truncates each component, including alpha, into the range [0, 1].
// No gamut compression is attempted.
func (c RGB) Clamp() RGB {
	return RGB{
		R:     clamp01(c.R),
		G:     clamp01(c.G),
		B:     clamp01(c.B),
		Alpha: clamp01(c.Alpha),
		Space: c.Space,
	}
}

// Model implements the [Color] interface.
func (c RGB) Model() Model {
	return ModelRGB
}

// Values implements the [Color] interface.
func (c RGB) Values() []float64 {
	return []float64{c.R, c.G, c.B, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.
func (c RGB) SRGB() RGB {
	return c.ConvertTo(SRGB)
}

// XYZ converts the colour to XYZ tristimulus values, relative to the
// white point of the colour's working space.
func (c RGB) XYZ() XYZ {
	s := c.space()
	x, y, z := s.toXYZ.Mul(s.tf.EOTF(c.R), s.tf.EOTF(c.G), s.tf.EOTF(c.B))
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, Space: xyzSpaceFor(s.whitePoint)}
}

// Lab converts the colour to CIE L*a*b*, relative to the white point of
// the colour's working space.
func (c RGB) Lab() Lab {
	return c.XYZ().Lab()
}

// LCh converts the colour to the polar form of CIE L*a*b*.
func (c RGB) LCh() LCh {
	return c.Lab().LCh()
}

// Luv converts the colour to CIE L*u*v*, relative to the white point of
// the colour's working space.
func (c RGB) Luv() Luv {
	return c.XYZ().Luv()
}

// HCL converts the colour to the polar form of CIE L*u*v*.
func (c RGB) HCL() HCL {
	return c.Luv().HCL()
}

// Oklab converts the colour to the Oklab colour space.  Colours in sRGB or
// linear sRGB take a direct path which avoids the XYZ round trip.
func (c RGB) Oklab() Oklab {
	s := c.space()
	if spacesEqual(s, SRGB) || spacesEqual(s, SRGBLinear) {
		return oklabFromLinearSRGB(s.tf.EOTF(c.R), s.tf.EOTF(c.G), s.tf.EOTF(c.B), c.Alpha)
	}
	return c.XYZ().Oklab()
}

// Oklch converts the colour to the polar form of Oklab.
func (c RGB) Oklch() Oklch {
	return c.Oklab().Oklch()
}

// ICtCp converts the colour to the ITU-R BT.2100 ICtCp colour space.
// Colours in the BT.2020 space take a direct path; all other spaces are
// first converted to BT.2020 through XYZ.
func (c RGB) ICtCp() ICtCp {
	s := c.space()
	if !spacesEqual(s, BT2020) {
		c = c.ConvertTo(BT2020)
		s = BT2020
	}
	return ictcpFromBT2020(s.tf.EOTF(c.R), s.tf.EOTF(c.G), s.tf.EOTF(c.B), c.Alpha)
}

// hueMinMaxChroma computes the shared quantities of the cylindrical
// models.  The receiver must already be in sRGB.  The hue is NaN for
// achromatic colours.
func (c RGB) hueMinMaxChroma() (hue, min, max, chroma float64) {
	min = math.Min(c.R, math.Min(c.G, c.B))
	max = math.Max(c.R, math.Max(c.G, c.B))
	chroma = max - min

	if chroma < ε {
		hue = math.NaN()
		return hue, min, max, chroma
	}

	switch max {
	case c.R:
		hue = (c.G - c.B) / chroma
	case c.G:
		hue = 2 + (c.B-c.R)/chroma
	default:
		hue = 4 + (c.R-c.G)/chroma
	}
	hue = normDeg(hue * 60)
	return hue, min, max, chroma
}

// HSL converts the colour to the HSL model.  The hue is NaN for
// achromatic colours.
func (c RGB) HSL() HSL {
	cc := c.SRGB()
	hue, min, max, chroma := cc.hueMinMaxChroma()

	l := (min + max) / 2
	var s float64
	switch {
	case max == min:
		s = 0
	case l <= 0.5:
		s = chroma / (max + min)
	default:
		s = chroma / (2 - max - min)
	}
	return HSL{H: hue, S: s, L: l, Alpha: cc.Alpha}
}

// HSV converts the colour to the HSV model.  The hue is NaN for
// achromatic colours.
func (c RGB) HSV() HSV {
	cc := c.SRGB()
	hue, _, max, chroma := cc.hueMinMaxChroma()

	var s float64
	if max != 0 {
		s = chroma / max
	}
	return HSV{H: hue, S: s, V: max, Alpha: cc.Alpha}
}

// HWB converts the colour to the HWB model.  The hue is NaN for
// achromatic colours.
func (c RGB) HWB() HWB {
	cc := c.SRGB()
	hue, min, max, _ := cc.hueMinMaxChroma()
	return HWB{H: hue, W: min, B: 1 - max, Alpha: cc.Alpha}
}

// CMYK converts the colour to naive CMYK, via sRGB.
func (c RGB) CMYK() CMYK {
	cc := c.SRGB()
	k := 1 - math.Max(cc.R, math.Max(cc.G, cc.B))
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 1, Alpha: cc.Alpha}
	}
	return CMYK{
		C:     (1 - cc.R - k) / (1 - k),
		M:     (1 - cc.G - k) / (1 - k),
		Y:     (1 - cc.B - k) / (1 - k),
		K:     k,
		Alpha: cc.Alpha,
	}
}

// Ansi16 quantises the colour to the 16-colour ANSI palette.
func (c RGB) Ansi16() Ansi16 {
	cc := c.SRGB()

	value := int(math.Round(cc.HSV().V * 100))
	if value == 30 {
		return Ansi16{Code: 30}
	}
	v := value / 50

	code := 30 +
		(int(math.Round(cc.B))<<2 |
			int(math.Round(cc.G))<<1 |
			int(math.Round(cc.R)))
	if v == 2 {
		code += 60
	}
	return Ansi16{Code: code}
}

// Ansi256 quantises the colour to the 256-colour xterm palette.
// Achromatic colours map to the 24-step grayscale ramp, all others to the
// 6x6x6 colour cube.
func (c RGB) Ansi256() Ansi256 {
	cc := c.SRGB()

	ri := int(math.Round(cc.R * 255))
	gi := int(math.Round(cc.G * 255))
	bi := int(math.Round(cc.B * 255))

	if ri == gi && gi == bi {
		switch {
		case ri < 8:
			return Ansi256{Code: 16}
		case ri > 248:
			return Ansi256{Code: 231}
		default:
			code := int(math.Round(float64(ri-8)/247*24)) + 232
			return Ansi256{Code: uint8(code)}
		}
	}

	code := 16 +
		36*int(math.Round(cc.R*5)) +
		6*int(math.Round(cc.G*5)) +
		int(math.Round(cc.B*5))
	return Ansi256{Code: uint8(code)}
}

// == RGB model ==============================================================

// ModelRGB is the colour model of [RGB] values.  Colours constructed
// through the model are in the sRGB colour space.
var ModelRGB Model = modelRGB{}

type modelRGB struct{}

func (modelRGB) Name() string     { return "RGB" }
func (modelRGB) Channels() int    { return 3 }
func (modelRGB) Polar(i int) bool { return false }

func (modelRGB) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("RGB", values, 3)
	if err != nil {
		return nil, err
	}
	return RGB{R: v[0], G: v[1], B: v[2], Alpha: alpha, Space: SRGB}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelRGB) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c)
}
