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

// hueOrZero maps the NaN hue of achromatic colours to 0, so that the
// conversion formulas below stay total.
func hueOrZero(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	return normDeg(h)
}

// == HSL ====================================================================

// HSL is a colour in the hue/saturation/lightness model, relative to
// sRGB.  The hue is in degrees, saturation and lightness are in [0, 1].
type HSL struct {
	H, S, L float64
	Alpha   float64
}

// Model implements the [Color] interface.
func (c HSL) Model() Model {
	return ModelHSL
}

// Values implements the [Color] interface.
func (c HSL) Values() []float64 {
	return []float64{c.H, c.S, c.L, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.
func (c HSL) SRGB() RGB {
	h := hueOrZero(c.H) / 360

	var t1 float64
	if c.L < 0.5 {
		t1 = c.L * (1 + c.S)
	} else {
		t1 = c.L + c.S - c.L*c.S
	}
	t2 := 2*c.L - t1

	hueTo := func(h float64) float64 {
		if h < 0 {
			h++
		} else if h > 1 {
			h--
		}
		switch {
		case 6*h < 1:
			return t2 + (t1-t2)*6*h
		case 2*h < 1:
			return t1
		case 3*h < 2:
			return t2 + (t1-t2)*(2.0/3-h)*6
		default:
			return t2
		}
	}

	return RGB{
		R:     hueTo(h + 1.0/3),
		G:     hueTo(h),
		B:     hueTo(h - 1.0/3),
		Alpha: c.Alpha,
		Space: SRGB,
	}
}

// HSL implements the [Color] interface.
func (c HSL) HSL() HSL {
	return c
}

func (c HSL) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c HSL) Lab() Lab     { return c.SRGB().Lab() }
func (c HSL) LCh() LCh     { return c.SRGB().LCh() }
func (c HSL) Luv() Luv     { return c.SRGB().Luv() }
func (c HSL) HCL() HCL     { return c.SRGB().HCL() }
func (c HSL) Oklab() Oklab { return c.SRGB().Oklab() }
func (c HSL) Oklch() Oklch { return c.SRGB().Oklch() }
func (c HSL) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c HSL) HSV() HSV   { return c.SRGB().HSV() }
func (c HSL) HWB() HWB   { return c.SRGB().HWB() }
func (c HSL) CMYK() CMYK { return c.SRGB().CMYK() }

func (c HSL) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c HSL) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// ModelHSL is the colour model of [HSL] values.
var ModelHSL Model = modelHSL{}

type modelHSL struct{}

func (modelHSL) Name() string     { return "HSL" }
func (modelHSL) Channels() int    { return 3 }
func (modelHSL) Polar(i int) bool { return i == 0 }

func (modelHSL) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("HSL", values, 3)
	if err != nil {
		return nil, err
	}
	return HSL{H: v[0], S: v[1], L: v[2], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelHSL) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).HSL()
}

// == HSV ====================================================================

// HSV is a colour in the hue/saturation/value model, relative to sRGB.
// The hue is in degrees, saturation and value are in [0, 1].
type HSV struct {
	H, S, V float64
	Alpha   float64
}

// Model implements the [Color] interface.
func (c HSV) Model() Model {
	return ModelHSV
}

// Values implements the [Color] interface.
func (c HSV) Values() []float64 {
	return []float64{c.H, c.S, c.V, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.
func (c HSV) SRGB() RGB {
	h := hueOrZero(c.H) / 60

	i := math.Floor(h)
	f := h - i
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	default:
		r, g, b = c.V, p, q
	}
	return RGB{R: r, G: g, B: b, Alpha: c.Alpha, Space: SRGB}
}

// HSV implements the [Color] interface.
func (c HSV) HSV() HSV {
	return c
}

func (c HSV) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c HSV) Lab() Lab     { return c.SRGB().Lab() }
func (c HSV) LCh() LCh     { return c.SRGB().LCh() }
func (c HSV) Luv() Luv     { return c.SRGB().Luv() }
func (c HSV) HCL() HCL     { return c.SRGB().HCL() }
func (c HSV) Oklab() Oklab { return c.SRGB().Oklab() }
func (c HSV) Oklch() Oklch { return c.SRGB().Oklch() }
func (c HSV) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c HSV) HSL() HSL   { return c.SRGB().HSL() }
func (c HSV) HWB() HWB   { return c.SRGB().HWB() }
func (c HSV) CMYK() CMYK { return c.SRGB().CMYK() }

func (c HSV) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c HSV) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// ModelHSV is the colour model of [HSV] values.
var ModelHSV Model = modelHSV{}

type modelHSV struct{}

func (modelHSV) Name() string     { return "HSV" }
func (modelHSV) Channels() int    { return 3 }
func (modelHSV) Polar(i int) bool { return i == 0 }

func (modelHSV) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("HSV", values, 3)
	if err != nil {
		return nil, err
	}
	return HSV{H: v[0], S: v[1], V: v[2], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelHSV) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).HSV()
}

// == HWB ====================================================================

// HWB is a colour in the hue/whiteness/blackness model, relative to
// sRGB.  The hue is in degrees, whiteness and blackness are in [0, 1].
type HWB struct {
	H, W, B float64
	Alpha   float64
}

// Model implements the [Color] interface.
func (c HWB) Model() Model {
	return ModelHWB
}

// Values implements the [Color] interface.
func (c HWB) Values() []float64 {
	return []float64{c.H, c.W, c.B, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c HWB) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.  If whiteness and
// blackness sum to one or more, the colour is the grey W/(W+B).
func (c HWB) SRGB() RGB {
	if c.W+c.B >= 1 {
		grey := c.W / (c.W + c.B)
		return RGB{R: grey, G: grey, B: grey, Alpha: c.Alpha, Space: SRGB}
	}
	hsv := HSV{
		H:     c.H,
		S:     1 - c.W/(1-c.B),
		V:     1 - c.B,
		Alpha: c.Alpha,
	}
	return hsv.SRGB()
}

// HWB implements the [Color] interface.
func (c HWB) HWB() HWB {
	return c
}

func (c HWB) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c HWB) Lab() Lab     { return c.SRGB().Lab() }
func (c HWB) LCh() LCh     { return c.SRGB().LCh() }
func (c HWB) Luv() Luv     { return c.SRGB().Luv() }
func (c HWB) HCL() HCL     { return c.SRGB().HCL() }
func (c HWB) Oklab() Oklab { return c.SRGB().Oklab() }
func (c HWB) Oklch() Oklch { return c.SRGB().Oklch() }
func (c HWB) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c HWB) HSL() HSL   { return c.SRGB().HSL() }
func (c HWB) HSV() HSV   { return c.SRGB().HSV() }
func (c HWB) CMYK() CMYK { return c.SRGB().CMYK() }

func (c HWB) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c HWB) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// ModelHWB is the colour model of [HWB] values.
var ModelHWB Model = modelHWB{}

type modelHWB struct{}

func (modelHWB) Name() string     { return "HWB" }
func (modelHWB) Channels() int    { return 3 }
func (modelHWB) Polar(i int) bool { return i == 0 }

func (modelHWB) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("HWB", values, 3)
	if err != nil {
		return nil, err
	}
	return HWB{H: v[0], W: v[1], B: v[2], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelHWB) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).HWB()
}
