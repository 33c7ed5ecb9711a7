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
	"fmt"
	stdcolor "image/color"
)

// == Ansi16 =================================================================

// Ansi16 is a colour in the 16-colour ANSI terminal palette.  The code is
// an SGR parameter: 30-37 and 90-97 select foreground colours, 40-47 and
// 100-107 the corresponding background colours.
//
// Ansi16 colours are opaque.
type Ansi16 struct {
	Code int
}

// NewAnsi16 returns the ANSI colour with the given SGR code.  Codes
// outside the four SGR colour blocks are rejected.
func NewAnsi16(code int) (Ansi16, error) {
	group := code / 10
	ok := code%10 <= 7 &&
		(group == 3 || group == 4 || group == 9 || group == 10)
	if !ok {
		return Ansi16{}, fmt.Errorf("Ansi16: invalid SGR code %d", code)
	}
	return Ansi16{Code: code}, nil
}

// foreground maps background codes to the equivalent foreground code.
func (c Ansi16) foreground() int {
	if c.Code/10 == 4 || c.Code/10 == 10 {
		return c.Code - 10
	}
	return c.Code
}

// Model implements the [Color] interface.
func (c Ansi16) Model() Model {
	return ModelAnsi16
}

// Values implements the [Color] interface.  The alpha component is
// always 1.
func (c Ansi16) Values() []float64 {
	return []float64{float64(c.Code), 1}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Ansi16) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space, using the
// conventional VGA-style palette values.
func (c Ansi16) SRGB() RGB {
	code := c.Code
	col := float64(code % 10)

	// Codes 0 and 7 of each block are the grey entries of the palette.
	if col == 0 || col == 7 {
		if code > 50 {
			col += 3.5
		}
		v := col / 10.5
		return RGB{R: v, G: v, B: v, Alpha: 1, Space: SRGB}
	}

	mult := 0.5
	if code > 50 {
		mult = 1.0
	}
	n := int(col)
	return RGB{
		R:     float64(n&1) * mult,
		G:     float64((n>>1)&1) * mult,
		B:     float64((n>>2)&1) * mult,
		Alpha: 1,
		Space: SRGB,
	}
}

// Ansi16 implements the [Color] interface.
func (c Ansi16) Ansi16() Ansi16 {
	return c
}

// Ansi256 converts the colour to the 256-colour palette.  The first 16
// entries of the extended palette are the ANSI colours, so the
// conversion is exact.
func (c Ansi16) Ansi256() Ansi256 {
	code := c.foreground()
	if code >= 90 {
		return Ansi256{Code: uint8(code - 90 + 8)}
	}
	return Ansi256{Code: uint8(code - 30)}
}

func (c Ansi16) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c Ansi16) Lab() Lab     { return c.SRGB().Lab() }
func (c Ansi16) LCh() LCh     { return c.SRGB().LCh() }
func (c Ansi16) Luv() Luv     { return c.SRGB().Luv() }
func (c Ansi16) HCL() HCL     { return c.SRGB().HCL() }
func (c Ansi16) Oklab() Oklab { return c.SRGB().Oklab() }
func (c Ansi16) Oklch() Oklch { return c.SRGB().Oklch() }
func (c Ansi16) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c Ansi16) HSL() HSL   { return c.SRGB().HSL() }
func (c Ansi16) HSV() HSV   { return c.SRGB().HSV() }
func (c Ansi16) HWB() HWB   { return c.SRGB().HWB() }
func (c Ansi16) CMYK() CMYK { return c.SRGB().CMYK() }

// ModelAnsi16 is the colour model of [Ansi16] values.
var ModelAnsi16 Model = modelAnsi16{}

type modelAnsi16 struct{}

func (modelAnsi16) Name() string     { return "Ansi16" }
func (modelAnsi16) Channels() int    { return 1 }
func (modelAnsi16) Polar(i int) bool { return false }

func (modelAnsi16) New(values []float64) (Color, error) {
	v, _, err := splitAlpha("Ansi16", values, 1)
	if err != nil {
		return nil, err
	}
	c, err := NewAnsi16(int(v[0]))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelAnsi16) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Ansi16()
}

// == Ansi256 ================================================================

// Ansi256 is a colour in the 256-colour xterm palette: entries 0-15 are
// the ANSI colours, 16-231 a 6x6x6 colour cube, and 232-255 a greyscale
// ramp.
//
// Ansi256 colours are opaque.
type Ansi256 struct {
	Code uint8
}

// NewAnsi256 returns the palette colour with the given index.
func NewAnsi256(code int) (Ansi256, error) {
	if code < 0 || code > 255 {
		return Ansi256{}, fmt.Errorf("Ansi256: palette index %d out of range", code)
	}
	return Ansi256{Code: uint8(code)}, nil
}

// Model implements the [Color] interface.
func (c Ansi256) Model() Model {
	return ModelAnsi256
}

// Values implements the [Color] interface.  The alpha component is
// always 1.
func (c Ansi256) Values() []float64 {
	return []float64{float64(c.Code), 1}
}

// RGBA implements the [stdcolor.Color] interface.
func (c Ansi256) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space, using the
// standard xterm palette values.
func (c Ansi256) SRGB() RGB {
	code := int(c.Code)

	switch {
	case code < 8:
		return Ansi16{Code: code + 30}.SRGB()
	case code < 16:
		return Ansi16{Code: code - 8 + 90}.SRGB()
	case code < 232:
		rem := code - 16
		cube := func(v int) float64 {
			if v == 0 {
				return 0
			}
			return float64(v*40+55) / 255
		}
		return RGB{
			R:     cube(rem / 36),
			G:     cube(rem / 6 % 6),
			B:     cube(rem % 6),
			Alpha: 1,
			Space: SRGB,
		}
	default:
		v := float64((code-232)*10+8) / 255
		return RGB{R: v, G: v, B: v, Alpha: 1, Space: SRGB}
	}
}

// Ansi256 implements the [Color] interface.
func (c Ansi256) Ansi256() Ansi256 {
	return c
}

func (c Ansi256) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c Ansi256) Lab() Lab     { return c.SRGB().Lab() }
func (c Ansi256) LCh() LCh     { return c.SRGB().LCh() }
func (c Ansi256) Luv() Luv     { return c.SRGB().Luv() }
func (c Ansi256) HCL() HCL     { return c.SRGB().HCL() }
func (c Ansi256) Oklab() Oklab { return c.SRGB().Oklab() }
func (c Ansi256) Oklch() Oklch { return c.SRGB().Oklch() }
func (c Ansi256) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c Ansi256) HSL() HSL   { return c.SRGB().HSL() }
func (c Ansi256) HSV() HSV   { return c.SRGB().HSV() }
func (c Ansi256) HWB() HWB   { return c.SRGB().HWB() }
func (c Ansi256) CMYK() CMYK { return c.SRGB().CMYK() }

// Ansi16 quantises the colour to the 16-colour ANSI palette.
func (c Ansi256) Ansi16() Ansi16 {
	if c.Code < 8 {
		return Ansi16{Code: int(c.Code) + 30}
	}
	if c.Code < 16 {
		return Ansi16{Code: int(c.Code) - 8 + 90}
	}
	return c.SRGB().Ansi16()
}

// ModelAnsi256 is the colour model of [Ansi256] values.
var ModelAnsi256 Model = modelAnsi256{}

type modelAnsi256 struct{}

func (modelAnsi256) Name() string     { return "Ansi256" }
func (modelAnsi256) Channels() int    { return 1 }
func (modelAnsi256) Polar(i int) bool { return false }

func (modelAnsi256) New(values []float64) (Color, error) {
	v, _, err := splitAlpha("Ansi256", values, 1)
	if err != nil {
		return nil, err
	}
	c, err := NewAnsi256(int(v[0]))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelAnsi256) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).Ansi256()
}
