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
)

// CMYK is a colour in the naive CMYK model, relative to sRGB.  The
// conversion uses simple undercolour removal and is not calibrated for
// any printing process; use [ICCSpace] for real print profiles.
type CMYK struct {
	C, M, Y, K float64
	Alpha      float64
}

// Model implements the [Color] interface.
func (c CMYK) Model() Model {
	return ModelCMYK
}

// Values implements the [Color] interface.
func (c CMYK) Values() []float64 {
	return []float64{c.C, c.M, c.Y, c.K, c.Alpha}
}

// RGBA implements the [stdcolor.Color] interface.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// SRGB converts the colour into the sRGB colour space.
func (c CMYK) SRGB() RGB {
	return RGB{
		R:     (1 - c.C) * (1 - c.K),
		G:     (1 - c.M) * (1 - c.K),
		B:     (1 - c.Y) * (1 - c.K),
		Alpha: c.Alpha,
		Space: SRGB,
	}
}

// CMYK implements the [Color] interface.
func (c CMYK) CMYK() CMYK {
	return c
}

func (c CMYK) XYZ() XYZ     { return c.SRGB().XYZ() }
func (c CMYK) Lab() Lab     { return c.SRGB().Lab() }
func (c CMYK) LCh() LCh     { return c.SRGB().LCh() }
func (c CMYK) Luv() Luv     { return c.SRGB().Luv() }
func (c CMYK) HCL() HCL     { return c.SRGB().HCL() }
func (c CMYK) Oklab() Oklab { return c.SRGB().Oklab() }
func (c CMYK) Oklch() Oklch { return c.SRGB().Oklch() }
func (c CMYK) ICtCp() ICtCp { return c.SRGB().ICtCp() }

func (c CMYK) HSL() HSL { return c.SRGB().HSL() }
func (c CMYK) HSV() HSV { return c.SRGB().HSV() }
func (c CMYK) HWB() HWB { return c.SRGB().HWB() }

func (c CMYK) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c CMYK) Ansi256() Ansi256 { return c.SRGB().Ansi256() }

// ModelCMYK is the colour model of [CMYK] values.
var ModelCMYK Model = modelCMYK{}

type modelCMYK struct{}

func (modelCMYK) Name() string     { return "CMYK" }
func (modelCMYK) Channels() int    { return 4 }
func (modelCMYK) Polar(i int) bool { return false }

func (modelCMYK) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("CMYK", values, 4)
	if err != nil {
		return nil, err
	}
	return CMYK{C: v[0], M: v[1], Y: v[2], K: v[3], Alpha: alpha}, nil
}

// Convert implements the [stdcolor.Model] interface.
func (modelCMYK) Convert(c stdcolor.Color) stdcolor.Color {
	return FromStd(c).CMYK()
}
