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
	"math"
)

// Color is a colour value in one of the supported colour models.
//
// The conversion methods are total: they return a well-defined result for
// every value, including out-of-gamut and degenerate inputs.  Conversions
// into quantised or smaller-gamut models are lossy.
//
// All implementations of Color also implement Go's [stdcolor.Color]
// interface.
type Color interface {
	stdcolor.Color

	// Model returns the colour model this value belongs to.
	Model() Model

	// Values returns the colour components, followed by the alpha value.
	Values() []float64

	// SRGB returns the colour as an RGB value in the sRGB colour space.
	SRGB() RGB

	XYZ() XYZ
	Lab() Lab
	LCh() LCh
	Luv() Luv
	HCL() HCL
	Oklab() Oklab
	Oklch() Oklch
	ICtCp() ICtCp
	HSL() HSL
	HSV() HSV
	HWB() HWB
	CMYK() CMYK
	Ansi16() Ansi16
	Ansi256() Ansi256
}

// The following types implement the Color interface:
var (
	_ Color = RGB{}
	_ Color = XYZ{}
	_ Color = Lab{}
	_ Color = LCh{}
	_ Color = Luv{}
	_ Color = HCL{}
	_ Color = Oklab{}
	_ Color = Oklch{}
	_ Color = ICtCp{}
	_ Color = HSL{}
	_ Color = HSV{}
	_ Color = HWB{}
	_ Color = CMYK{}
	_ Color = Ansi16{}
	_ Color = Ansi256{}
)

// Model describes a colour model: its name, its channel layout, and how to
// construct values from flat component lists.
//
// All implementations of Model also implement Go's [stdcolor.Model]
// interface.
type Model interface {
	stdcolor.Model

	// Name returns the name of the colour model.
	Name() string

	// Channels returns the number of colour components, not counting alpha.
	Channels() int

	// Polar reports whether the i-th component is a hue angle in degrees.
	// Hue angles wrap around at 360 and need circular interpolation.
	Polar(i int) bool

	// New creates a colour value from a flat list of components.  The
	// slice must hold Channels() values, optionally followed by an alpha
	// value.  Models with a default parameterisation (sRGB for RGB, D65
	// for XYZ and Lab) use it here.
	New(values []float64) (Color, error)
}

// The following values implement the Model interface:
var (
	_ Model = ModelRGB
	_ Model = ModelXYZ
	_ Model = ModelLab
	_ Model = ModelLCh
	_ Model = ModelLuv
	_ Model = ModelHCL
	_ Model = ModelOklab
	_ Model = ModelOklch
	_ Model = ModelICtCp
	_ Model = ModelHSL
	_ Model = ModelHSV
	_ Model = ModelHWB
	_ Model = ModelCMYK
	_ Model = ModelAnsi16
	_ Model = ModelAnsi256
)

// FromStd converts a value of Go's standard [stdcolor.Color] interface to
// an sRGB value.
func FromStd(c stdcolor.Color) RGB {
	if c, ok := c.(Color); ok {
		return c.SRGB()
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{Space: SRGB}
	}
	return RGB{
		R:     float64(r) / float64(a),
		G:     float64(g) / float64(a),
		B:     float64(b) / float64(a),
		Alpha: float64(a) / 65535,
		Space: SRGB,
	}
}

// rgbaValues implements the [stdcolor.Color] interface for all colour
// models, via conversion to sRGB.  The returned values are
// alpha-premultiplied, as required by the interface.
func rgbaValues(c RGB) (r, g, b, a uint32) {
	cc := c.Clamp()
	r = uint32(math.Round(cc.R * cc.Alpha * 65535))
	g = uint32(math.Round(cc.G * cc.Alpha * 65535))
	b = uint32(math.Round(cc.B * cc.Alpha * 65535))
	a = uint32(math.Round(cc.Alpha * 65535))
	return r, g, b, a
}

// splitAlpha splits a flat component list into colour components and alpha.
// The list must hold n components, optionally followed by an alpha value.
func splitAlpha(model string, values []float64, n int) ([]float64, float64, error) {
	switch len(values) {
	case n:
		return values, 1, nil
	case n + 1:
		return values[:n], values[n], nil
	default:
		return nil, 0, fmt.Errorf("%s: expected %d or %d components, got %d",
			model, n, n+1, len(values))
	}
}
