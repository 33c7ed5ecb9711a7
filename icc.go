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
	"errors"
	"fmt"
	stdcolor "image/color"

	"seehuhn.de/go/icc"
)

// ICCSpace is a device colour space described by an ICC profile.
// Colours are converted through the profile connection space, which uses
// the D50 white point.
//
// An ICCSpace is not safe for concurrent use, because the underlying
// profile transforms keep internal state.
type ICCSpace struct {
	n       int
	profile *icc.Profile
	toPCS   *icc.Transform
	fromPCS *icc.Transform
}

// NewICCSpace returns the colour space described by the given ICC
// profile data.  Profiles with one (grey), three (RGB or Lab) and four
// (CMYK) device channels are supported.
func NewICCSpace(profile []byte) (*ICCSpace, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCSpace: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, fmt.Errorf("ICCSpace: invalid number of components %d", n)
	}

	toPCS, err := icc.NewTransform(p, icc.DeviceToPCS, icc.Perceptual)
	if err != nil {
		return nil, err
	}
	fromPCS, err := icc.NewTransform(p, icc.PCSToDevice, icc.Perceptual)
	if err != nil {
		return nil, err
	}

	return &ICCSpace{
		n:       n,
		profile: p,
		toPCS:   toPCS,
		fromPCS: fromPCS,
	}, nil
}

// An ICCSpace doubles as the colour model of its colours.
var (
	_ Model = (*ICCSpace)(nil)
	_ Color = ICC{}
)

// Name implements the [Model] interface.
func (s *ICCSpace) Name() string {
	return "ICC"
}

// Channels returns the number of device colour channels.
func (s *ICCSpace) Channels() int {
	return s.n
}

// Polar implements the [Model] interface.
func (s *ICCSpace) Polar(i int) bool {
	return false
}

// New returns a colour with the given device channel values, in the
// range [0, 1], optionally followed by an alpha value.
func (s *ICCSpace) New(values []float64) (Color, error) {
	v, alpha, err := splitAlpha("ICC", values, s.n)
	if err != nil {
		return nil, err
	}
	c := ICC{
		Device: append([]float64{}, v...),
		Alpha:  alpha,
		Space:  s,
	}
	return c, nil
}

// Convert implements the [stdcolor.Model] interface.
func (s *ICCSpace) Convert(c stdcolor.Color) stdcolor.Color {
	return s.FromXYZ(FromStd(c).XYZ())
}

// FromXYZ converts tristimulus values into the device colour space.  The
// XYZ coordinates are interpreted relative to D50; no chromatic
// adaptation is applied for other white points.
func (s *ICCSpace) FromXYZ(x XYZ) ICC {
	device := s.fromPCS.FromXYZ(x.X, x.Y, x.Z)
	return ICC{Device: device, Alpha: x.Alpha, Space: s}
}

// ICC is a colour with device channel values in an ICC profile colour
// space.
type ICC struct {
	Device []float64
	Alpha  float64
	Space  *ICCSpace
}

// Model implements the [Color] interface.  The model of an ICC colour is
// its colour space.
func (c ICC) Model() Model {
	return c.Space
}

// Values returns the device channel values, followed by the alpha value.
func (c ICC) Values() []float64 {
	return append(append([]float64{}, c.Device...), c.Alpha)
}

// RGBA implements the [stdcolor.Color] interface.
func (c ICC) RGBA() (r, g, b, a uint32) {
	return rgbaValues(c.SRGB())
}

// XYZ converts the colour to tristimulus values relative to D50, the
// white point of the profile connection space.
func (c ICC) XYZ() XYZ {
	if c.Space == nil {
		return XYZ{Alpha: c.Alpha, Space: XYZD50}
	}
	x, y, z := c.Space.toPCS.ToXYZ(c.Device)
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, Space: XYZD50}
}

// SRGB converts the colour into the sRGB colour space.
func (c ICC) SRGB() RGB {
	return c.XYZ().SRGB()
}

func (c ICC) Lab() Lab     { return c.XYZ().Lab() }
func (c ICC) LCh() LCh     { return c.XYZ().LCh() }
func (c ICC) Luv() Luv     { return c.XYZ().Luv() }
func (c ICC) HCL() HCL     { return c.XYZ().HCL() }
func (c ICC) Oklab() Oklab { return c.XYZ().Oklab() }
func (c ICC) Oklch() Oklch { return c.XYZ().Oklch() }
func (c ICC) ICtCp() ICtCp { return c.XYZ().ICtCp() }

func (c ICC) HSL() HSL   { return c.SRGB().HSL() }
func (c ICC) HSV() HSV   { return c.SRGB().HSV() }
func (c ICC) HWB() HWB   { return c.SRGB().HWB() }
func (c ICC) CMYK() CMYK { return c.SRGB().CMYK() }

func (c ICC) Ansi16() Ansi16   { return c.SRGB().Ansi16() }
func (c ICC) Ansi256() Ansi256 { return c.SRGB().Ansi256() }
