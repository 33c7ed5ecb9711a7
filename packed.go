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
	"math"
)

// Packed is an sRGB colour packed into a 32-bit word, with the red
// channel in the most significant byte and alpha in the least
// significant byte.
type Packed uint32

// R returns the red channel.
func (p Packed) R() uint8 { return uint8(p >> 24) }

// G returns the green channel.
func (p Packed) G() uint8 { return uint8(p >> 16) }

// B returns the blue channel.
func (p Packed) B() uint8 { return uint8(p >> 8) }

// A returns the alpha channel.
func (p Packed) A() uint8 { return uint8(p) }

// RGB unpacks the colour into the sRGB colour space.
func (p Packed) RGB() RGB {
	return RGB{
		R:     float64(p.R()) / 255,
		G:     float64(p.G()) / 255,
		B:     float64(p.B()) / 255,
		Alpha: float64(p.A()) / 255,
		Space: SRGB,
	}
}

// Pack converts the colour to sRGB, clamps it, and packs it into a
// 32-bit word.
func (c RGB) Pack() Packed {
	cc := c.SRGB().Clamp()
	r := uint32(math.Round(cc.R * 255))
	g := uint32(math.Round(cc.G * 255))
	b := uint32(math.Round(cc.B * 255))
	a := uint32(math.Round(cc.Alpha * 255))
	return Packed(r<<24 | g<<16 | b<<8 | a)
}
