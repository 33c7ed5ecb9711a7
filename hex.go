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
	"math"
	"strings"
)

// Hex parses a CSS-style hex colour string.  The leading "#" is
// optional, and the digit forms "rgb", "rgba", "rrggbb" and "rrggbbaa"
// are accepted.  The resulting colour is in the sRGB colour space.
func Hex(s string) (RGB, error) {
	orig := s
	s = strings.TrimPrefix(s, "#")

	digit := func(i int) (int, error) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			return int(c - '0'), nil
		case c >= 'a' && c <= 'f':
			return int(c-'a') + 10, nil
		case c >= 'A' && c <= 'F':
			return int(c-'A') + 10, nil
		}
		return 0, fmt.Errorf("Hex: invalid colour %q", orig)
	}

	var comps [4]float64
	comps[3] = 1

	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, err := digit(i)
			if err != nil {
				return RGB{}, err
			}
			comps[i] = float64(d*16+d) / 255
		}
	case 6, 8:
		for i := 0; i < len(s)/2; i++ {
			hi, err := digit(2 * i)
			if err != nil {
				return RGB{}, err
			}
			lo, err := digit(2*i + 1)
			if err != nil {
				return RGB{}, err
			}
			comps[i] = float64(hi*16+lo) / 255
		}
	default:
		return RGB{}, fmt.Errorf("Hex: invalid colour %q", orig)
	}

	return RGB{
		R:     comps[0],
		G:     comps[1],
		B:     comps[2],
		Alpha: comps[3],
		Space: SRGB,
	}, nil
}

// Hex formats the colour as a CSS hex string.  The colour is first
// converted to sRGB and clamped.  Opaque colours use the "#rrggbb"
// form, all others "#rrggbbaa".
func (c RGB) Hex() string {
	cc := c.SRGB().Clamp()
	r := int(math.Round(cc.R * 255))
	g := int(math.Round(cc.G * 255))
	b := int(math.Round(cc.B * 255))
	a := int(math.Round(cc.Alpha * 255))
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}
