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

import "math"

// spow raises x to the given power, preserving the sign of x.
// Working-space RGB values can be negative for colours outside the
// space's gamut, and a plain math.Pow would return NaN for these.
func spow(x, p float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), p), x)
}

// normDeg maps an angle in degrees into the range [0, 360).
func normDeg(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp01 truncates x into the range [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func degToRad(h float64) float64 {
	return h * math.Pi / 180
}

func radToDeg(h float64) float64 {
	return h * 180 / math.Pi
}

// ε is the tolerance below which chroma-like quantities are treated as zero.
const ε = 1e-7
