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

// Illuminant is a reference white, given as CIE 1931 XYZ coordinates
// normalised to Y=1.  Illuminants parameterise the [XYZ], [Lab] and [Luv]
// models as well as RGB working spaces.
type Illuminant struct {
	X, Y, Z float64
}

// Standard illuminants.
//
// https://en.wikipedia.org/wiki/Standard_illuminant
var (
	// WhitePointA is CIE standard illuminant A (incandescent light).
	WhitePointA = Illuminant{1.09850, 1.0, 0.35585}

	// WhitePointC is CIE standard illuminant C (average daylight, obsolete).
	WhitePointC = Illuminant{0.98074, 1.0, 1.18232}

	// WhitePointD50 is CIE standard illuminant D50 (horizon light).
	WhitePointD50 = Illuminant{0.96422, 1.0, 0.82521}

	// WhitePointD55 is CIE standard illuminant D55 (mid-morning daylight).
	WhitePointD55 = Illuminant{0.95682, 1.0, 0.92149}

	// WhitePointD65 is CIE standard illuminant D65 (noon daylight).
	WhitePointD65 = Illuminant{0.95047, 1.0, 1.08883}

	// WhitePointD75 is CIE standard illuminant D75 (north sky daylight).
	WhitePointD75 = Illuminant{0.94972, 1.0, 1.22638}

	// WhitePointE is the equal-energy illuminant.
	WhitePointE = Illuminant{1.0, 1.0, 1.0}
)
