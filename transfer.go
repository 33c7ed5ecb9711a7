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

// TransferFunction converts between non-linear signal values and linear
// light.  The two directions must be inverses of each other.
type TransferFunction interface {
	// EOTF decodes a non-linear signal value into linear light.
	EOTF(x float64) float64

	// OETF encodes a linear light value as a non-linear signal value.
	OETF(x float64) float64
}

// Gamma returns the transfer function pair for a pure power curve with the
// given exponent.  The sign of the input is preserved, so that negative
// working-space values survive a round trip.
func Gamma(gamma float64) TransferFunction {
	return gammaTransfer{gamma}
}

type gammaTransfer struct {
	gamma float64
}

func (t gammaTransfer) EOTF(x float64) float64 {
	return spow(x, t.gamma)
}

func (t gammaTransfer) OETF(x float64) float64 {
	return spow(x, 1/t.gamma)
}

// Linear returns the identity transfer function pair, for colour spaces
// whose signal values are already linear light.
func Linear() TransferFunction {
	return linearTransfer{}
}

type linearTransfer struct{}

func (t linearTransfer) EOTF(x float64) float64 { return x }
func (t linearTransfer) OETF(x float64) float64 { return x }

// srgbTransfer is the piecewise sRGB curve (IEC 61966-2-1).
type srgbTransfer struct{}

func (t srgbTransfer) EOTF(x float64) float64 {
	if abs := math.Abs(x); abs <= 0.04045 {
		return x / 12.92
	} else {
		return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), x)
	}
}

func (t srgbTransfer) OETF(x float64) float64 {
	if abs := math.Abs(x); abs <= 0.0031308 {
		return 12.92 * x
	} else {
		return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, x)
	}
}

// bt2020Transfer is the ITU-R BT.2020 camera curve.
type bt2020Transfer struct{}

const (
	bt2020Alpha = 1.09929682680944
	bt2020Beta  = 0.018053968510807
)

func (t bt2020Transfer) EOTF(x float64) float64 {
	if abs := math.Abs(x); abs < bt2020Beta*4.5 {
		return x / 4.5
	} else {
		return math.Copysign(math.Pow((abs+(bt2020Alpha-1))/bt2020Alpha, 1/0.45), x)
	}
}

func (t bt2020Transfer) OETF(x float64) float64 {
	if abs := math.Abs(x); abs <= bt2020Beta {
		return 4.5 * x
	} else {
		return math.Copysign(bt2020Alpha*math.Pow(abs, 0.45)-(bt2020Alpha-1), x)
	}
}

// prophotoTransfer is the ROMM RGB curve (ISO 22028-2).
type prophotoTransfer struct{}

func (t prophotoTransfer) EOTF(x float64) float64 {
	const et2 = 16.0 / 512
	if abs := math.Abs(x); abs <= et2 {
		return x / 16
	} else {
		return math.Copysign(math.Pow(abs, 1.8), x)
	}
}

func (t prophotoTransfer) OETF(x float64) float64 {
	const et = 1.0 / 512
	if abs := math.Abs(x); abs < et {
		return 16 * x
	} else {
		return math.Copysign(math.Pow(abs, 1/1.8), x)
	}
}
