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

// RGBSpace describes an RGB working space: a reference white, a transfer
// function pair, and the linear transformation between linear RGB and CIE
// XYZ tristimulus values.
//
// RGBSpace values are immutable after construction.  The pre-defined
// spaces ([SRGB], [SRGBLinear], [AdobeRGB], [DisplayP3], [ProPhotoRGB],
// [BT2020]) can be shared freely between goroutines.
type RGBSpace struct {
	name       string
	whitePoint Illuminant
	tf         TransferFunction
	toXYZ      Matrix
	fromXYZ    Matrix
}

// NewRGBSpace creates a new RGB working space.  The matrix toXYZ maps
// linear RGB values to XYZ tristimulus values; its inverse is derived here
// once and reused for all conversions out of XYZ.
func NewRGBSpace(name string, whitePoint Illuminant, tf TransferFunction, toXYZ Matrix) *RGBSpace {
	return &RGBSpace{
		name:       name,
		whitePoint: whitePoint,
		tf:         tf,
		toXYZ:      toXYZ,
		fromXYZ:    toXYZ.Inverse(),
	}
}

// Name returns the name of the colour space.
func (s *RGBSpace) Name() string {
	return s.name
}

// WhitePoint returns the reference white of the colour space.
func (s *RGBSpace) WhitePoint() Illuminant {
	return s.whitePoint
}

// TransferFunction returns the transfer function pair of the colour space.
func (s *RGBSpace) TransferFunction() TransferFunction {
	return s.tf
}

// New returns an opaque colour in this colour space.
// Components are nominally in the range [0, 1], but values outside this
// range are preserved for out-of-gamut intermediate results.
func (s *RGBSpace) New(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b, Alpha: 1, Space: s}
}

// NewA returns a colour with the given alpha value in this colour space.
func (s *RGBSpace) NewA(r, g, b, alpha float64) RGB {
	return RGB{R: r, G: g, B: b, Alpha: alpha, Space: s}
}

// From255 returns an opaque colour from integer components in [0, 255].
func (s *RGBSpace) From255(r, g, b uint8) RGB {
	return s.From255A(r, g, b, 255)
}

// From255A returns a colour from integer components in [0, 255].
func (s *RGBSpace) From255A(r, g, b, alpha uint8) RGB {
	return RGB{
		R:     float64(r) / 255,
		G:     float64(g) / 255,
		B:     float64(b) / 255,
		Alpha: float64(alpha) / 255,
		Space: s,
	}
}

// Grey returns the achromatic colour with the given amount on all three
// channels.
func (s *RGBSpace) Grey(amount float64) RGB {
	return s.New(amount, amount, amount)
}

// spacesEqual reports whether two RGB working spaces describe the same
// space.  Distinct space values with identical parameters compare equal.
func spacesEqual(a, b *RGBSpace) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name &&
		a.whitePoint == b.whitePoint &&
		a.tf == b.tf &&
		a.toXYZ == b.toXYZ
}

// srgbToXYZ maps linear sRGB to XYZ relative to D65.
var srgbToXYZ = Matrix{
	0.41239079926595934, 0.357584339383878, 0.1804807884018343,
	0.21263900587151027, 0.715168678767756, 0.07219231536073371,
	0.01933081871559182, 0.11919477979462598, 0.9505321522496607,
}

// The standard RGB working spaces.
var (
	// SRGB is the sRGB colour space (IEC 61966-2-1).
	SRGB = NewRGBSpace("sRGB", WhitePointD65, srgbTransfer{}, srgbToXYZ)

	// SRGBLinear is sRGB without the transfer function, i.e. with
	// linear-light signal values.
	SRGBLinear = NewRGBSpace("Linear sRGB", WhitePointD65, Linear(), srgbToXYZ)

	// AdobeRGB is the Adobe RGB (1998) colour space.
	AdobeRGB = NewRGBSpace("Adobe RGB", WhitePointD65, Gamma(563.0/256), Matrix{
		0.5766690429101305, 0.1855582379065463, 0.1882286462349947,
		0.29734497525053605, 0.6273635662554661, 0.07529145849399788,
		0.02703136138641234, 0.07068885253582723, 0.9911085141124861,
	})

	// DisplayP3 is the Display P3 colour space.
	DisplayP3 = NewRGBSpace("Display P3", WhitePointD65, srgbTransfer{}, Matrix{
		0.4865709486482162, 0.26566769316909306, 0.19821728523436247,
		0.2289745640697488, 0.6917385218365064, 0.079286914093745,
		0.0, 0.04511338185890264, 1.043944368900976,
	})

	// ProPhotoRGB is the ROMM RGB colour space.  Note that its reference
	// white is D50, not D65.
	ProPhotoRGB = NewRGBSpace("ProPhoto RGB", WhitePointD50, prophotoTransfer{}, Matrix{
		0.7977604896723027, 0.13518583717574031, 0.0313493495815248,
		0.2880711282292934, 0.7118432178101014, 0.00008565396060525902,
		0.0, 0.0, 0.8251046025104601,
	})

	// BT2020 is the ITU-R BT.2020 colour space.
	BT2020 = NewRGBSpace("BT.2020", WhitePointD65, bt2020Transfer{}, Matrix{
		0.6369580483012914, 0.14461690358620832, 0.16888097516417205,
		0.2627002120112671, 0.6779980715188708, 0.05930171646986196,
		0.0, 0.028072693049087428, 1.060985057710791,
	})
)
