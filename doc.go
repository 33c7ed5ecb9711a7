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

// Package color converts colour values between colour models.
//
// Every colour value implements the [Color] interface, which can convert
// the value to any of the supported models.  The supported models are
//   - [RGB]: red/green/blue values in a given [RGBSpace]
//   - [XYZ]: CIE 1931 XYZ tristimulus values
//   - [Lab], [LCh]: CIE 1976 L*a*b* and its polar form
//   - [Luv], [HCL]: CIE 1976 L*u*v* and its polar form
//   - [Oklab], [Oklch]: the Oklab perceptual space and its polar form
//   - [ICtCp]: the ITU-R BT.2100 ICtCp space
//   - [HSL], [HSV], [HWB]: cylindrical transformations of sRGB
//   - [CMYK]: naive cyan/magenta/yellow/black
//   - [Ansi16], [Ansi256]: quantised terminal palettes
//
// RGB values are created through an [RGBSpace], for example
//
//	c := color.SRGB.New(0.2, 0.4, 0.6)
//	lab := c.Lab()
//
// The pre-defined RGB working spaces are [SRGB], [SRGBLinear], [AdobeRGB],
// [DisplayP3], [ProPhotoRGB] and [BT2020].  Custom spaces can be created
// using [NewRGBSpace].  Conversions between different colour families go
// through XYZ as the connection space.
//
// All values are immutable, and all conversions are pure functions, so
// colours can be shared freely between goroutines.
package color
