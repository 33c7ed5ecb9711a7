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
	"sort"

	"golang.org/x/exp/maps"
)

var models = map[string]Model{
	"RGB":     ModelRGB,
	"XYZ":     ModelXYZ,
	"Lab":     ModelLab,
	"LCh":     ModelLCh,
	"Luv":     ModelLuv,
	"HCL":     ModelHCL,
	"Oklab":   ModelOklab,
	"Oklch":   ModelOklch,
	"ICtCp":   ModelICtCp,
	"HSL":     ModelHSL,
	"HSV":     ModelHSV,
	"HWB":     ModelHWB,
	"CMYK":    ModelCMYK,
	"Ansi16":  ModelAnsi16,
	"Ansi256": ModelAnsi256,
}

var spaces = map[string]*RGBSpace{
	"sRGB":         SRGB,
	"Linear sRGB":  SRGBLinear,
	"Adobe RGB":    AdobeRGB,
	"Display P3":   DisplayP3,
	"ProPhoto RGB": ProPhotoRGB,
	"BT.2020":      BT2020,
}

// LookupModel returns the colour model with the given name, or nil if no
// such model exists.  Valid names are those listed by [ModelNames].
func LookupModel(name string) Model {
	return models[name]
}

// ModelNames returns the names of all colour models, in alphabetical
// order.
func ModelNames() []string {
	names := maps.Keys(models)
	sort.Strings(names)
	return names
}

// LookupSpace returns the RGB working space with the given name, or nil
// if no such space exists.  Valid names are those listed by
// [SpaceNames].
func LookupSpace(name string) *RGBSpace {
	return spaces[name]
}

// SpaceNames returns the names of all built-in RGB working spaces, in
// alphabetical order.
func SpaceNames() []string {
	names := maps.Keys(spaces)
	sort.Strings(names)
	return names
}
