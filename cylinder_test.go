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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHSLKnownValues(t *testing.T) {
	cases := []struct {
		col     RGB
		h, s, l float64
	}{
		{SRGB.New(1, 0, 0), 0, 1, 0.5},
		{SRGB.New(0, 1, 0), 120, 1, 0.5},
		{SRGB.New(0, 0, 1), 240, 1, 0.5},
		{SRGB.New(1, 1, 0), 60, 1, 0.5},
		{SRGB.New(0, 1, 1), 180, 1, 0.5},
		{SRGB.New(1, 0, 1), 300, 1, 0.5},
	}
	for _, test := range cases {
		got := test.col.HSL()
		if math.Abs(got.H-test.h) > 1e-9 ||
			math.Abs(got.S-test.s) > 1e-9 ||
			math.Abs(got.L-test.l) > 1e-9 {
			t.Errorf("%v: got (%g, %g, %g), want (%g, %g, %g)",
				test.col, got.H, got.S, got.L, test.h, test.s, test.l)
		}
	}
}

// TestAchromaticHue checks that grey colours report a NaN hue in all
// cylindrical models.
func TestAchromaticHue(t *testing.T) {
	grey := SRGB.Grey(0.5)
	if h := grey.HSL().H; !math.IsNaN(h) {
		t.Errorf("HSL hue = %g, want NaN", h)
	}
	if h := grey.HSV().H; !math.IsNaN(h) {
		t.Errorf("HSV hue = %g, want NaN", h)
	}
	if h := grey.HWB().H; !math.IsNaN(h) {
		t.Errorf("HWB hue = %g, want NaN", h)
	}

	// the NaN hue converts back without poisoning the result
	back := grey.HSL().SRGB()
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(grey.Values(), back.Values(), approx); d != "" {
		t.Errorf("grey round trip failed (-want +got):\n%s", d)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.HSL().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.HSV().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

func TestHWBRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.HWB().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

// TestHWBOverSaturated checks the degenerate case where whiteness and
// blackness sum to more than one.
func TestHWBOverSaturated(t *testing.T) {
	c := HWB{H: 120, W: 0.8, B: 0.4, Alpha: 1}.SRGB()
	want := 0.8 / 1.2
	if math.Abs(c.R-want) > 1e-9 || math.Abs(c.G-want) > 1e-9 || math.Abs(c.B-want) > 1e-9 {
		t.Errorf("got (%g, %g, %g), want grey %g", c.R, c.G, c.B, want)
	}
}
