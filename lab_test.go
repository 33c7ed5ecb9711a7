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

func TestLabWhite(t *testing.T) {
	lab := SRGB.New(1, 1, 1).Lab()
	if math.Abs(lab.L-100) > 0.01 {
		t.Errorf("L = %g, want 100", lab.L)
	}
	if math.Abs(lab.A) > 0.05 || math.Abs(lab.B) > 0.05 {
		t.Errorf("a, b = %g, %g, want near 0", lab.A, lab.B)
	}
}

func TestLabBlack(t *testing.T) {
	lab := SRGB.New(0, 0, 0).Lab()
	if lab.L != 0 || lab.A != 0 || lab.B != 0 {
		t.Errorf("black is (%g, %g, %g), want (0, 0, 0)", lab.L, lab.A, lab.B)
	}

	// L = 0 maps back to exact black
	back := lab.XYZ()
	if back.X != 0 || back.Y != 0 || back.Z != 0 {
		t.Errorf("black XYZ is (%g, %g, %g), want (0, 0, 0)",
			back.X, back.Y, back.Z)
	}
}

func TestLabRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.Lab().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

func TestLCh(t *testing.T) {
	lab := Lab{L: 50, A: 10, B: 10, Alpha: 1}
	lch := lab.LCh()
	if math.Abs(lch.C-10*math.Sqrt2) > 1e-9 {
		t.Errorf("C = %g, want %g", lch.C, 10*math.Sqrt2)
	}
	if math.Abs(lch.H-45) > 1e-9 {
		t.Errorf("H = %g, want 45", lch.H)
	}

	back := lch.Lab()
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(lab.Values(), back.Values(), approx); d != "" {
		t.Errorf("round trip changed colour (-want +got):\n%s", d)
	}
}

// TestLChHueRange checks that hue angles are always reported in the
// range [0, 360).
func TestLChHueRange(t *testing.T) {
	cases := []Lab{
		{L: 50, A: 10, B: -10, Alpha: 1},
		{L: 50, A: -10, B: -10, Alpha: 1},
		{L: 50, A: -10, B: 10, Alpha: 1},
		{L: 50, A: 0, B: -1, Alpha: 1},
	}
	for _, lab := range cases {
		h := lab.LCh().H
		if h < 0 || h >= 360 {
			t.Errorf("Lab(%g, %g, %g): hue %g out of range", lab.L, lab.A, lab.B, h)
		}
	}
}

func TestLabPivot(t *testing.T) {
	// values straddling the linear/cubic split of the CIE pivot function
	cases := []Lab{
		{L: 0.5, A: 0.1, B: -0.1, Alpha: 1},
		{L: 8, A: 1, B: 1, Alpha: 1},
		{L: 9, A: -2, B: 0.5, Alpha: 1},
		{L: 60, A: 30, B: -40, Alpha: 1},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, lab := range cases {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := lab.XYZ().Lab()
			if d := cmp.Diff(lab.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}
