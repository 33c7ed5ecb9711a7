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

func TestLuvWhite(t *testing.T) {
	luv := SRGB.New(1, 1, 1).Luv()
	if math.Abs(luv.L-100) > 0.01 {
		t.Errorf("L = %g, want 100", luv.L)
	}
	if math.Abs(luv.U) > 0.05 || math.Abs(luv.V) > 0.05 {
		t.Errorf("u, v = %g, %g, want near 0", luv.U, luv.V)
	}
}

func TestLuvBlack(t *testing.T) {
	luv := SRGB.New(0, 0, 0).Luv()
	if luv.L != 0 || luv.U != 0 || luv.V != 0 {
		t.Errorf("black is (%g, %g, %g), want (0, 0, 0)", luv.L, luv.U, luv.V)
	}

	back := luv.XYZ()
	if back.X != 0 || back.Y != 0 || back.Z != 0 {
		t.Errorf("black XYZ is (%g, %g, %g), want (0, 0, 0)",
			back.X, back.Y, back.Z)
	}
}

func TestLuvRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.Luv().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

func TestHCLRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	luv := Luv{L: 40, U: -20, V: 15, Alpha: 1}
	back := luv.HCL().Luv()
	if d := cmp.Diff(luv.Values(), back.Values(), approx); d != "" {
		t.Errorf("round trip changed colour (-want +got):\n%s", d)
	}
}
