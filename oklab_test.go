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

func TestOklabWhite(t *testing.T) {
	ok := SRGB.New(1, 1, 1).Oklab()
	if math.Abs(ok.L-1) > 1e-3 {
		t.Errorf("L = %g, want 1", ok.L)
	}
	if math.Abs(ok.A) > 1e-3 || math.Abs(ok.B) > 1e-3 {
		t.Errorf("a, b = %g, %g, want near 0", ok.A, ok.B)
	}
}

func TestOklabRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.Oklab().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}

// TestOklabPaths checks that the direct sRGB path and the path through
// XYZ give the same result.
func TestOklabPaths(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-4)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			direct := c.Oklab()
			viaXYZ := c.XYZ().Oklab()
			if d := cmp.Diff(viaXYZ.Values(), direct.Values(), approx); d != "" {
				t.Errorf("paths disagree (-want +got):\n%s", d)
			}
		})
	}
}

func TestOklchRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	ok := Oklab{L: 0.6, A: -0.1, B: 0.05, Alpha: 1}
	back := ok.Oklch().Oklab()
	if d := cmp.Diff(ok.Values(), back.Values(), approx); d != "" {
		t.Errorf("round trip changed colour (-want +got):\n%s", d)
	}
}
