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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCMYKKnownValues(t *testing.T) {
	cases := []struct {
		col        RGB
		c, m, y, k float64
	}{
		{SRGB.New(1, 1, 1), 0, 0, 0, 0},
		{SRGB.New(0, 0, 0), 0, 0, 0, 1},
		{SRGB.New(1, 0, 0), 0, 1, 1, 0},
		{SRGB.New(0, 1, 0), 1, 0, 1, 0},
		{SRGB.New(0, 0, 1), 1, 1, 0, 0},
		{SRGB.New(0.5, 0.5, 0.5), 0, 0, 0, 0.5},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, test := range cases {
		got := test.col.CMYK()
		want := []float64{test.c, test.m, test.y, test.k, 1}
		if d := cmp.Diff(want, got.Values(), approx); d != "" {
			t.Errorf("%v (-want +got):\n%s", test.col, d)
		}
	}
}

func TestCMYKRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			back := c.CMYK().SRGB()
			if d := cmp.Diff(c.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}
