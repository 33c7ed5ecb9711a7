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

func TestPQInverse(t *testing.T) {
	for _, x := range []float64{0, 1e-6, 0.01, 0.18, 0.5, 0.9, 1} {
		y := pqEOTF(pqOETF(x))
		if math.Abs(y-x) > 1e-9 {
			t.Errorf("pqEOTF(pqOETF(%g)) = %g", x, y)
		}
	}
}

// TestICtCpWhite checks the white point: BT.2100 places reference white
// at I = 1 with vanishing chroma.
func TestICtCpWhite(t *testing.T) {
	c := BT2020.New(1, 1, 1).ICtCp()
	if math.Abs(c.I-1) > 1e-9 {
		t.Errorf("I = %g, want 1", c.I)
	}
	if math.Abs(c.Ct) > 1e-9 || math.Abs(c.Cp) > 1e-9 {
		t.Errorf("Ct, Cp = %g, %g, want 0", c.Ct, c.Cp)
	}
}

func TestICtCpRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	for j, c := range testColors {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			cc := c.ConvertTo(BT2020)
			back := cc.ICtCp().BT2020()
			if d := cmp.Diff(cc.Values(), back.Values(), approx); d != "" {
				t.Errorf("round trip changed colour (-want +got):\n%s", d)
			}
		})
	}
}
