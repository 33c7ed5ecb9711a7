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
	"testing"
)

func TestPackedChannels(t *testing.T) {
	p := Packed(0x336699cc)
	if p.R() != 0x33 || p.G() != 0x66 || p.B() != 0x99 || p.A() != 0xcc {
		t.Errorf("got (%#02x, %#02x, %#02x, %#02x)", p.R(), p.G(), p.B(), p.A())
	}
}

func TestPackedRoundTrip(t *testing.T) {
	for _, p := range []Packed{0x00000000, 0xffffffff, 0x336699cc, 0x80808080} {
		if got := p.RGB().Pack(); got != p {
			t.Errorf("got %#08x, want %#08x", uint32(got), uint32(p))
		}
	}
}

func TestPack(t *testing.T) {
	c := SRGB.New(1, 0, 0.2)
	if got := c.Pack(); got != 0xff0033ff {
		t.Errorf("got %#08x, want 0xff0033ff", uint32(got))
	}

	// out-of-range values are clamped
	c = SRGB.NewA(2, -1, 0.5, 1)
	if got := c.Pack(); got != 0xff0080ff {
		t.Errorf("got %#08x, want 0xff0080ff", uint32(got))
	}
}
