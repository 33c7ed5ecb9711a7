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
	"testing"
)

func TestLookupModel(t *testing.T) {
	for _, name := range ModelNames() {
		m := LookupModel(name)
		if m == nil {
			t.Fatalf("LookupModel(%q) = nil", name)
		}
		if m.Name() != name {
			t.Errorf("LookupModel(%q).Name() = %q", name, m.Name())
		}
	}

	if m := LookupModel("no such model"); m != nil {
		t.Errorf("got %v, want nil", m)
	}
}

func TestModelNames(t *testing.T) {
	names := ModelNames()
	if len(names) != len(testModels) {
		t.Errorf("got %d names, want %d", len(names), len(testModels))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}

func TestLookupSpace(t *testing.T) {
	for _, name := range SpaceNames() {
		s := LookupSpace(name)
		if s == nil {
			t.Fatalf("LookupSpace(%q) = nil", name)
		}
		if s.Name() != name {
			t.Errorf("LookupSpace(%q).Name() = %q", name, s.Name())
		}
	}

	if s := LookupSpace("no such space"); s != nil {
		t.Errorf("got %v, want nil", s)
	}

	if LookupSpace("sRGB") != SRGB {
		t.Error("LookupSpace does not return the shared space values")
	}
}

func TestSpaceNames(t *testing.T) {
	names := SpaceNames()
	if len(names) != len(testSpaces) {
		t.Errorf("got %d names, want %d", len(names), len(testSpaces))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}
