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
	stdcolor "image/color"
	"testing"
)

var testModels = []Model{
	ModelRGB,
	ModelXYZ,
	ModelLab,
	ModelLCh,
	ModelLuv,
	ModelHCL,
	ModelOklab,
	ModelOklch,
	ModelICtCp,
	ModelHSL,
	ModelHSV,
	ModelHWB,
	ModelCMYK,
	ModelAnsi16,
	ModelAnsi256,
}

func TestModelNew(t *testing.T) {
	for _, m := range testModels {
		t.Run(m.Name(), func(t *testing.T) {
			n := m.Channels()

			values := make([]float64, n)
			for i := range values {
				// small values are valid in every model
				values[i] = 0.25
			}
			if m == ModelAnsi16 {
				values[0] = 31
			}

			c, err := m.New(values)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c.Model() != m {
				t.Errorf("wrong model: got %q", c.Model().Name())
			}
			got := c.Values()
			if len(got) != n+1 {
				t.Fatalf("got %d values, want %d", len(got), n+1)
			}
			if got[n] != 1 {
				t.Errorf("default alpha = %g, want 1", got[n])
			}

			// with explicit alpha
			c, err = m.New(append(values, 1))
			if err != nil {
				t.Fatalf("New with alpha failed: %v", err)
			}
			if v := c.Values(); v[n] != 1 {
				t.Errorf("alpha = %g, want 1", v[n])
			}

			// wrong component counts are rejected
			if _, err := m.New(values[:n-1]); n > 1 && err == nil {
				t.Error("expected error for too few components")
			}
			if _, err := m.New(make([]float64, n+2)); err == nil {
				t.Error("expected error for too many components")
			}
		})
	}
}

func TestPolarFlags(t *testing.T) {
	cases := []struct {
		model Model
		want  []bool
	}{
		{ModelRGB, []bool{false, false, false}},
		{ModelLCh, []bool{false, false, true}},
		{ModelHCL, []bool{true, false, false}},
		{ModelOklch, []bool{false, false, true}},
		{ModelHSL, []bool{true, false, false}},
		{ModelHSV, []bool{true, false, false}},
		{ModelHWB, []bool{true, false, false}},
		{ModelCMYK, []bool{false, false, false, false}},
	}
	for _, test := range cases {
		for i, want := range test.want {
			if got := test.model.Polar(i); got != want {
				t.Errorf("%s.Polar(%d) = %t, want %t",
					test.model.Name(), i, got, want)
			}
		}
	}
}

func TestFromStd(t *testing.T) {
	c := FromStd(stdcolor.RGBA{R: 255, G: 0, B: 0, A: 255})
	if c.R != 1 || c.G != 0 || c.B != 0 || c.Alpha != 1 {
		t.Errorf("got %v", c)
	}

	// FromStd un-premultiplies alpha
	c = FromStd(stdcolor.RGBA{R: 128, G: 0, B: 0, A: 128})
	if c.R < 0.99 || c.R > 1.01 {
		t.Errorf("R = %g, want ~1", c.R)
	}

	// fully transparent input
	c = FromStd(stdcolor.RGBA{})
	if c.Alpha != 0 {
		t.Errorf("alpha = %g, want 0", c.Alpha)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := SRGB.New(1, 0, 0).RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("got (%d, %d, %d, %d)", r, g, b, a)
	}

	// RGBA returns premultiplied values
	r, _, _, a = SRGB.NewA(1, 0, 0, 0.5).RGBA()
	if r > a {
		t.Errorf("premultiplied r = %d exceeds alpha %d", r, a)
	}
}

// TestConvertThroughStd converts colours through Go's standard colour
// interface and checks that models are interoperable with image/color.
func TestConvertThroughStd(t *testing.T) {
	var m stdcolor.Model = ModelLab
	got := m.Convert(stdcolor.White)
	lab, ok := got.(Lab)
	if !ok {
		t.Fatalf("got %T, want Lab", got)
	}
	if lab.L < 99 || lab.L > 101 {
		t.Errorf("L = %g, want ~100", lab.L)
	}
}
