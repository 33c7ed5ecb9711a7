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

// Matrix is a 3x3 matrix in row-major order.
type Matrix [9]float64

// Mul multiplies the matrix with the column vector (x, y, z).
func (m Matrix) Mul(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// Inverse returns the inverse of the matrix.
// The matrix must be invertible.
func (m Matrix) Inverse() Matrix {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	A := e*i - f*h
	B := f*g - d*i
	C := d*h - e*g
	det := a*A + b*B + c*C

	return Matrix{
		A / det, (c*h - b*i) / det, (b*f - c*e) / det,
		B / det, (a*i - c*g) / det, (c*d - a*f) / det,
		C / det, (b*g - a*h) / det, (a*e - b*d) / det,
	}
}
