// SPDX-License-Identifier: MIT
// Package quat: dense storage types.
// Matrix is a row-major quaternion matrix with four float64 components per
// cell; Mask is the matching boolean observation grid. Both keep flat
// backing slices for cache friendliness, mirroring the module's dense
// real-matrix conventions.

package quat

import "fmt"

// Components is the number of scalar components per quaternion entry:
// one real plus three imaginary-like (commonly read as color channels).
const Components = 4

// matrixErrorf wraps an underlying error with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("quat.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an N×M quaternion matrix.
// r is rows, c is columns, and data holds r*c*4 scalars in row-major
// order, four consecutive components per cell.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c*Components
}

// NewMatrix creates an r×c quaternion matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols*Components)}, nil
}

// NewMatrixFromSlice creates an r×c quaternion matrix backed by a copy of
// data. The slice must hold exactly rows*cols*4 scalars laid out row-major
// with four consecutive components per cell; any other length is a
// contract violation (ErrBadShape), never a silent truncation.
// Complexity: O(r*c).
func NewMatrixFromSlice(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols*Components {
		return nil, ErrBadShape
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Matrix{r: rows, c: cols, data: cp}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat base offset of cell (row, col) or returns
// ErrOutOfRange. Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return (row*m.c + col) * Components, nil
}

// At retrieves the four components of the quaternion at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) ([Components]float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return [Components]float64{}, err
	}

	return [Components]float64(m.data[idx : idx+Components]), nil
}

// Set assigns the four components q at (row, col). Complexity: O(1).
func (m *Matrix) Set(row, col int, q [Components]float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	copy(m.data[idx:idx+Components], q[:])

	return nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Raw exposes a copy of the flat backing slice (row-major, four components
// per cell). Intended for I/O adapters; mutation of the returned slice
// never aliases the matrix. Complexity: O(r*c).
func (m *Matrix) Raw() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Mask is an N×M boolean observation grid. true marks an observed (known)
// pixel, false a missing one.
type Mask struct {
	r, c int
	data []bool // flat backing storage, length == r*c
}

// NewMask creates an r×c mask with every entry false (all missing).
// Complexity: O(r*c).
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Mask{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// NewMaskFromSlice creates an r×c mask backed by a copy of data, which
// must hold exactly rows*cols entries. Complexity: O(r*c).
func NewMaskFromSlice(rows, cols int, data []bool) (*Mask, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}
	cp := make([]bool, len(data))
	copy(cp, data)

	return &Mask{r: rows, c: cols, data: cp}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (k *Mask) Rows() int { return k.r }

// Cols returns the number of columns. Complexity: O(1).
func (k *Mask) Cols() int { return k.c }

// At reports whether the pixel at (row, col) is observed.
// Complexity: O(1).
func (k *Mask) At(row, col int) (bool, error) {
	if row < 0 || row >= k.r || col < 0 || col >= k.c {
		return false, matrixErrorf("Mask.At", row, col, ErrOutOfRange)
	}

	return k.data[row*k.c+col], nil
}

// Set marks the pixel at (row, col) as observed (true) or missing (false).
// Complexity: O(1).
func (k *Mask) Set(row, col int, observed bool) error {
	if row < 0 || row >= k.r || col < 0 || col >= k.c {
		return matrixErrorf("Mask.Set", row, col, ErrOutOfRange)
	}
	k.data[row*k.c+col] = observed

	return nil
}

// Clone returns a deep copy of the mask. Complexity: O(r*c).
func (k *Mask) Clone() *Mask {
	cp := make([]bool, len(k.data))
	copy(cp, k.data)

	return &Mask{r: k.r, c: k.c, data: cp}
}

// Count returns the number of observed entries. Complexity: O(r*c).
func (k *Mask) Count() int {
	var n int
	for _, b := range k.data {
		if b {
			n++
		}
	}

	return n
}
