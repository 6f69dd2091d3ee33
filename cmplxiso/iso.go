// SPDX-License-Identifier: MIT
// Package cmplxiso: forward and inverse block-embedding maps plus the
// tiled-mask companion. Strict fail-fast validation; no partial results.

package cmplxiso

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/AlexS90/quatimage/quat"
)

var (
	// ErrNilMatrix indicates a nil matrix or mask argument.
	ErrNilMatrix = errors.New("cmplxiso: nil matrix")

	// ErrMaskMismatch indicates the observation mask's shape differs from
	// the quaternion matrix's first two axes.
	ErrMaskMismatch = errors.New("cmplxiso: mask shape mismatch")

	// ErrOddShape indicates that a complex matrix intended for quaternion
	// reconstruction has an odd row or column count and cannot be halved.
	ErrOddShape = errors.New("cmplxiso: odd matrix shape")

	// ErrStructure is reported by VerifyStructure when the block-conjugate
	// pattern is violated beyond the given tolerance.
	ErrStructure = errors.New("cmplxiso: block-conjugate structure violated")
)

// ToComplex maps an N×M quaternion matrix to its 2N×2M complex embedding
// [[Qa, Qb], [-conj(Qb), conj(Qa)]] with Qa = q0 + i·q1, Qb = q2 + i·q3.
// Stage 1 (Validate): ensure q is non-nil.
// Stage 2 (Execute): single i→j pass writing all four quadrants per cell.
// The input is never mutated. Complexity: O(N*M).
func ToComplex(q *quat.Matrix) (*mat.CDense, error) {
	if q == nil {
		return nil, ErrNilMatrix
	}

	n, m := q.Rows(), q.Cols()
	data := make([]complex128, 4*n*m) // row-major 2N×2M
	stride := 2 * m

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			qv, err := q.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToComplex: %w", err)
			}
			qa := complex(qv[0], qv[1])
			qb := complex(qv[2], qv[3])

			data[i*stride+j] = qa                        // top-left
			data[i*stride+m+j] = qb                      // top-right
			data[(n+i)*stride+j] = -cmplx.Conj(qb)       // bottom-left
			data[(n+i)*stride+m+j] = cmplx.Conj(qa)      // bottom-right
		}
	}

	return mat.NewCDense(2*n, 2*m, data), nil
}

// ToComplexMasked is ToComplex plus the mask companion: the observation
// mask is replicated into all four quadrants of the embedding's shape, so
// every complex entry derived from an observed pixel is itself marked
// observed. Fails with ErrMaskMismatch when shapes disagree.
// Complexity: O(N*M).
func ToComplexMasked(q *quat.Matrix, mask *quat.Mask) (*mat.CDense, *quat.Mask, error) {
	if q == nil || mask == nil {
		return nil, nil, ErrNilMatrix
	}
	if mask.Rows() != q.Rows() || mask.Cols() != q.Cols() {
		return nil, nil, ErrMaskMismatch
	}

	c, err := ToComplex(q)
	if err != nil {
		return nil, nil, err
	}

	n, m := q.Rows(), q.Cols()
	tiled, err := quat.NewMask(2*n, 2*m)
	if err != nil {
		return nil, nil, fmt.Errorf("ToComplexMasked: %w", err)
	}
	var i, j int
	var obs bool
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if obs, err = mask.At(i, j); err != nil {
				return nil, nil, fmt.Errorf("ToComplexMasked: %w", err)
			}
			_ = tiled.Set(i, j, obs)
			_ = tiled.Set(i, m+j, obs)
			_ = tiled.Set(n+i, j, obs)
			_ = tiled.Set(n+i, m+j, obs)
		}
	}

	return c, tiled, nil
}

// ToQuaternion inverts the embedding: it splits C into four N×M quadrants,
// reads the top-left as Qa and top-right as Qb, and reconstructs the four
// real components (Re Qa, Im Qa, Re Qb, Im Qb).
//
// Precondition (trusted, not verified): C carries the block-conjugate
// structure produced by ToComplex. The bottom quadrants are never read, so
// an arbitrary complex matrix reconstructs to a silently meaningless
// result. Use VerifyStructure in tests when the provenance is uncertain.
//
// Fails with ErrOddShape when either dimension cannot be halved evenly.
// Complexity: O(N*M).
func ToQuaternion(c mat.CMatrix) (*quat.Matrix, error) {
	if c == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := c.Dims()
	if rows%2 != 0 || cols%2 != 0 {
		return nil, ErrOddShape
	}

	n, m := rows/2, cols/2
	q, err := quat.NewMatrix(n, m)
	if err != nil {
		return nil, fmt.Errorf("ToQuaternion: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			qa := c.At(i, j)
			qb := c.At(i, m+j)
			if err = q.Set(i, j, [quat.Components]float64{
				real(qa), imag(qa), real(qb), imag(qb),
			}); err != nil {
				return nil, fmt.Errorf("ToQuaternion: %w", err)
			}
		}
	}

	return q, nil
}

// VerifyStructure checks the block-conjugate pattern the inverse map
// trusts: bottom-left == -conj(top-right) and bottom-right ==
// conj(top-left), entry-wise within tol. Debug/test aid only — the
// production path never calls it, to keep the inverse map O(N*M) reads.
func VerifyStructure(c mat.CMatrix, tol float64) error {
	if c == nil {
		return ErrNilMatrix
	}
	rows, cols := c.Dims()
	if rows%2 != 0 || cols%2 != 0 {
		return ErrOddShape
	}

	n, m := rows/2, cols/2
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			qa := c.At(i, j)
			qb := c.At(i, m+j)
			if cmplx.Abs(c.At(n+i, j)+cmplx.Conj(qb)) > tol ||
				cmplx.Abs(c.At(n+i, m+j)-cmplx.Conj(qa)) > tol {
				return fmt.Errorf("VerifyStructure(%d,%d): %w", i, j, ErrStructure)
			}
		}
	}

	return nil
}
