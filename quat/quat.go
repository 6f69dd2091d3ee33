// SPDX-License-Identifier: MIT
// Package quat: reference quaternion algebra kernels.
// Conjugate and FrobeniusNorm are the cheap primitives used throughout the
// module; Mul is the slow Hamilton-product oracle kept exclusively for
// verifying the complex-embedding path.

package quat

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opConjugate = "Conjugate"
	opNorm      = "FrobeniusNorm"
	opMul       = "Mul"
)

// quatErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func quatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Conjugate returns a new matrix with the real component of every entry
// unchanged and the three imaginary components negated.
// Stage 1 (Validate): ensure q is non-nil.
// Stage 2 (Execute): flat pass, negate components 1..3 of every cell.
// The input is never mutated. Complexity: O(r*c).
func Conjugate(q *Matrix) (*Matrix, error) {
	if q == nil {
		return nil, quatErrorf(opConjugate, ErrNilMatrix)
	}

	res := q.Clone()
	n := len(res.data)
	for base := 0; base < n; base += Components {
		res.data[base+1] = -res.data[base+1]
		res.data[base+2] = -res.data[base+2]
		res.data[base+3] = -res.data[base+3]
	}

	return res, nil
}

// FrobeniusNorm returns the square root of the sum of squares of all
// entries across all four components.
// Stage 1 (Validate): ensure q is non-nil.
// Stage 2 (Execute): single deterministic flat accumulation.
// Complexity: O(r*c).
func FrobeniusNorm(q *Matrix) (float64, error) {
	if q == nil {
		return 0, quatErrorf(opNorm, ErrNilMatrix)
	}

	var acc float64
	for _, v := range q.data {
		acc += v * v
	}

	return math.Sqrt(acc), nil
}

// hamilton returns the Hamilton product p*q of two quaternions.
// Component sign patterns follow the standard multiplication table:
// {(+,−,−,−), (+,+,+,−), (+,−,+,+), (+,+,−,+)}.
func hamilton(p, q [Components]float64) [Components]float64 {
	return [Components]float64{
		p[0]*q[0] - p[1]*q[1] - p[2]*q[2] - p[3]*q[3],
		p[0]*q[1] + p[1]*q[0] + p[2]*q[3] - p[3]*q[2],
		p[0]*q[2] - p[1]*q[3] + p[2]*q[0] + p[3]*q[1],
		p[0]*q[3] + p[1]*q[2] - p[2]*q[1] + p[3]*q[0],
	}
}

// Mul computes the quaternion matrix product a×b via the Hamilton product
// expanded component-wise.
//
// NOTE: VERY SLOW. Reference oracle for correctness tests only — the
// production path multiplies through the complex embedding (package
// cmplxiso) and never calls this per-iteration.
//
// Stage 1 (Validate): non-nil operands, a.Cols() == b.Rows().
// Stage 2 (Execute): fixed i→j→s triple loop, accumulating Hamilton
// products into a fresh result.
// Complexity: O(r*n*c) quaternion products, each a fixed 16-multiply
// kernel. Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, quatErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, quatErrorf(opMul, ErrDimensionMismatch)
	}

	res, err := NewMatrix(a.r, b.c)
	if err != nil {
		return nil, quatErrorf(opMul, err)
	}

	var (
		i, j, s int                 // loop iterators (deterministic order)
		av, bv  [Components]float64 // operand cells
		acc, h  [Components]float64 // accumulator and product temporary
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = [Components]float64{}
			for s = 0; s < a.c; s++ {
				copy(av[:], a.data[(i*a.c+s)*Components:])
				copy(bv[:], b.data[(s*b.c+j)*Components:])
				h = hamilton(av, bv)
				acc[0] += h[0]
				acc[1] += h[1]
				acc[2] += h[2]
				acc[3] += h[3]
			}
			copy(res.data[(i*res.c+j)*Components:], acc[:])
		}
	}

	return res, nil
}
