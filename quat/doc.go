// SPDX-License-Identifier: MIT

// Package quat provides quaternion-matrix primitives for color-image
// modeling: a dense quaternion matrix tensor, a boolean observation mask,
// and the reference algebra (conjugation, Frobenius norm, Hamilton
// matrix product) the rest of the module is verified against.
//
// 🚀 What is a quaternion matrix here?
//
//	An N×M matrix whose entries are quaternions — four-component
//	hypercomplex numbers. For color images the three imaginary-like
//	components carry the color channels and the real component stays
//	zero. Storage is a flat row-major []float64 with exactly four
//	components per cell, so the "last axis is length 4" contract of the
//	data model is enforced by construction.
//
// ✨ Key properties:
//   - Fail-fast validation: every boundary checks shapes before any
//     computation and returns a sentinel error (no partial results).
//   - Deterministic kernels: fixed loop orders, no data-dependent
//     branching, no hidden allocation in hot loops.
//   - Reference-only multiplication: Mul implements the Hamilton
//     product directly. It exists as a correctness oracle for the
//     complex-embedding path (package cmplxiso) and is intentionally
//     not optimized; production code never calls it per-iteration.
//
// Errors:
//   - ErrNilMatrix          — nil *Matrix (or *Mask) argument.
//   - ErrBadShape           — non-positive dimensions or a backing
//     slice whose length does not equal rows*cols*4.
//   - ErrOutOfRange         — row/column index outside bounds.
//   - ErrDimensionMismatch  — incompatible operand shapes (Mul inner
//     dimensions, mask vs matrix).
//
// All sentinels are matched via errors.Is; call sites may wrap them
// with an operation tag but never replace them.
package quat
