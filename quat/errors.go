// SPDX-License-Identifier: MIT
// Package quat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the quat
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package quat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "quat: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Matrix or *Mask was passed where a
	// value was required.
	ErrNilMatrix = errors.New("quat: nil matrix")

	// ErrBadShape is returned when requested dimensions are non-positive or
	// a backing slice length does not match rows*cols*4 (matrix) or
	// rows*cols (mask). This is the contract error for a malformed
	// quaternion-component axis: it is detected before any computation.
	ErrBadShape = errors.New("quat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("quat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows(), or a mask whose shape
	// differs from its matrix.
	ErrDimensionMismatch = errors.New("quat: dimension mismatch")
)
