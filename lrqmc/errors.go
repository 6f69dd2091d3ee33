// Package lrqmc: sentinel error set. All solver entry points return these
// sentinels (optionally wrapped with an operation tag); tests match them
// via errors.Is. Numerical degeneracy inside the iteration loop is never
// surfaced — it is absorbed by the pseudoinverse + regularization design.

package lrqmc

import "errors"

var (
	// ErrNilInput indicates a nil image matrix, mask, or options pointer.
	ErrNilInput = errors.New("lrqmc: nil input")

	// ErrMaskMismatch indicates the observation mask's shape differs from
	// the image's first two axes.
	ErrMaskMismatch = errors.New("lrqmc: mask shape mismatch")

	// ErrBadRegCoef indicates a non-positive regularization coefficient.
	ErrBadRegCoef = errors.New("lrqmc: regularization coefficient must be > 0")

	// ErrBadTolerance indicates a non-positive relative tolerance.
	ErrBadTolerance = errors.New("lrqmc: relative tolerance must be > 0")

	// ErrBadMaxIter indicates a negative iteration cap.
	ErrBadMaxIter = errors.New("lrqmc: max iterations must be >= 0")

	// ErrBadRankThreshold indicates a non-positive rank overestimation
	// threshold.
	ErrBadRankThreshold = errors.New("lrqmc: rank overestimation threshold must be > 0")

	// ErrBadRankMultiplier indicates a rank shrink multiplier outside (0, 1).
	ErrBadRankMultiplier = errors.New("lrqmc: rank multiplier must be in (0, 1)")

	// ErrBadProgressEvery indicates a negative progress interval.
	ErrBadProgressEvery = errors.New("lrqmc: progress interval must be >= 0")

	// ErrEigenFailed indicates the symmetric eigensolver failed to
	// factorize a Gram matrix. Not expected on well-formed inputs.
	ErrEigenFailed = errors.New("lrqmc: eigendecomposition failed")
)
