// Package lrqmc: narrow re-exports of private kernels for white-box tests.
// Test-only file; keeps the public surface unchanged.

package lrqmc

// Private kernels exercised directly by the package tests.
var (
	DetectOverestimation = detectOverestimation
	HermEigenvalues      = hermEigenvalues
	HermPinv             = hermPinv
	ClampRank            = clampRank
	MulCDense            = mulCDense
	MulCDenseH           = mulCDenseH
	MulHCDense           = mulHCDense
)
