// Package lrqmc: complex dense products.
//
// gonum's mat.CDense stores complex matrices but carries no Mul method,
// so the products the solver needs go one level down to cblas128.Gemm on
// the raw backing slices. The conjugate-transpose variants pass the
// transpose flag to Gemm instead of materializing Hᴴ, which keeps the
// update steps allocation-lean.

package lrqmc

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// mulCDense returns a·b.
func mulCDense(a, b *mat.CDense) *mat.CDense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())

	return out
}

// mulCDenseH returns a·bᴴ.
func mulCDenseH(a, b *mat.CDense) *mat.CDense {
	ar, _ := a.Dims()
	br, _ := b.Dims()
	out := mat.NewCDense(ar, br, nil)
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())

	return out
}

// mulHCDense returns aᴴ·b.
func mulHCDense(a, b *mat.CDense) *mat.CDense {
	_, ac := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ac, bc, nil)
	cblas128.Gemm(blas.ConjTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())

	return out
}
