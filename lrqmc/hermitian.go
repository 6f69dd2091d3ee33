// Package lrqmc: Hermitian spectral kernels.
//
// gonum has no complex Hermitian eigensolver, so these kernels run the
// classical real embedding one level below the module's quaternion trick:
// an r×r Hermitian matrix H = A + iB maps to the 2r×2r real symmetric
// matrix S = [[A, -B], [B, A]], an algebra isomorphism under which every
// eigenvalue of H appears in S exactly twice and the pseudoinverse of S
// is the embedding of the pseudoinverse of H. mat.EigenSym does the rest.

package lrqmc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// machEps is the float64 machine epsilon, used for the pinv cutoff.
const machEps = 2.220446049250313e-16

// embedHermitian builds the real symmetric embedding of a square complex
// matrix assumed Hermitian up to round-off. The real part is symmetrized
// and the imaginary part skew-symmetrized so the result is exactly
// symmetric regardless of accumulated noise in h.
// Complexity: O(r²).
func embedHermitian(h *mat.CDense) *mat.SymDense {
	r, _ := h.Dims()
	n := 2 * r
	data := make([]float64, n*n)

	var i, j int
	var a, b float64
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			hij := h.At(i, j)
			hji := h.At(j, i)
			a = (real(hij) + real(hji)) / 2 // symmetric part
			b = (imag(hij) - imag(hji)) / 2 // skew part

			data[i*n+j] = a
			data[i*n+r+j] = -b
			data[(r+i)*n+j] = b
			data[(r+i)*n+r+j] = a
		}
	}

	return mat.NewSymDense(n, data)
}

// hermEigenvalues returns the eigenvalues of an r×r Hermitian matrix in
// descending order. The doubled spectrum of the embedding is collapsed by
// averaging adjacent pairs of the ascending eigenvalue list.
// Returns ErrEigenFailed if the factorization does not succeed.
// Complexity: O(r³).
func hermEigenvalues(h *mat.CDense) ([]float64, error) {
	r, _ := h.Dims()

	var es mat.EigenSym
	if ok := es.Factorize(embedHermitian(h), false); !ok {
		return nil, ErrEigenFailed
	}
	asc := es.Values(nil) // ascending, length 2r

	// Collapse duplicated pairs, then flip to descending.
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[r-1-i] = (asc[2*i] + asc[2*i+1]) / 2
	}

	return out, nil
}

// hermPinv computes the Moore–Penrose pseudoinverse of an r×r Hermitian
// matrix through the spectral decomposition of its real embedding:
// S = Q·Λ·Qᵀ gives pinv(S) = Q·Λ⁺·Qᵀ, and the complex pseudoinverse is
// read back from the embedding's blocks. Eigenvalues below the relative
// cutoff eps·n·max|λ| are treated as zero, which is what makes the solver
// tolerate rank-deficient Gram matrices without failing.
// Complexity: O(r³).
func hermPinv(h *mat.CDense) (*mat.CDense, error) {
	r, _ := h.Dims()
	n := 2 * r

	var es mat.EigenSym
	if ok := es.Factorize(embedHermitian(h), true); !ok {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Relative cutoff against the dominant eigenvalue magnitude.
	var maxAbs float64
	for _, v := range vals {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	cutoff := machEps * float64(n) * maxAbs

	inv := make([]float64, n)
	for i, v := range vals {
		if math.Abs(v) > cutoff {
			inv[i] = 1 / v
		}
	}

	// pinv(S) = Q · diag(Λ⁺) · Qᵀ.
	var tmp, sinv mat.Dense
	tmp.Mul(&vecs, mat.NewDiagDense(n, inv))
	sinv.Mul(&tmp, vecs.T())

	// Read the complex pseudoinverse off the embedding blocks:
	// sinv = [[A', -B'], [B', A']] represents A' + i·B'.
	p := mat.NewCDense(r, r, nil)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			p.Set(i, j, complex(sinv.At(i, j), sinv.At(r+i, j)))
		}
	}

	return p, nil
}
