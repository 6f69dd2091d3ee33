// Package lrqmc: the alternating least-squares completion loop.
//
// Algorithm outline (one run of Complete):
//  1. Embed (Q, mask) into (X, maskC) via cmplxiso; keep X0 = X immutable.
//  2. Initialize factors U (2N×r), V (r×2M) with uniform random real and
//     imaginary parts from a locally owned seeded generator.
//  3. Record the iteration-0 residual norm ‖X − U·V‖.
//  4. Repeat until termination:
//     a. U ← X·Vᴴ·pinv(V·Vᴴ + λI)
//     b. V ← pinv(Uᴴ·U + λI)·Uᴴ·X
//     c. X ← X0 with only the unobserved entries replaced by (U·V)
//     d. spectral rank-overestimation check on eig(UᴴU); shrink when
//     μ > ρ (rank never grows back)
//     e. append ‖X − U·V‖; optionally emit progress
//     f. stop on relative norm change < ε (converged) or on reaching
//     MaxIter (exhausted — a defined mode, not an error)
//  5. Map the final X back to a quaternion matrix.

package lrqmc

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/AlexS90/quatimage/cmplxiso"
	"github.com/AlexS90/quatimage/quat"
)

// Complete restores a partially observed quaternion image.
//
// q is the image to restore; mask marks observed pixels (true = known).
// opts may be nil, meaning DefaultOptions(). Shape violations and invalid
// options fail fast before any computation; numerical degeneracy inside
// the loop is absorbed (see package doc) and never surfaces as an error.
func Complete(q *quat.Matrix, mask *quat.Mask, opts *Options) (*Result, error) {
	if q == nil || mask == nil {
		return nil, ErrNilInput
	}
	if mask.Rows() != q.Rows() || mask.Cols() != q.Cols() {
		return nil, ErrMaskMismatch
	}

	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Step 1: embed image and mask; keep the pristine copy pinned.
	x, maskC, err := cmplxiso.ToComplexMasked(q, mask)
	if err != nil {
		return nil, err
	}
	x0 := cloneCDense(x)

	// Step 2: clamp the rank and draw the factors deterministically.
	rank := clampRank(o.InitRank, min(q.Rows(), q.Cols()))
	rng := rand.New(rand.NewSource(o.Seed))
	u := randCDense(2*q.Rows(), rank, rng)
	v := randCDense(rank, 2*q.Cols(), rng)

	// Step 3: iteration-0 residual.
	norms := []float64{residualNorm(x, u, v)}

	var (
		converged bool
		sweeps    int
		mu        float64
	)
	for {
		// Step 4a: U ← X·Vᴴ·pinv(V·Vᴴ + λI).
		vvh := mulCDenseH(v, v)
		addRidge(vvh, o.RegCoef)
		pv, pErr := hermPinv(vvh)
		if pErr != nil {
			return nil, pErr
		}
		u = mulCDense(mulCDenseH(x, v), pv)

		// Step 4b: V ← pinv(Uᴴ·U + λI)·Uᴴ·X. The unregularized Gram
		// matrix doubles as the rank detector's input below.
		uhu := mulHCDense(u, u)
		reg := cloneCDense(uhu)
		addRidge(reg, o.RegCoef)
		pu, pErr := hermPinv(reg)
		if pErr != nil {
			return nil, pErr
		}
		v = mulCDense(pu, mulHCDense(u, x))

		// Step 4c: re-impose known values. Observed entries stay pinned
		// to the input for the lifetime of the run.
		x = imposeObserved(x0, maskC, mulCDense(u, v))

		// Step 4d: spectral rank-overestimation check.
		evs, eErr := hermEigenvalues(uhu)
		if eErr != nil {
			return nil, eErr
		}
		var newRank int
		newRank, mu = detectOverestimation(evs, rank, o.RankThreshold, o.RankMultiplier)
		if newRank < rank {
			u = truncateCols(u, newRank)
			v = truncateRows(v, newRank)
			rank = newRank
		}

		// Step 4e: append the residual of the (possibly shrunk) factors.
		norms = append(norms, residualNorm(x, u, v))
		rel := math.Abs(norms[len(norms)-1]-norms[len(norms)-2]) / norms[len(norms)-2]

		if o.ProgressEvery > 0 && (sweeps+1)%o.ProgressEvery == 0 {
			logger(&o).Info("lrqmc iteration",
				"iter", sweeps+1,
				"norm_reduction", rel,
				"rank", rank,
				"overestimation", mu,
			)
		}

		// Step 4f/4g: termination.
		if rel < o.RelTol {
			converged = true
			if o.ProgressEvery > 0 {
				logger(&o).Info("lrqmc converged", "iter", sweeps+1, "rel", rel)
			}
			sweeps++

			break
		}
		if sweeps >= o.MaxIter {
			if o.ProgressEvery > 0 {
				logger(&o).Info("lrqmc exhausted iteration cap", "iter", sweeps+1)
			}
			sweeps++

			break
		}
		sweeps++
	}

	// Step 5: back to the quaternion domain.
	restored, err := cmplxiso.ToQuaternion(x)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Restored:   restored,
		U:          u,
		V:          v,
		Iterations: sweeps,
		FinalRank:  rank,
		Converged:  converged,
	}
	if o.ReturnNorms {
		res.Norms = norms
	}

	return res, nil
}

// clampRank maps the configured initial rank into [2, minDim]: zero (or
// anything above minDim) means minDim, values below 2 clamp to 2. A
// degenerate 1-pixel axis keeps rank 1.
func clampRank(initRank, minDim int) int {
	switch {
	case initRank <= 0 || initRank > minDim:
		return minDim
	case initRank < 2:
		return min(2, minDim)
	default:
		return initRank
	}
}

// detectOverestimation runs the spectral gap heuristic on the descending
// eigenvalues of UᴴU. It returns the (possibly unchanged) rank and the
// overestimation ratio μ = (r−1)·eig[k] / (Σeig − eig[k]) where k is the
// index of the largest consecutive eigenvalue ratio. When μ > rho the new
// rank is max(k+2, ⌊r·gamma⌋) — never larger than the current rank, so
// the rank can only shrink.
func detectOverestimation(evs []float64, rank int, rho, gamma float64) (int, float64) {
	if rank < 2 || len(evs) < 2 {
		return rank, 0
	}

	// Largest consecutive ratio marks the spectral gap. NaN ratios (0/0)
	// never win the comparison, matching a plain "greater than" scan.
	gap, best := 0, math.Inf(-1)
	for i := 0; i < len(evs)-1; i++ {
		if r := evs[i] / evs[i+1]; r > best {
			best, gap = r, i
		}
	}

	mu := float64(rank-1) * evs[gap] / (floats.Sum(evs) - evs[gap])
	if mu <= rho {
		return rank, mu
	}

	newRank := gap + 2
	if scaled := int(float64(rank) * gamma); scaled > newRank {
		newRank = scaled
	}
	if newRank > rank {
		newRank = rank
	}

	return newRank, mu
}

// randCDense draws a rows×cols complex matrix with independent uniform
// [0,1) real and imaginary parts from the caller's generator.
func randCDense(rows, cols int, rng *rand.Rand) *mat.CDense {
	data := make([]complex128, rows*cols)
	for i := range data {
		data[i] = complex(rng.Float64(), rng.Float64())
	}

	return mat.NewCDense(rows, cols, data)
}

// cloneCDense returns a deep copy of x.
func cloneCDense(x *mat.CDense) *mat.CDense {
	rows, cols := x.Dims()
	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, x.At(i, j))
		}
	}

	return out
}

// addRidge adds λ to the diagonal of a square complex matrix in place.
func addRidge(h *mat.CDense, lambda float64) {
	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		h.Set(i, i, h.At(i, i)+complex(lambda, 0))
	}
}

// imposeObserved rebuilds X from the pristine embedding: observed entries
// come from x0 verbatim, unobserved entries take the current estimate.
func imposeObserved(x0 *mat.CDense, maskC *quat.Mask, est *mat.CDense) *mat.CDense {
	rows, cols := x0.Dims()
	out := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// maskC shape equals x0's by construction; the error path is
			// unreachable.
			obs, _ := maskC.At(i, j)
			if obs {
				out.Set(i, j, x0.At(i, j))
			} else {
				out.Set(i, j, est.At(i, j))
			}
		}
	}

	return out
}

// residualNorm computes ‖X − U·V‖_F.
func residualNorm(x, u, v *mat.CDense) float64 {
	p := mulCDense(u, v)

	rows, cols := x.Dims()
	sq := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := x.At(i, j) - p.At(i, j)
			sq[i*cols+j] = real(d)*real(d) + imag(d)*imag(d)
		}
	}

	return math.Sqrt(floats.Sum(sq))
}

// truncateCols keeps the first k columns of u.
func truncateCols(u *mat.CDense, k int) *mat.CDense {
	rows, _ := u.Dims()
	out := mat.NewCDense(rows, k, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			out.Set(i, j, u.At(i, j))
		}
	}

	return out
}

// truncateRows keeps the first k rows of v.
func truncateRows(v *mat.CDense, k int) *mat.CDense {
	_, cols := v.Dims()
	out := mat.NewCDense(k, cols, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, v.At(i, j))
		}
	}

	return out
}
