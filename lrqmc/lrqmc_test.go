// Package lrqmc_test: end-to-end completion tests — contract checks,
// determinism, mask pinning, convergence on fully observed low-rank data,
// rank adaptation, and the exhaustion termination mode.

package lrqmc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexS90/quatimage/lrqmc"
	"github.com/AlexS90/quatimage/quat"
)

// randomMatrix returns a deterministic pseudo-random quaternion matrix
// with components in [-1, 1).
func randomMatrix(t *testing.T, rows, cols int, seed int64) *quat.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols*quat.Components)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	m, err := quat.NewMatrixFromSlice(rows, cols, data)
	require.NoError(t, err)

	return m
}

// lowRankMatrix builds an n×n quaternion matrix of true rank at most r by
// multiplying two random factors through the reference Hamilton product.
func lowRankMatrix(t *testing.T, n, r int, seed int64) *quat.Matrix {
	t.Helper()
	left := randomMatrix(t, n, r, seed)
	right := randomMatrix(t, r, n, seed+1)
	m, err := quat.Mul(left, right)
	require.NoError(t, err)

	return m
}

// fullMask returns an all-observed rows×cols mask.
func fullMask(t *testing.T, rows, cols int) *quat.Mask {
	t.Helper()
	k, err := quat.NewMask(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, k.Set(i, j, true))
		}
	}

	return k
}

// drilledMask observes each pixel independently with probability keep.
func drilledMask(t *testing.T, rows, cols int, keep float64, seed int64) *quat.Mask {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	k, err := quat.NewMask(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, k.Set(i, j, rng.Float64() < keep))
		}
	}

	return k
}

func TestComplete_NilInputs(t *testing.T) {
	q := randomMatrix(t, 3, 3, 1)
	mask := fullMask(t, 3, 3)

	_, err := lrqmc.Complete(nil, mask, nil)
	assert.ErrorIs(t, err, lrqmc.ErrNilInput)
	_, err = lrqmc.Complete(q, nil, nil)
	assert.ErrorIs(t, err, lrqmc.ErrNilInput)
}

func TestComplete_MaskMismatch(t *testing.T) {
	q := randomMatrix(t, 3, 3, 1)
	mask := fullMask(t, 3, 4)

	_, err := lrqmc.Complete(q, mask, nil)
	assert.ErrorIs(t, err, lrqmc.ErrMaskMismatch)
}

func TestComplete_OptionValidation(t *testing.T) {
	q := randomMatrix(t, 3, 3, 1)
	mask := fullMask(t, 3, 3)

	for _, tc := range []struct {
		name   string
		mutate func(*lrqmc.Options)
		want   error
	}{
		{"zero reg", func(o *lrqmc.Options) { o.RegCoef = 0 }, lrqmc.ErrBadRegCoef},
		{"negative tol", func(o *lrqmc.Options) { o.RelTol = -1 }, lrqmc.ErrBadTolerance},
		{"negative iter cap", func(o *lrqmc.Options) { o.MaxIter = -1 }, lrqmc.ErrBadMaxIter},
		{"zero threshold", func(o *lrqmc.Options) { o.RankThreshold = 0 }, lrqmc.ErrBadRankThreshold},
		{"multiplier one", func(o *lrqmc.Options) { o.RankMultiplier = 1 }, lrqmc.ErrBadRankMultiplier},
		{"multiplier zero", func(o *lrqmc.Options) { o.RankMultiplier = 0 }, lrqmc.ErrBadRankMultiplier},
		{"negative progress", func(o *lrqmc.Options) { o.ProgressEvery = -1 }, lrqmc.ErrBadProgressEvery},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := lrqmc.DefaultOptions()
			tc.mutate(&opts)
			_, err := lrqmc.Complete(q, mask, &opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestComplete_Deterministic runs the solver twice with identical seeds
// and inputs: the norm sequences must match bit-for-bit, because each run
// owns its generator and nothing else is stochastic.
func TestComplete_Deterministic(t *testing.T) {
	q := randomMatrix(t, 6, 5, 3)
	mask := drilledMask(t, 6, 5, 0.6, 4)

	opts := lrqmc.DefaultOptions()
	opts.MaxIter = 10
	opts.ReturnNorms = true
	opts.Seed = 12345

	first, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)
	second, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)

	assert.Equal(t, first.Norms, second.Norms)
	assert.Equal(t, first.FinalRank, second.FinalRank)
	assert.Equal(t, first.Restored.Raw(), second.Restored.Raw())
}

// TestComplete_MaskPinning verifies the invariant that observed pixels
// never drift: after any number of iterations the restored values at
// observed positions equal the input exactly.
func TestComplete_MaskPinning(t *testing.T) {
	q := randomMatrix(t, 7, 6, 9)
	mask := drilledMask(t, 7, 6, 0.5, 10)

	opts := lrqmc.DefaultOptions()
	opts.MaxIter = 5
	opts.RelTol = 1e-12 // keep iterating; pinning must hold anyway

	res, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)

	for i := 0; i < q.Rows(); i++ {
		for j := 0; j < q.Cols(); j++ {
			obs, mErr := mask.At(i, j)
			require.NoError(t, mErr)
			if !obs {
				continue
			}
			want, aErr := q.At(i, j)
			require.NoError(t, aErr)
			got, bErr := res.Restored.At(i, j)
			require.NoError(t, bErr)
			assert.Equal(t, want, got, "observed pixel (%d,%d) drifted", i, j)
		}
	}
}

// TestComplete_FullyObservedConvergence: with an all-true mask the
// embedding stays pinned to the input, the factors settle into the best
// regularized low-rank fit, and the relative norm change drops below the
// tolerance. The restored image is the input itself.
func TestComplete_FullyObservedConvergence(t *testing.T) {
	q := lowRankMatrix(t, 4, 2, 17)
	mask := fullMask(t, 4, 4)

	opts := lrqmc.DefaultOptions()
	// The ALS tail on this input decays around 0.1% per sweep, so the
	// default tolerance needs several hundred iterations of headroom.
	opts.MaxIter = 1000
	opts.ReturnNorms = true

	res, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)

	assert.True(t, res.Converged, "fully observed low-rank input must converge")
	assert.InDeltaSlice(t, q.Raw(), res.Restored.Raw(), 1e-12,
		"fully observed pixels are all pinned, so the image is returned verbatim")

	require.GreaterOrEqual(t, len(res.Norms), 2)
	last, prev := res.Norms[len(res.Norms)-1], res.Norms[len(res.Norms)-2]
	assert.Less(t, math.Abs(last-prev)/prev, opts.RelTol)
	assert.Equal(t, len(res.Norms), res.Iterations+1,
		"one norm per iteration, including iteration 0")
}

// TestComplete_Exhaustion: MaxIter=0 still performs exactly one update
// sweep (one norm beyond iteration 0) and returns without looping.
func TestComplete_Exhaustion(t *testing.T) {
	q := randomMatrix(t, 5, 5, 23)
	mask := drilledMask(t, 5, 5, 0.5, 24)

	opts := lrqmc.DefaultOptions()
	opts.MaxIter = 0
	opts.ReturnNorms = true

	res, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Norms, 2)
}

// TestComplete_RankNeverGrows: whatever rank adaptation does, the final
// rank stays within [2, initial rank].
func TestComplete_RankNeverGrows(t *testing.T) {
	q := lowRankMatrix(t, 8, 2, 31)
	mask := fullMask(t, 8, 8)

	opts := lrqmc.DefaultOptions()
	opts.InitRank = 8
	opts.MaxIter = 50

	res, err := lrqmc.Complete(q, mask, &opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.FinalRank, 8)
	assert.GreaterOrEqual(t, res.FinalRank, 2)
}

// TestDetectOverestimation_HugeLeadingEigenvalue covers the canonical
// shrink scenario: a spectrum whose leading eigenvalue dwarfs the rest
// must trigger a reduction, and the reduced rank never exceeds the old.
func TestDetectOverestimation_HugeLeadingEigenvalue(t *testing.T) {
	evs := []float64{1e8, 1.0, 0.9, 0.8}

	newRank, mu := lrqmc.DetectOverestimation(evs, 4, 10.0, 0.9)
	assert.Greater(t, mu, 10.0)
	assert.Less(t, newRank, 4, "overestimated rank must shrink")
	assert.GreaterOrEqual(t, newRank, 2)
	// gap index 0 → max(0+2, ⌊4·0.9⌋) = 3.
	assert.Equal(t, 3, newRank)
}

func TestDetectOverestimation_FlatSpectrum(t *testing.T) {
	evs := []float64{4, 3, 2, 1}

	newRank, mu := lrqmc.DetectOverestimation(evs, 4, 10.0, 0.9)
	assert.Equal(t, 4, newRank, "no shrink on a flat spectrum")
	assert.LessOrEqual(t, mu, 10.0)
}

func TestClampRank(t *testing.T) {
	assert.Equal(t, 6, lrqmc.ClampRank(0, 6), "absent rank means min dim")
	assert.Equal(t, 6, lrqmc.ClampRank(9, 6), "overshoot clamps to min dim")
	assert.Equal(t, 2, lrqmc.ClampRank(1, 6), "undershoot clamps to 2")
	assert.Equal(t, 4, lrqmc.ClampRank(4, 6), "in-range rank is kept")
	assert.Equal(t, 1, lrqmc.ClampRank(0, 1), "degenerate axis keeps rank 1")
}
