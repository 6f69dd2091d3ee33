// Package lrqmc: option and result types for the completion engine.

package lrqmc

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/AlexS90/quatimage/quat"
)

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultRegCoef is the Tikhonov regularization coefficient λ added to
	// both normal-equations systems.
	DefaultRegCoef = 1e-3

	// DefaultMaxIter caps the number of alternating update sweeps.
	DefaultMaxIter = 100

	// DefaultRelTol is the convergence tolerance on the relative change of
	// the residual norm sequence.
	DefaultRelTol = 1e-3

	// DefaultRankThreshold is ρ: the rank is reduced when the spectral
	// overestimation ratio μ exceeds it.
	DefaultRankThreshold = 10.0

	// DefaultRankMultiplier is γ: the shrink factor applied to the current
	// rank when overestimation is detected.
	DefaultRankMultiplier = 0.9

	// DefaultSeed seeds the locally owned factor-initialization generator.
	DefaultSeed = 1
)

// Options configures one run of Complete.
//
// Fields:
//   - InitRank       — initial rank estimate r. 0 means min(N, M); other
//     values are clamped into [2, min(N, M)].
//   - RegCoef        — λ > 0, the Tikhonov term added to VVᴴ and UᴴU.
//   - MaxIter        — iteration cap ≥ 0. The loop body always runs at
//     least once; reaching the cap is a reported mode, not an error.
//   - RelTol         — ε > 0; the run converges when
//     |norm[i+1]−norm[i]|/norm[i] < ε.
//   - RankThreshold  — ρ > 0, the overestimation ratio that triggers a
//     rank shrink.
//   - RankMultiplier — γ ∈ (0, 1); detected shrinks go to
//     max(k+2, ⌊r·γ⌋) where k is the spectral gap index.
//   - ProgressEvery  — emit one progress record every n iterations;
//     0 disables progress entirely.
//   - ReturnNorms    — when true, Result.Norms carries the full residual
//     norm sequence (one entry per iteration, including iteration 0).
//   - Seed           — deterministic seed for the factor initializer.
//   - Logger         — progress sink; nil falls back to slog.Default().
type Options struct {
	InitRank       int
	RegCoef        float64
	MaxIter        int
	RelTol         float64
	RankThreshold  float64
	RankMultiplier float64
	ProgressEvery  int
	ReturnNorms    bool
	Seed           int64
	Logger         *slog.Logger
}

// DefaultOptions returns the documented defaults. The zero InitRank means
// "use min(N, M)".
func DefaultOptions() Options {
	return Options{
		InitRank:       0,
		RegCoef:        DefaultRegCoef,
		MaxIter:        DefaultMaxIter,
		RelTol:         DefaultRelTol,
		RankThreshold:  DefaultRankThreshold,
		RankMultiplier: DefaultRankMultiplier,
		ProgressEvery:  0,
		ReturnNorms:    false,
		Seed:           DefaultSeed,
	}
}

// validate checks every configurable against its documented range and
// returns the matching sentinel. InitRank is deliberately not validated:
// out-of-range values clamp (see Options).
func (o *Options) validate() error {
	switch {
	case o.RegCoef <= 0:
		return ErrBadRegCoef
	case o.RelTol <= 0:
		return ErrBadTolerance
	case o.MaxIter < 0:
		return ErrBadMaxIter
	case o.RankThreshold <= 0:
		return ErrBadRankThreshold
	case o.RankMultiplier <= 0 || o.RankMultiplier >= 1:
		return ErrBadRankMultiplier
	case o.ProgressEvery < 0:
		return ErrBadProgressEvery
	}

	return nil
}

// logger resolves the progress sink: the configured one, or the process
// default.
func logger(o *Options) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// Result holds the outcome of one completion run.
//
// U and V are the low-rank complex factors of the embedding: their product
// approximates the completed complex matrix. They are owned by the caller
// after return; the solver keeps no reference.
type Result struct {
	// Restored is the completed quaternion image. Observed pixels equal
	// the input exactly; missing pixels carry the solver's estimate.
	Restored *quat.Matrix

	// U (2N×r) and V (r×2M) are the final complex factors, r being the
	// final (possibly shrunk) rank.
	U, V *mat.CDense

	// Norms is the residual norm sequence ‖X − U·V‖ per iteration,
	// including iteration 0. Nil unless Options.ReturnNorms was set.
	Norms []float64

	// Iterations is the number of completed update sweeps.
	Iterations int

	// FinalRank is the rank estimate at termination.
	FinalRank int

	// Converged reports whether the relative-tolerance criterion was met
	// (false means the iteration cap was exhausted).
	Converged bool
}
