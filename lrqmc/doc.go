// Package lrqmc implements Low-Rank Quaternion Matrix Completion: the
// rank-adaptive alternating least-squares engine that restores color
// images with missing pixels.
//
// 🚀 What is LRQMC?
//
//	Model the image as a low-rank quaternion matrix, embed it into an
//	equivalent complex matrix (package cmplxiso), then alternate
//	regularized least-squares updates of two low-rank complex factors
//	U (2N×r) and V (r×2M) whose product approximates the embedding.
//	After every update the observed pixels are re-imposed, so known
//	values never drift; only the missing entries are estimated.
//
// ✨ Key features:
//   - Rank adaptation: a spectral-gap detector on the eigenvalues of
//     UᴴU shrinks the working rank when it is overestimated; the rank
//     never grows back within a run.
//   - Robust solves: every normal-equations system goes through a
//     Hermitian pseudoinverse plus Tikhonov term λI, so near-singular
//     factors degrade accuracy instead of failing.
//   - Deterministic: factors are initialized from a locally owned
//     seeded generator; the same seed and inputs reproduce the run
//     bit-for-bit, with no shared random state across calls.
//   - Defined exhaustion: hitting MaxIter without meeting RelTol is a
//     reported termination mode (Result.Converged == false), not an
//     error — the best available estimate is still returned.
//
// ⚙️ Usage:
//
//	opts := lrqmc.DefaultOptions()
//	opts.InitRank = 24
//	opts.ReturnNorms = true
//
//	res, err := lrqmc.Complete(img, mask, &opts)
//	if err != nil {
//	  // handle ErrNilInput, ErrMaskMismatch or option validation errors
//	}
//	restored := res.Restored
//
// Progress reporting is a side channel: set ProgressEvery > 0 and the
// solver emits one slog record per interval (relative norm change,
// current rank, overestimation ratio). It is not part of the return
// contract.
//
// Complexity per iteration: O((N·M)·r + r³) complex flops dominated by
// the factor products; memory O(N·M + r²).
//
// Errors:
//   - ErrNilInput / ErrMaskMismatch — contract violations, detected
//     before any computation.
//   - ErrBad* option sentinels — invalid configuration.
//   - ErrEigenFailed — the symmetric eigensolver failed to factorize,
//     a breakdown distinct from the absorbed near-singularity cases.
package lrqmc
