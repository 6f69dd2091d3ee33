// Package quatimage restores color images with missing pixels by modeling
// them as low-rank quaternion matrices and completing the missing entries
// through regularized alternating least squares on a complex embedding.
//
// 🚀 What is quatimage?
//
//	A small, deterministic numerical library that brings together:
//		• Quaternion algebra: conjugation, Frobenius norm, Hamilton products
//		• Complex embedding: the exact 2N×2M block isomorphism that lets all
//		  heavy linear algebra run on ordinary complex matrices
//		• Rank-adaptive completion: the LRQMC inpainting engine with
//		  spectral rank-overestimation detection and convergence tracking
//
// ✨ Why choose quatimage?
//
//   - Deterministic – every solver call owns its seeded generator; no
//     global random state, no cross-call interference
//   - Robust – pseudoinverse + Tikhonov regularization absorb
//     ill-conditioned factors instead of failing
//   - Pure Go – dense kernels on gonum, no cgo
//
// Under the hood, everything is organized in focused subpackages:
//
//	quat/     — quaternion matrix tensors, masks, and reference algebra
//	cmplxiso/ — quaternion ↔ complex block isomorphism (+ tiled masks)
//	lrqmc/    — the rank-adaptive alternating least-squares engine
//	imageio/  — thin PNG/JPEG ↔ tensor adapters and mask builders
//	cmd/      — the qrestore command-line front end
//
// Quick sketch of the pipeline:
//
//	image + mask → cmplxiso.ToComplexMasked → lrqmc.Complete
//	             → cmplxiso.ToQuaternion → restored image
//
// Dive into each package's doc.go for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/AlexS90/quatimage
package quatimage
