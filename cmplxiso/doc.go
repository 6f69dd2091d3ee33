// SPDX-License-Identifier: MIT

// Package cmplxiso maps quaternion matrices to equivalent complex matrices
// and back, so all heavy linear algebra can run on mature complex
// primitives instead of bespoke quaternion routines.
//
// 🚀 The embedding
//
//	Write each quaternion entry as Qa + Qb·j with complex halves
//	Qa = q0 + i·q1 and Qb = q2 + i·q3. An N×M quaternion matrix Q then
//	maps to the 2N×2M complex block matrix
//
//	    C = [[ Qa        , Qb        ],
//	         [ -conj(Qb) , conj(Qa)  ]]
//
//	This is the classical realization of quaternions inside 2×2 complex
//	matrices: the map is an exact algebra isomorphism, so products,
//	conjugate transposes and pseudoinverses computed on C correspond
//	one-to-one to their quaternion counterparts.
//
// ✨ Contracts
//
//   - ToComplex/ToComplexMasked validate shapes up front and fail fast.
//   - ToQuaternion requires even dimensions (ErrOddShape otherwise) and
//     TRUSTS the block-conjugate structure: it reads only the top two
//     quadrants and never verifies the bottom ones. Feeding a complex
//     matrix that was not produced by the forward map (or an equivalent
//     construction) yields a silently meaningless result. Implementers
//     must ensure the precondition; VerifyStructure exists as a debug and
//     test aid, deliberately outside the hot path.
//   - Norm bridge: ‖C‖_F = √2·‖Q‖_F exactly — each quaternion cell
//     contributes its full squared magnitude to both block rows.
//
// Errors:
//   - ErrNilMatrix   — nil input matrix.
//   - ErrMaskMismatch — mask shape differs from the matrix.
//   - ErrOddShape    — inverse map given a matrix with an odd dimension.
//   - ErrStructure   — VerifyStructure found a broken block pattern.
package cmplxiso
