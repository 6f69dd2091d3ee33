// Package imageio bridges stdlib images and the quaternion data model:
// thin, pure adapters between image.Image, quat.Matrix and quat.Mask.
//
// Conventions (matching the solver's data model):
//   - The real quaternion component stays zero for color images; the
//     three imaginary-like components carry R, G, B scaled to [0, 1].
//   - Masks mark observed pixels true. MaskFromAlpha treats transparent
//     pixels (alpha below one half) as missing, which lets a single PNG
//     carry both the damaged image and its observation mask.
//   - DrillMask produces synthetic damage from a locally owned seeded
//     generator, for demos and tests.
//
// These are the out-of-scope "external collaborators" of the core: they
// only shuttle data in and out and never participate in the numerics.
package imageio
