// Package imageio: observation mask builders.

package imageio

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/AlexS90/quatimage/quat"
)

// MaskFromAlpha derives an observation mask from an image's alpha
// channel: pixels with alpha below one half are treated as missing. This
// lets one PNG carry both the damaged image and the mask.
func MaskFromAlpha(img image.Image) (*quat.Mask, error) {
	if img == nil {
		return nil, ErrNilInput
	}

	b := img.Bounds()
	mask, err := quat.NewMask(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("MaskFromAlpha: %w", err)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if err = mask.Set(y, x, a >= channelMax/2); err != nil {
				return nil, fmt.Errorf("MaskFromAlpha: %w", err)
			}
		}
	}

	return mask, nil
}

// DrillMask builds a synthetic rows×cols mask in which each pixel is
// independently missing with probability frac. The generator is locally
// owned and seeded, so the same arguments reproduce the same mask.
func DrillMask(rows, cols int, frac float64, seed int64) (*quat.Mask, error) {
	if frac < 0 || frac > 1 {
		return nil, ErrBadFraction
	}
	mask, err := quat.NewMask(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("DrillMask: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = mask.Set(i, j, rng.Float64() >= frac); err != nil {
				return nil, fmt.Errorf("DrillMask: %w", err)
			}
		}
	}

	return mask, nil
}

// Apply zeroes the unobserved entries of q, producing the "damaged" view
// of an image for visualization. The input is never mutated.
func Apply(q *quat.Matrix, mask *quat.Mask) (*quat.Matrix, error) {
	if q == nil || mask == nil {
		return nil, ErrNilInput
	}
	if mask.Rows() != q.Rows() || mask.Cols() != q.Cols() {
		return nil, ErrMaskMismatch
	}

	out := q.Clone()
	for i := 0; i < q.Rows(); i++ {
		for j := 0; j < q.Cols(); j++ {
			obs, err := mask.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Apply: %w", err)
			}
			if !obs {
				if err = out.Set(i, j, [quat.Components]float64{}); err != nil {
					return nil, fmt.Errorf("Apply: %w", err)
				}
			}
		}
	}

	return out, nil
}
