// Package imageio: image ↔ tensor conversions and codec wrappers.

package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/AlexS90/quatimage/quat"
)

var (
	// ErrNilInput indicates a nil image, matrix or mask argument.
	ErrNilInput = errors.New("imageio: nil input")

	// ErrMaskMismatch indicates the mask's shape differs from the image's.
	ErrMaskMismatch = errors.New("imageio: mask shape mismatch")

	// ErrBadFraction indicates a drill fraction outside [0, 1].
	ErrBadFraction = errors.New("imageio: fraction must be in [0, 1]")
)

// channelMax is the stdlib 16-bit color channel ceiling.
const channelMax = 0xffff

// FromImage converts an image into a quaternion matrix: rows index y,
// columns index x, components 1..3 carry R, G, B in [0, 1] and the real
// component is zero.
func FromImage(img image.Image) (*quat.Matrix, error) {
	if img == nil {
		return nil, ErrNilInput
	}

	b := img.Bounds()
	q, err := quat.NewMatrix(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("FromImage: %w", err)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if err = q.Set(y, x, [quat.Components]float64{
				0,
				float64(r) / channelMax,
				float64(g) / channelMax,
				float64(bl) / channelMax,
			}); err != nil {
				return nil, fmt.Errorf("FromImage: %w", err)
			}
		}
	}

	return q, nil
}

// ToImage converts a quaternion matrix back into an 8-bit RGBA image,
// clamping each color component into [0, 1]. The real component is
// ignored — solver estimates may leave small residues there.
func ToImage(q *quat.Matrix) (image.Image, error) {
	if q == nil {
		return nil, ErrNilInput
	}

	img := image.NewNRGBA(image.Rect(0, 0, q.Cols(), q.Rows()))
	for y := 0; y < q.Rows(); y++ {
		for x := 0; x < q.Cols(); x++ {
			v, err := q.At(y, x)
			if err != nil {
				return nil, fmt.Errorf("ToImage: %w", err)
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: clamp8(v[1]),
				G: clamp8(v[2]),
				B: clamp8(v[3]),
				A: 0xff,
			})
		}
	}

	return img, nil
}

// clamp8 maps a [0,1] component to an 8-bit channel, saturating outside.
func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v*255 + 0.5)
	}
}

// DecodePNG reads a PNG stream into a quaternion matrix.
func DecodePNG(r io.Reader) (*quat.Matrix, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("DecodePNG: %w", err)
	}

	return FromImage(img)
}

// EncodePNG writes a quaternion matrix as a PNG stream.
func EncodePNG(w io.Writer, q *quat.Matrix) error {
	img, err := ToImage(q)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("EncodePNG: %w", err)
	}

	return nil
}

// DecodeJPEG reads a JPEG stream into a quaternion matrix.
func DecodeJPEG(r io.Reader) (*quat.Matrix, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeJPEG: %w", err)
	}

	return FromImage(img)
}
