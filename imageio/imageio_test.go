// Package imageio_test: adapter round trips and mask builders.

package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexS90/quatimage/imageio"
	"github.com/AlexS90/quatimage/quat"
)

// testImage builds a 2×3 NRGBA image with distinct channel values and one
// transparent pixel at (x=2, y=1).
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{A: 0}) // missing pixel

	return img
}

func TestFromImage_Layout(t *testing.T) {
	q, err := imageio.FromImage(testImage())
	require.NoError(t, err)
	require.Equal(t, 2, q.Rows(), "rows follow y")
	require.Equal(t, 3, q.Cols(), "columns follow x")

	red, err := q.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, red[0], 0, "real component stays zero")
	assert.InDelta(t, 1, red[1], 1e-3)
	assert.InDelta(t, 0, red[2], 1e-3)
	assert.InDelta(t, 0, red[3], 1e-3)

	grey, err := q.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255.0, grey[1], 1e-3)
}

func TestFromImage_Nil(t *testing.T) {
	_, err := imageio.FromImage(nil)
	assert.ErrorIs(t, err, imageio.ErrNilInput)
}

// TestPNGRoundTrip encodes a matrix to PNG and decodes it back: 8-bit
// quantization aside, every channel must survive.
func TestPNGRoundTrip(t *testing.T) {
	q, err := quat.NewMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, q.Set(0, 0, [quat.Components]float64{0, 0.25, 0.5, 0.75}))
	require.NoError(t, q.Set(1, 1, [quat.Components]float64{0, 1, 0, 1}))

	var buf bytes.Buffer
	require.NoError(t, imageio.EncodePNG(&buf, q))
	back, err := imageio.DecodePNG(&buf)
	require.NoError(t, err)

	require.Equal(t, q.Rows(), back.Rows())
	require.Equal(t, q.Cols(), back.Cols())
	for i := 0; i < q.Rows(); i++ {
		for j := 0; j < q.Cols(); j++ {
			want, aErr := q.At(i, j)
			require.NoError(t, aErr)
			got, bErr := back.At(i, j)
			require.NoError(t, bErr)
			for k := 1; k < quat.Components; k++ {
				assert.InDelta(t, want[k], got[k], 1.0/255.0,
					"channel %d at (%d,%d)", k, i, j)
			}
		}
	}
}

func TestMaskFromAlpha(t *testing.T) {
	mask, err := imageio.MaskFromAlpha(testImage())
	require.NoError(t, err)
	require.Equal(t, 2, mask.Rows())
	require.Equal(t, 3, mask.Cols())

	obs, err := mask.At(1, 2)
	require.NoError(t, err)
	assert.False(t, obs, "transparent pixel must be missing")
	assert.Equal(t, 5, mask.Count(), "five opaque pixels observed")
}

func TestDrillMask(t *testing.T) {
	_, err := imageio.DrillMask(4, 4, 1.5, 1)
	assert.ErrorIs(t, err, imageio.ErrBadFraction)

	a, err := imageio.DrillMask(16, 16, 0.3, 7)
	require.NoError(t, err)
	b, err := imageio.DrillMask(16, 16, 0.3, 7)
	require.NoError(t, err)
	assert.Equal(t, a.Count(), b.Count(), "same seed reproduces the mask")

	full, err := imageio.DrillMask(4, 4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, full.Count(), "zero fraction drills nothing")
}

func TestApply(t *testing.T) {
	q, err := quat.NewMatrix(2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, q.Set(i, j, [quat.Components]float64{0, 1, 1, 1}))
		}
	}
	mask, err := quat.NewMask(2, 2)
	require.NoError(t, err)
	require.NoError(t, mask.Set(0, 0, true))

	damaged, err := imageio.Apply(q, mask)
	require.NoError(t, err)

	kept, err := damaged.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [quat.Components]float64{0, 1, 1, 1}, kept)
	dropped, err := damaged.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, [quat.Components]float64{}, dropped)

	// Input untouched.
	orig, err := q.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, [quat.Components]float64{0, 1, 1, 1}, orig)

	wrong, err := quat.NewMask(3, 2)
	require.NoError(t, err)
	_, err = imageio.Apply(q, wrong)
	assert.ErrorIs(t, err, imageio.ErrMaskMismatch)
}
