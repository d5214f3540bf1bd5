package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeToJPGResizes(t *testing.T) {
	out, err := NormalizeToJPG(encodePNG(t, 200, 100), 50, 80)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestNormalizeToJPGKeepsSmallImages(t *testing.T) {
	out, err := NormalizeToJPG(encodePNG(t, 20, 10), 512, 0)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
}

func TestNormalizeToJPGRejectsBadInput(t *testing.T) {
	_, err := NormalizeToJPG(nil, 100, 80)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = NormalizeToJPG([]byte("definitely not an image"), 100, 80)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestApplyOrientationSwapsAxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	marker := color.RGBA{R: 255, A: 255}
	src.Set(0, 0, marker)

	for ori, want := range map[int]image.Point{
		1: {0, 0},
		2: {2, 0},
		3: {2, 1},
		4: {0, 1},
		5: {0, 0},
		6: {1, 0},
		7: {1, 2},
		8: {0, 2},
	} {
		dst := applyOrientation(src, ori)
		if ori >= 5 {
			assert.Equal(t, 2, dst.Bounds().Dx(), "orientation %d", ori)
			assert.Equal(t, 3, dst.Bounds().Dy(), "orientation %d", ori)
		}
		r, _, _, _ := dst.At(want.X, want.Y).RGBA()
		assert.Equal(t, uint32(0xffff), r, "orientation %d", ori)
	}
}

func TestReadAllLimit(t *testing.T) {
	b, err := ReadAllLimit(strings.NewReader("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = ReadAllLimit(strings.NewReader("hello!"), 5)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
