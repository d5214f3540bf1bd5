package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

var (
	ErrEmptyImage       = errors.New("empty image")
	ErrUnsupportedImage = errors.New("unsupported image format (jpeg/png/webp)")
)

// NormalizeToJPG decodes a jpeg, png or webp image, applies its EXIF
// orientation, shrinks it to maxWidth (0 keeps the size) and re-encodes it
// as JPEG with the given quality.
func NormalizeToJPG(input []byte, maxWidth int, quality int) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyImage
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	img, format, err := decodeImage(input)
	if err != nil {
		return nil, err
	}

	if format == "jpeg" {
		img = applyOrientation(img, readEXIFOrientation(input))
	}
	if maxWidth > 0 {
		img = resizeMaxWidth(img, maxWidth)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decodeImage(input []byte) (image.Image, string, error) {
	if img, err := jpeg.Decode(bytes.NewReader(input)); err == nil {
		return img, "jpeg", nil
	}
	if img, err := png.Decode(bytes.NewReader(input)); err == nil {
		return img, "png", nil
	}
	if img, err := webp.Decode(bytes.NewReader(input)); err == nil {
		return img, "webp", nil
	}
	return nil, "", ErrUnsupportedImage
}

func readEXIFOrientation(input []byte) int {
	x, err := exif.Decode(bytes.NewReader(input))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	ori, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return ori
}

// applyOrientation undoes EXIF orientations 2..8. Orientations 5..8 swap
// width and height.
func applyOrientation(src image.Image, ori int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var mapPoint func(x, y int) (int, int)
	dw, dh := w, h
	switch ori {
	case 2:
		mapPoint = func(x, y int) (int, int) { return w - 1 - x, y }
	case 3:
		mapPoint = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4:
		mapPoint = func(x, y int) (int, int) { return x, h - 1 - y }
	case 5:
		dw, dh = h, w
		mapPoint = func(x, y int) (int, int) { return y, x }
	case 6:
		dw, dh = h, w
		mapPoint = func(x, y int) (int, int) { return h - 1 - y, x }
	case 7:
		dw, dh = h, w
		mapPoint = func(x, y int) (int, int) { return h - 1 - y, w - 1 - x }
	case 8:
		dw, dh = h, w
		mapPoint = func(x, y int) (int, int) { return y, w - 1 - x }
	default:
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := mapPoint(x, y)
			dst.Set(dx, dy, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func resizeMaxWidth(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w <= maxW {
		return src
	}

	newH := int(math.Round(float64(h) * float64(maxW) / float64(w)))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
