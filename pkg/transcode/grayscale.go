package transcode

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Grayscale converts an RGBA pixel buffer to grayscale using the ITU-R BT.601
// luminance weights. The alpha channel is copied through untouched. A new
// buffer is returned; the caller's buffer is never mutated.
func Grayscale(pix []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return nil, fmt.Errorf("%w: buffer length %d, want %d", ErrInvalidArgument, len(pix), want)
	}

	out := make([]byte, len(pix))
	for i := 0; i < len(pix); i += 4 {
		lum := 0.299*float64(pix[i]) + 0.587*float64(pix[i+1]) + 0.114*float64(pix[i+2])
		y := uint8(math.Round(lum))
		out[i] = y
		out[i+1] = y
		out[i+2] = y
		out[i+3] = pix[i+3]
	}
	return out, nil
}

// GrayscaleImage applies Grayscale to a decoded image. The clone normalizes
// any source color model to 8-bit NRGBA with a packed stride.
func GrayscaleImage(img image.Image) (*image.NRGBA, error) {
	src := imaging.Clone(img)
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	pix, err := Grayscale(src.Pix, w, h)
	if err != nil {
		return nil, err
	}

	return &image.NRGBA{Pix: pix, Stride: src.Stride, Rect: src.Rect}, nil
}
