package transcode

import (
	"fmt"
	"image"

	"github.com/chai2010/webp"
)

// EncodeWebP writes img as lossy WebP at the given quality. This sits outside
// the JPEG/PNG encoding policy and is only reachable through the explicit
// WebP output mode of single-image compression.
func (t *Transcoder) EncodeWebP(img image.Image, qualityPercent int) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if qualityPercent < 1 || qualityPercent > 100 {
		return nil, fmt.Errorf("%w: quality %d out of range [1,100]", ErrInvalidArgument, qualityPercent)
	}

	t.scratch.Reset()
	opts := &webp.Options{Lossless: false, Quality: float32(qualityPercent)}
	if err := webp.Encode(&t.scratch, img, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return append([]byte(nil), t.scratch.Bytes()...), nil
}
