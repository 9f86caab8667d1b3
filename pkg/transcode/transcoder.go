package transcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidArgument is returned for out-of-contract input such as a bad
	// quality range or a malformed pixel buffer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode is returned when source bytes cannot be interpreted as an
	// image.
	ErrDecode = errors.New("image decode failed")

	// ErrEncode is returned when rasterization or serialization fails.
	ErrEncode = errors.New("image encode failed")
)

// grayscaleJPEGQuality is the fixed encoding quality for the grayscale path.
// Grayscale output is always lossy JPEG at this quality regardless of the
// requested percentage, which keeps document exports consistent.
const grayscaleJPEGQuality = 90

// Result holds the re-encoded bytes and the format the policy settled on.
type Result struct {
	Bytes  []byte
	Format Format
	Width  int
	Height int
}

// Transcoder re-encodes decoded bitmaps at full resolution. A single scratch
// buffer serves as the reusable rasterization surface, reset before each
// encode; a Transcoder must not be shared between concurrent encodes.
type Transcoder struct {
	scratch bytes.Buffer
}

// New creates a Transcoder with an empty scratch surface.
func New() *Transcoder {
	return &Transcoder{}
}

// Decode interprets raw bytes as an image of the declared format. WebP goes
// through its dedicated decoder; everything else through format sniffing.
func Decode(data []byte, format Format) (image.Image, error) {
	var img image.Image
	var err error
	if format == FormatWEBP {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Encode re-encodes img under the encoding policy. With grayscale enabled the
// bitmap first passes through the luminance transform and is always encoded
// as JPEG at the fixed grayscale quality. Otherwise PNG sources at quality
// 100 stay PNG and everything else becomes JPEG at the requested quality.
// No resizing or cropping occurs.
func (t *Transcoder) Encode(img image.Image, source Format, qualityPercent int, grayscale bool) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if qualityPercent < 1 || qualityPercent > 100 {
		return Result{}, fmt.Errorf("%w: quality %d out of range [1,100]", ErrInvalidArgument, qualityPercent)
	}

	bounds := img.Bounds()
	result := Result{Width: bounds.Dx(), Height: bounds.Dy()}

	if grayscale {
		gray, err := GrayscaleImage(img)
		if err != nil {
			return Result{}, err
		}
		img = gray
		result.Format = FormatJPEG
		qualityPercent = grayscaleJPEGQuality
	} else {
		result.Format, _ = Policy(source, qualityPercent)
	}

	t.scratch.Reset()
	var err error
	switch result.Format {
	case FormatPNG:
		err = imaging.Encode(&t.scratch, img, imaging.PNG)
	default:
		err = imaging.Encode(&t.scratch, img, imaging.JPEG, imaging.JPEGQuality(qualityPercent))
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	result.Bytes = append([]byte(nil), t.scratch.Bytes()...)
	return result, nil
}

// Transcode decodes raw source bytes and re-encodes them in one step.
func (t *Transcoder) Transcode(data []byte, source Format, qualityPercent int, grayscale bool) (Result, error) {
	img, err := Decode(data, source)
	if err != nil {
		return Result{}, err
	}
	return t.Encode(img, source, qualityPercent, grayscale)
}
