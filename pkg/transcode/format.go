package transcode

import "strings"

// Format identifies a raster image encoding.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
	FormatWEBP
	FormatOther
)

// String returns the short lowercase name used in filenames and summaries.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatWEBP:
		return "webp"
	default:
		return "other"
	}
}

// Extension returns the output filename extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWEBP:
		return "webp"
	default:
		return "jpg"
	}
}

// Lossless reports whether the format reproduces exact pixel values and thus
// resists further size reduction.
func (f Format) Lossless() bool {
	return f == FormatPNG
}

// FormatFromMIME maps a declared MIME type onto a Format. Unknown raster
// types map to FormatOther and are still decodable through the generic path.
func FormatFromMIME(mime string) Format {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return FormatJPEG
	case "image/png":
		return FormatPNG
	case "image/webp":
		return FormatWEBP
	default:
		return FormatOther
	}
}
