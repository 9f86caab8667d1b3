package transcode

// Policy decides the output encoding for a source format and quality setting.
// PNG input at full quality is preserved losslessly as PNG; every other
// combination is re-encoded as lossy JPEG.
func Policy(source Format, qualityPercent int) (output Format, lossy bool) {
	if source == FormatPNG && qualityPercent == 100 {
		return FormatPNG, false
	}
	return FormatJPEG, true
}
