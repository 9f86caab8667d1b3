package workspace

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/alde/imagepress/pkg/transcode"
)

// SourceImage is one selected input file, exclusively owned by the workspace
// that holds it.
type SourceImage struct {
	ID     string
	Name   string
	Data   []byte
	MIME   string
	Format transcode.Format
}

// newSourceImage builds a SourceImage from raw bytes, detecting the MIME type
// from content rather than trusting the file extension.
func newSourceImage(name string, data []byte) *SourceImage {
	mtype := mimetype.Detect(data)

	return &SourceImage{
		ID:     uuid.NewString(),
		Name:   name,
		Data:   data,
		MIME:   mtype.String(),
		Format: transcode.FormatFromMIME(mtype.String()),
	}
}

// Size returns the original byte count.
func (s *SourceImage) Size() int64 {
	return int64(len(s.Data))
}

// BaseName returns the filename without directory or extension, used when
// deriving output names.
func (s *SourceImage) BaseName() string {
	base := filepath.Base(s.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
