// Package document assembles transcoded images into an ordered multi-page
// artifact and serializes it to PDF.
package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alde/imagepress/pkg/layout"
	"github.com/alde/imagepress/pkg/transcode"
	"github.com/alde/imagepress/pkg/workspace"
)

// ErrNoInput is returned when assembly is attempted on an empty working set.
var ErrNoInput = errors.New("no input images")

// DefaultQuality is the encoding quality used when the caller does not set
// one.
const DefaultQuality = 95

// Page is one rendered page: the encoded image bytes, the format the policy
// settled on, and the placement on the page.
type Page struct {
	Image    []byte
	Format   transcode.Format
	Geometry layout.Geometry
}

// Artifact is the assembled document: one page per input image, in input
// order. It is created fresh per assembly request and not mutated afterwards.
type Artifact struct {
	Pages []Page
	Size  layout.Page
}

// Options contains assembly settings.
type Options struct {
	Quality   int
	Grayscale bool
	Page      layout.Page
	// OnPage, when set, is called after each page completes.
	OnPage func(done, total int)
}

// Stats tracks assembly metrics.
type Stats struct {
	PageCount      int
	InputBytes     int64
	OutputBytes    int64
	ProcessingTime time.Duration
}

// Assembler builds artifacts from ordered source images. Pages are processed
// strictly sequentially; the transcoder's scratch surface is reused across
// pages.
type Assembler struct {
	opts  Options
	tc    *transcode.Transcoder
	stats Stats
}

// New creates an assembler, filling in the default A4 page and quality where
// the options leave them unset.
func New(opts Options) *Assembler {
	if opts.Page == (layout.Page{}) {
		opts.Page = layout.A4()
	}
	if opts.Quality == 0 {
		opts.Quality = DefaultQuality
	}

	return &Assembler{
		opts: opts,
		tc:   transcode.New(),
	}
}

// Assemble processes the images in input order, transcoding each and planning
// its page placement. Input order defines page order; there is no re-sort.
// Any single failure aborts the whole run with no partial artifact.
func (a *Assembler) Assemble(ctx context.Context, images []*workspace.SourceImage) (*Artifact, error) {
	if len(images) == 0 {
		return nil, ErrNoInput
	}

	start := time.Now()
	artifact := &Artifact{
		Pages: make([]Page, 0, len(images)),
		Size:  a.opts.Page,
	}

	for i, src := range images {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res, err := a.tc.Transcode(src.Data, src.Format, a.opts.Quality, a.opts.Grayscale)
		if err != nil {
			return nil, fmt.Errorf("failed to process image %d (%s): %w", i+1, src.Name, err)
		}

		geom, err := layout.Plan(res.Width, res.Height, a.opts.Page)
		if err != nil {
			return nil, fmt.Errorf("failed to lay out image %d (%s): %w", i+1, src.Name, err)
		}

		artifact.Pages = append(artifact.Pages, Page{
			Image:    res.Bytes,
			Format:   res.Format,
			Geometry: geom,
		})

		a.stats.InputBytes += src.Size()
		a.stats.OutputBytes += int64(len(res.Bytes))

		if a.opts.OnPage != nil {
			a.opts.OnPage(i+1, len(images))
		}
	}

	a.stats.PageCount = len(artifact.Pages)
	a.stats.ProcessingTime = time.Since(start)

	return artifact, nil
}

// GetStats returns the metrics of the last assembly run.
func (a *Assembler) GetStats() Stats {
	return a.stats
}
