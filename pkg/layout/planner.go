// Package layout computes page placement for images in assembled documents.
package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for zero-dimension images and unprintable
// page configurations.
var ErrInvalidArgument = errors.New("invalid argument")

// Page describes the output page in millimetres.
type Page struct {
	Width  float64
	Height float64
	Margin float64
}

// Printable returns the page dimensions minus margins on all sides.
func (p Page) Printable() (width, height float64) {
	return p.Width - 2*p.Margin, p.Height - 2*p.Margin
}

// Geometry is a placement on the page, in page-space millimetres.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Plan fits an image into the printable area preserving its pixel aspect
// ratio, width-first with a height fallback, and centers the result on the
// page. Portrait images on a portrait page always fall through to the
// height-constrained branch.
func Plan(imageWidth, imageHeight int, page Page) (Geometry, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidArgument, imageWidth, imageHeight)
	}

	printWidth, printHeight := page.Printable()
	if printWidth <= 0 || printHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: page %gx%g with margin %g leaves no printable area",
			ErrInvalidArgument, page.Width, page.Height, page.Margin)
	}

	aspect := float64(imageWidth) / float64(imageHeight)

	width := printWidth
	height := width / aspect
	if height > printHeight {
		height = printHeight
		width = height * aspect
	}

	return Geometry{
		X:      (page.Width - width) / 2,
		Y:      (page.Height - height) / 2,
		Width:  width,
		Height: height,
	}, nil
}
