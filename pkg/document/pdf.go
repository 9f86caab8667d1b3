package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/alde/imagepress/pkg/transcode"
)

const pdfProducer = "imagepress"

// WritePDF serializes the artifact to w, one page per image. Page units are
// millimetres to match the layout geometry.
func WritePDF(w io.Writer, artifact *Artifact) error {
	if artifact == nil || len(artifact.Pages) == 0 {
		return ErrNoInput
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: artifact.Size.Width, Ht: artifact.Size.Height},
	})
	pdf.SetProducer(pdfProducer, true)

	for i, page := range artifact.Pages {
		pdf.AddPage()

		imageType := "JPG"
		if page.Format == transcode.FormatPNG {
			imageType = "PNG"
		}

		name := fmt.Sprintf("page%d", i)
		opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(page.Image))
		if pdf.Err() {
			return fmt.Errorf("failed to register image for page %d: %w", i+1, pdf.Error())
		}

		g := page.Geometry
		pdf.ImageOptions(name, g.X, g.Y, g.Width, g.Height, false, opts, 0, "")
		if pdf.Err() {
			return fmt.Errorf("failed to place image on page %d: %w", i+1, pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
