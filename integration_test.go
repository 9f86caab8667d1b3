package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/alde/imagepress/pkg/document"
	"github.com/alde/imagepress/pkg/estimator"
	"github.com/alde/imagepress/pkg/layout"
	"github.com/alde/imagepress/pkg/workspace"
)

func writeTestImage(t *testing.T, dir, name string, w, h int, format imaging.Format) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 160, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

func TestIntegrationAssemblePipeline(t *testing.T) {
	tempDir := t.TempDir()

	paths := []string{
		writeTestImage(t, tempDir, "landscape.jpg", 400, 200, imaging.JPEG),
		writeTestImage(t, tempDir, "portrait.png", 200, 400, imaging.PNG),
		writeTestImage(t, tempDir, "square.jpg", 300, 300, imaging.JPEG),
	}

	ctx := context.Background()

	// Load the working set with concurrent reads.
	ws := workspace.New()
	if err := ws.Load(ctx, paths, 2); err != nil {
		t.Fatalf("Failed to load workspace: %v", err)
	}

	if ws.Len() != 3 {
		t.Fatalf("Expected 3 images, got %d", ws.Len())
	}

	// Instant estimate before committing to pixel work.
	predicted, err := ws.EstimateTotal(75)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if predicted <= 0 || predicted > float64(ws.TotalBytes()) {
		t.Errorf("Estimate %v outside (0, %d]", predicted, ws.TotalBytes())
	}

	// Assemble one page per image on A4.
	asm := document.New(document.Options{Quality: 75})
	artifact, err := asm.Assemble(ctx, ws.Images())
	if err != nil {
		t.Fatalf("Assembly failed: %v", err)
	}

	if len(artifact.Pages) != ws.Len() {
		t.Fatalf("Expected %d pages, got %d", ws.Len(), len(artifact.Pages))
	}

	page := layout.A4()
	printWidth, printHeight := page.Printable()
	for i, pg := range artifact.Pages {
		if pg.Geometry.Width > printWidth || pg.Geometry.Height > printHeight {
			t.Errorf("Page %d geometry %+v exceeds printable %gx%g",
				i+1, pg.Geometry, printWidth, printHeight)
		}
	}

	// Serialize and check the resulting PDF.
	outputFile := filepath.Join(tempDir, "bundle.pdf")
	out, err := os.Create(outputFile)
	if err != nil {
		t.Fatalf("Failed to create output file: %v", err)
	}
	if err := document.WritePDF(out, artifact); err != nil {
		out.Close()
		t.Fatalf("Failed to write PDF: %v", err)
	}
	out.Close()

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("Output is not a PDF")
	}

	stats := asm.GetStats()
	if stats.PageCount != 3 {
		t.Errorf("Expected PageCount 3, got %d", stats.PageCount)
	}
	if stats.InputBytes != ws.TotalBytes() {
		t.Errorf("Expected InputBytes %d, got %d", ws.TotalBytes(), stats.InputBytes)
	}

	t.Logf("Assembled %d pages: %s -> %s", stats.PageCount,
		estimator.FormatBytes(float64(stats.InputBytes)),
		estimator.FormatBytes(float64(stats.OutputBytes)))
}

func TestIntegrationAssembleAbortsWholeBatch(t *testing.T) {
	tempDir := t.TempDir()

	good := writeTestImage(t, tempDir, "good.jpg", 100, 100, imaging.JPEG)
	corrupt := filepath.Join(tempDir, "corrupt.jpg")
	if err := os.WriteFile(corrupt, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	ctx := context.Background()
	ws := workspace.New()
	if err := ws.Load(ctx, []string{good, corrupt}, 2); err != nil {
		t.Fatalf("Failed to load workspace: %v", err)
	}

	asm := document.New(document.Options{})
	artifact, err := asm.Assemble(ctx, ws.Images())
	if err == nil {
		t.Fatal("Expected assembly to fail on corrupt input")
	}
	if artifact != nil {
		t.Error("Expected no partial artifact on failure")
	}
}
