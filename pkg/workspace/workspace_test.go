package workspace

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/alde/imagepress/pkg/transcode"
)

func writeFixture(t *testing.T, dir, name string, format imaging.Format) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoadPreservesSelectionOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFixture(t, dir, "third.png", imaging.PNG),
		writeFixture(t, dir, "first.jpg", imaging.JPEG),
		writeFixture(t, dir, "second.png", imaging.PNG),
	}

	ws := New()
	if err := ws.Load(context.Background(), paths, 4); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if ws.Len() != 3 {
		t.Fatalf("Expected 3 images, got %d", ws.Len())
	}

	for i, src := range ws.Images() {
		if src.Name != paths[i] {
			t.Errorf("Position %d: expected %s, got %s", i, paths[i], src.Name)
		}
	}
}

func TestLoadDetectsMIMEFromContent(t *testing.T) {
	dir := t.TempDir()
	// PNG bytes behind a misleading extension.
	path := writeFixture(t, dir, "actually-a-png.jpg", imaging.PNG)

	ws := New()
	if err := ws.Load(context.Background(), []string{path}, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	src := ws.Images()[0]
	if src.MIME != "image/png" {
		t.Errorf("Expected image/png, got %s", src.MIME)
	}
	if src.Format != transcode.FormatPNG {
		t.Errorf("Expected FormatPNG, got %v", src.Format)
	}
}

func TestLoadMissingFileLeavesWorkspaceUnchanged(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.png", imaging.PNG)

	ws := New()
	err := ws.Load(context.Background(), []string{good, filepath.Join(dir, "missing.png")}, 2)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	if ws.Len() != 0 {
		t.Errorf("Expected unchanged workspace, got %d images", ws.Len())
	}
}

func TestLoadEmpty(t *testing.T) {
	ws := New()
	if err := ws.Load(context.Background(), nil, 1); !errors.Is(err, ErrNoInput) {
		t.Errorf("Expected ErrNoInput, got %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	ws := New()
	a := ws.Add("a.jpg", []byte{0xff, 0xd8, 0xff})
	b := ws.Add("b.jpg", []byte{0xff, 0xd8, 0xff})
	c := ws.Add("c.jpg", []byte{0xff, 0xd8, 0xff})

	if !ws.Remove(b.ID) {
		t.Fatal("Expected removal to succeed")
	}

	images := ws.Images()
	if len(images) != 2 || images[0].ID != a.ID || images[1].ID != c.ID {
		t.Errorf("Expected [a, c] after removing b, got %d images", len(images))
	}

	if ws.Remove("no-such-id") {
		t.Error("Expected removal of unknown id to report false")
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	ws := New()
	a := ws.Add("a.png", []byte{1})
	b := ws.Add("a.png", []byte{1})

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique non-empty ids, got %q and %q", a.ID, b.ID)
	}
}

func TestTotalBytesAndEstimate(t *testing.T) {
	ws := New()
	ws.Add("one.bin", make([]byte, 1000))
	ws.Add("two.bin", make([]byte, 3000))

	if ws.TotalBytes() != 4000 {
		t.Errorf("Expected 4000 total bytes, got %d", ws.TotalBytes())
	}

	// Neither fixture detects as PNG, so no lossless floor applies:
	// 4000 * 0.55 = 2200.
	total, err := ws.EstimateTotal(50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if total != 2200 {
		t.Errorf("Expected 2200, got %v", total)
	}
}

func TestBaseName(t *testing.T) {
	src := &SourceImage{Name: "/some/dir/holiday photo.jpeg"}
	if got := src.BaseName(); got != "holiday photo" {
		t.Errorf("Expected 'holiday photo', got %q", got)
	}
}
