// Package workspace owns the ordered working set of images selected for a
// compression or assembly run.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alde/imagepress/internal/worker"
	"github.com/alde/imagepress/pkg/estimator"
)

// ErrNoInput is returned when an operation needs a non-empty working set.
var ErrNoInput = errors.New("no input images")

// Workspace is the working image collection. It is mutated only by explicit
// add/remove calls, never concurrently with an in-flight pipeline run.
type Workspace struct {
	images []*SourceImage
}

// New creates an empty workspace.
func New() *Workspace {
	return &Workspace{}
}

// Load reads the named files concurrently and appends them in argument order.
// The reads fan out through the worker pool and join at a barrier before the
// workspace is touched; the slice is index-addressed so completion order
// never reorders the selection. Any failed read aborts the whole load and
// leaves the workspace unchanged.
func (w *Workspace) Load(ctx context.Context, paths []string, workerCount int) error {
	if len(paths) == 0 {
		return ErrNoInput
	}

	loaded := make([]*SourceImage, len(paths))
	tasks := make([]worker.Task, len(paths))
	for i, path := range paths {
		i, path := i, path
		tasks[i] = func(ctx context.Context) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			loaded[i] = newSourceImage(path, data)
			return nil
		}
	}

	pool := worker.NewPool(workerCount)
	if err := worker.FirstError(pool.Run(ctx, tasks)); err != nil {
		return err
	}

	w.images = append(w.images, loaded...)
	return nil
}

// Add appends an in-memory image to the working set and returns it.
func (w *Workspace) Add(name string, data []byte) *SourceImage {
	src := newSourceImage(name, data)
	w.images = append(w.images, src)
	return src
}

// Remove drops the image with the given identifier, preserving the relative
// order of the rest. It reports whether anything was removed.
func (w *Workspace) Remove(id string) bool {
	for i, src := range w.images {
		if src.ID == id {
			w.images = append(w.images[:i], w.images[i+1:]...)
			return true
		}
	}
	return false
}

// Images returns the working set in selection order.
func (w *Workspace) Images() []*SourceImage {
	return w.images
}

// Len returns the number of images in the working set.
func (w *Workspace) Len() int {
	return len(w.images)
}

// TotalBytes returns the summed original size of the working set.
func (w *Workspace) TotalBytes() int64 {
	var total int64
	for _, src := range w.images {
		total += src.Size()
	}
	return total
}

// EstimateTotal predicts the combined output size at the given quality
// without touching pixel data. Each image contributes its own lossless flag.
func (w *Workspace) EstimateTotal(qualityPercent int) (float64, error) {
	inputs := make([]estimator.Input, len(w.images))
	for i, src := range w.images {
		inputs[i] = estimator.Input{Bytes: src.Size(), Lossless: src.Format.Lossless()}
	}
	return estimator.EstimateTotal(inputs, qualityPercent)
}
