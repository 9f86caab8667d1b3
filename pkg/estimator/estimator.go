package estimator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for out-of-contract input such as a quality
// percentage outside [1,100] or a negative byte count.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// minReductionFactor is the floor on achievable compression: predicted
	// output never drops below 10% of the original regardless of quality.
	minReductionFactor = 0.1

	// losslessFloor models how already-compressed lossless data (PNG)
	// resists further size reduction when naively re-encoded.
	losslessFloor = 0.8
)

// Estimate predicts the re-encoded size of an image without touching pixel
// data, so it is cheap enough to call on every slider movement. The quality
// percentage maps linearly onto a reduction factor, clamped at
// minReductionFactor. For lossless source formats the prediction is raised
// to at least losslessFloor of the original.
func Estimate(originalBytes int64, qualityPercent int, lossless bool) (float64, error) {
	if originalBytes < 0 {
		return 0, fmt.Errorf("%w: negative byte count %d", ErrInvalidArgument, originalBytes)
	}
	if qualityPercent < 1 || qualityPercent > 100 {
		return 0, fmt.Errorf("%w: quality %d out of range [1,100]", ErrInvalidArgument, qualityPercent)
	}
	if originalBytes == 0 {
		return 0, nil
	}

	ratio := float64(qualityPercent) / 100
	factor := 1 - 0.9*(1-ratio)
	if factor < minReductionFactor {
		factor = minReductionFactor
	}

	predicted := float64(originalBytes) * factor
	if lossless {
		if floor := float64(originalBytes) * losslessFloor; floor > predicted {
			predicted = floor
		}
	}
	return predicted, nil
}

// Input describes one image in a batch estimate. Each image carries its own
// lossless flag; a batch may mix formats.
type Input struct {
	Bytes    int64
	Lossless bool
}

// EstimateTotal sums the per-image estimates for a batch at a shared quality
// setting.
func EstimateTotal(inputs []Input, qualityPercent int) (float64, error) {
	var total float64
	for i, in := range inputs {
		predicted, err := Estimate(in.Bytes, qualityPercent, in.Lossless)
		if err != nil {
			return 0, fmt.Errorf("image %d: %w", i+1, err)
		}
		total += predicted
	}
	return total, nil
}

// Stats contains size metrics for a completed or predicted batch.
type Stats struct {
	ImageCount    int
	OriginalSize  int64
	PredictedSize float64
	SizeReduction float64 // Percentage
}

// CalculateStats computes batch metrics from the inputs and a shared quality.
func CalculateStats(inputs []Input, qualityPercent int) (Stats, error) {
	predicted, err := EstimateTotal(inputs, qualityPercent)
	if err != nil {
		return Stats{}, err
	}

	var original int64
	for _, in := range inputs {
		original += in.Bytes
	}

	reduction := 0.0
	if original > 0 {
		reduction = (float64(original) - predicted) / float64(original) * 100
	}

	return Stats{
		ImageCount:    len(inputs),
		OriginalSize:  original,
		PredictedSize: predicted,
		SizeReduction: reduction,
	}, nil
}
