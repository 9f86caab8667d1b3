package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alde/imagepress/pkg/estimator"
	"github.com/alde/imagepress/pkg/workspace"
)

var estimateQuality int

var estimateCmd = &cobra.Command{
	Use:   "estimate [image]...",
	Short: "Predict compressed sizes without re-encoding",
	Long: `Predict the compressed output size of one or more images at a given
quality setting. The prediction is a heuristic based on file size and format;
no pixel data is decoded, so it is instant even for large batches.

Examples:
  imagepress estimate photo.jpg -q 50
  imagepress estimate scans/*.png -q 80`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().IntVarP(&estimateQuality, "quality", "q", 80, "Encoding quality percentage (1-100)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if err := validateInputFiles(args); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if err := validateQuality(estimateQuality); err != nil {
		return fmt.Errorf("quality validation failed: %w", err)
	}

	ws := workspace.New()
	if err := ws.Load(context.Background(), args, 0); err != nil {
		return fmt.Errorf("failed to load images: %w", err)
	}

	for _, src := range ws.Images() {
		predicted, err := estimator.Estimate(src.Size(), estimateQuality, src.Format.Lossless())
		if err != nil {
			return fmt.Errorf("estimate failed for %s: %w", src.Name, err)
		}
		fmt.Printf("%-40s %10s -> %10s\n", src.Name,
			estimator.FormatBytes(float64(src.Size())),
			estimator.FormatBytes(predicted))
	}

	total, err := ws.EstimateTotal(estimateQuality)
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}

	original := float64(ws.TotalBytes())
	fmt.Printf("\nTotal at quality %d%%: %s -> %s", estimateQuality,
		estimator.FormatBytes(original), estimator.FormatBytes(total))
	if original > 0 {
		fmt.Printf(" (%.1f%% reduction)", (original-total)/original*100)
	}
	fmt.Println()

	return nil
}
