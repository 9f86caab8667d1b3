package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alde/imagepress/pkg/document"
	"github.com/alde/imagepress/pkg/estimator"
	"github.com/alde/imagepress/pkg/history"
	"github.com/alde/imagepress/pkg/layout"
	"github.com/alde/imagepress/pkg/progress"
	"github.com/alde/imagepress/pkg/workspace"
)

const defaultDocumentName = "document"

var (
	assembleOutputName string
	assembleQuality    int
	assembleGrayscale  bool
	assemblePage       string
	assembleMargin     float64
	assembleWorkers    int
)

var assembleCmd = &cobra.Command{
	Use:   "assemble [image]...",
	Short: "Assemble images into a multi-page PDF",
	Long: `Assemble one or more images into a PDF document, one page per image
in the order given. Each image is re-encoded at the chosen quality and
centered within the printable area of the page.

Examples:
  imagepress assemble scan1.jpg scan2.jpg -o scans
  imagepress assemble *.png --page letter -q 90
  imagepress assemble photo.jpg --grayscale --margin 15`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAssemble,
}

func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringVarP(&assembleOutputName, "output", "o", "", "Output filename without extension (default \"document\")")
	assembleCmd.Flags().IntVarP(&assembleQuality, "quality", "q", document.DefaultQuality, "Encoding quality percentage (1-100)")
	assembleCmd.Flags().BoolVar(&assembleGrayscale, "grayscale", false, "Convert every page to grayscale")
	assembleCmd.Flags().StringVar(&assemblePage, "page", "a4", "Page profile (a4, a4-landscape, a5, a3, letter, legal)")
	assembleCmd.Flags().Float64Var(&assembleMargin, "margin", -1, "Page margin in millimetres (default: profile margin)")
	assembleCmd.Flags().IntVar(&assembleWorkers, "workers", 0, "Number of concurrent file loads (0 = auto)")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	if err := validateInputFiles(args); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if err := validateQuality(assembleQuality); err != nil {
		return fmt.Errorf("quality validation failed: %w", err)
	}

	page, err := layout.GetProfile(assemblePage)
	if err != nil {
		return fmt.Errorf("page profile error: %w", err)
	}
	if assembleMargin >= 0 {
		page.Margin = assembleMargin
	}

	outputPath := outputDocumentPath(assembleOutputName)

	ctx := context.Background()
	ws := workspace.New()
	if err := ws.Load(ctx, args, assembleWorkers); err != nil {
		return fmt.Errorf("failed to load images: %w", err)
	}

	if verbose {
		predicted, err := ws.EstimateTotal(assembleQuality)
		if err == nil {
			fmt.Printf("Assembling %d images into %s\n", ws.Len(), outputPath)
			fmt.Printf("Original total:  %s\n", estimator.FormatBytes(float64(ws.TotalBytes())))
			fmt.Printf("Estimated total: %s\n", estimator.FormatBytes(predicted))
		}
	}

	opts := document.Options{
		Quality:   assembleQuality,
		Grayscale: assembleGrayscale,
		Page:      page,
	}
	if verbose {
		bar := progress.NewSimple(ws.Len(), "Processing pages")
		opts.OnPage = func(done, total int) {
			bar.Update(done)
			if done == total {
				bar.Finish()
			}
		}
	}

	asm := document.New(opts)
	artifact, err := asm.Assemble(ctx, ws.Images())
	if err != nil {
		return fmt.Errorf("assembly failed: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := document.WritePDF(out, artifact); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	stats := asm.GetStats()
	summary := fmt.Sprintf("%s pages, %s -> %s",
		humanize.Comma(int64(stats.PageCount)),
		estimator.FormatBytes(float64(stats.InputBytes)),
		estimator.FormatBytes(float64(stats.OutputBytes)))
	activityLog().Append(history.Entry{
		Operation: "assemble",
		Filename:  outputPath,
		Summary:   summary,
	})

	fmt.Printf("✅ Wrote %s (%s) in %v\n",
		outputPath, summary, stats.ProcessingTime.Round(time.Millisecond))
	return nil
}

// outputDocumentPath derives the PDF filename from the user's choice,
// falling back to the default when blank or whitespace-only.
func outputDocumentPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultDocumentName
	}
	name = strings.TrimSuffix(name, ".pdf")
	return name + ".pdf"
}
