package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alde/imagepress/pkg/estimator"
	"github.com/alde/imagepress/pkg/history"
	"github.com/alde/imagepress/pkg/transcode"
	"github.com/alde/imagepress/pkg/workspace"
)

var (
	compressOutputPath string
	compressQuality    int
	compressGrayscale  bool
	compressWebP       bool
)

var compressCmd = &cobra.Command{
	Use:   "compress [image]",
	Short: "Compress a single image",
	Long: `Compress a single image through lossy re-encoding.

PNG input at quality 100 is preserved losslessly as PNG; every other
combination is re-encoded as JPEG. With --grayscale the image is converted
to grayscale first and always written as JPEG. With --webp the image is
written as lossy WebP instead.

Examples:
  imagepress compress photo.jpg -q 60
  imagepress compress scan.png -q 100
  imagepress compress photo.jpg --grayscale -o out/photo_bw.jpg
  imagepress compress photo.jpg -q 75 --webp`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)

	compressCmd.Flags().StringVarP(&compressOutputPath, "output", "o", "", "Output file path (default: Compressed_<quality>_<name> next to the input)")
	compressCmd.Flags().IntVarP(&compressQuality, "quality", "q", 80, "Encoding quality percentage (1-100)")
	compressCmd.Flags().BoolVar(&compressGrayscale, "grayscale", false, "Convert to grayscale before encoding")
	compressCmd.Flags().BoolVar(&compressWebP, "webp", false, "Write lossy WebP output instead of JPEG/PNG")
}

func runCompress(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if err := validateInputFiles(args); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if err := validateQuality(compressQuality); err != nil {
		return fmt.Errorf("quality validation failed: %w", err)
	}

	ws := workspace.New()
	if err := ws.Load(context.Background(), args, 1); err != nil {
		return err
	}
	src := ws.Images()[0]

	if verbose {
		predicted, err := estimator.Estimate(src.Size(), compressQuality, src.Format.Lossless())
		if err == nil {
			fmt.Printf("Original:  %s\n", estimator.FormatBytes(float64(src.Size())))
			fmt.Printf("Estimated: %s\n", estimator.FormatBytes(predicted))
		}
	}

	tc := transcode.New()

	var encoded []byte
	var ext string
	if compressWebP {
		img, err := transcode.Decode(src.Data, src.Format)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
		if compressGrayscale {
			gray, err := transcode.GrayscaleImage(img)
			if err != nil {
				return fmt.Errorf("compression failed: %w", err)
			}
			img = gray
		}
		if encoded, err = tc.EncodeWebP(img, compressQuality); err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
		ext = transcode.FormatWEBP.Extension()
	} else {
		res, err := tc.Transcode(src.Data, src.Format, compressQuality, compressGrayscale)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
		encoded = res.Bytes
		ext = res.Format.Extension()
	}

	outputPath := compressOutputPath
	if outputPath == "" {
		name := fmt.Sprintf("Compressed_%d_%s.%s", compressQuality, src.BaseName(), ext)
		outputPath = filepath.Join(filepath.Dir(inputPath), name)
	}

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	summary := fmt.Sprintf("%s -> %s",
		estimator.FormatBytes(float64(src.Size())),
		estimator.FormatBytes(float64(len(encoded))))
	activityLog().Append(history.Entry{
		Operation: "compress",
		Filename:  filepath.Base(outputPath),
		Summary:   summary,
	})

	fmt.Printf("✅ Wrote %s (%s)\n", outputPath, summary)
	return nil
}
