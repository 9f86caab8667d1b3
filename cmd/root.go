package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alde/imagepress/pkg/history"
)

var rootCmd = &cobra.Command{
	Use:   "imagepress",
	Short: "Compress images and bundle them into PDF documents",
	Long: `Imagepress is a CLI tool for lossy image compression and for
assembling images into multi-page PDF documents.

Currently supports:
- Single-image compression with optional grayscale conversion
- Multi-image PDF assembly with configurable page layout
- Instant output-size estimates without touching pixel data`,
	Version: "0.1.0",
}

var verbose bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// activityLog opens the shared activity log in the user's home directory,
// falling back to the working directory when no home is available.
func activityLog() *history.Log {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return history.Open(filepath.Join(dir, ".imagepress_history.json"), history.DefaultMaxEntries)
}

func validateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}
	return nil
}

func validateInputFiles(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		if err != nil {
			return fmt.Errorf("cannot access input file %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("input path is a directory: %s", path)
		}
	}
	return nil
}
