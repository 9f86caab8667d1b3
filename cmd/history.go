package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent operations",
	Long:  `Show the activity log of recent compress and assemble operations, most recent first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum entries to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := activityLog().Entries()
	if err != nil {
		return fmt.Errorf("failed to read activity log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No recorded operations")
		return nil
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	for _, entry := range entries {
		fmt.Printf("%s  %-8s  %-30s %s\n",
			entry.Timestamp.Format("2006-01-02 15:04"),
			entry.Operation, entry.Filename, entry.Summary)
	}
	return nil
}
