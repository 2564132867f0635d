package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/younwookim/upward/internal/infrastructure/storage"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show saved run statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), openRecords(logger).Summary())
		return nil
	},
}

func printSummary(out io.Writer, s storage.Summary) {
	fmt.Fprintf(out, "Runs:   %d\n", s.Runs)
	fmt.Fprintf(out, "Wins:   %d\n", s.Wins)
	fmt.Fprintf(out, "Losses: %d\n", s.Losses)
	if s.Wins > 0 {
		fmt.Fprintf(out, "Best:   %.2fs\n", s.BestWinTime)
	}
}
