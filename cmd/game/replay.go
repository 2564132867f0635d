package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/younwookim/upward/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session headless and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.OutOrStdout(), args[0])
	},
}

func runReplay(out io.Writer, filename string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfig)
	if err != nil {
		return err
	}
	cfg, stage, err := loadGame(loader, data.Stage)
	if err != nil {
		return err
	}

	logger.Debug("replaying", "file", filename, "frames", len(data.Frames), "seed", data.Seed)
	res := replay.NewReplayer(*data).Run(cfg, stage, logger)

	fmt.Fprintf(out, "Stage:    %s\n", data.Stage)
	fmt.Fprintf(out, "Seed:     %d\n", data.Seed)
	fmt.Fprintf(out, "Frames:   %d\n", res.Frames)
	fmt.Fprintf(out, "Time:     %.2fs\n", res.Time)
	fmt.Fprintf(out, "Outcome:  %s\n", res.Outcome)
	fmt.Fprintf(out, "Lives:    %d\n", res.Lives)
	fmt.Fprintf(out, "Position: (%.1f, %.1f)\n", res.Final.X, res.Final.Y)
	if res.Diagnostics > 0 {
		fmt.Fprintf(out, "Warnings: %d frames\n", res.Diagnostics)
	}
	return nil
}
