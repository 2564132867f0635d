package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/upward/internal/application/game"
	"github.com/younwookim/upward/internal/application/scene/playing"
	"github.com/younwookim/upward/internal/application/system"
	"github.com/younwookim/upward/internal/domain/entity"
	"github.com/younwookim/upward/internal/infrastructure/config"
	"github.com/younwookim/upward/internal/infrastructure/storage"
)

const appName = "upward"

var (
	flagConfig   string
	flagStage    string
	flagRecord   string
	flagSeed     int64
	flagWatch    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Climb away from the rising goo",
	Long: `Upward is a vertical platformer. You get a random character,
the goo rises from below, and some doors only open for some people.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagStage, "stage", "demo", "stage to play")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "record input to file (e.g. --record replay.json)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "character and debuff seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload stage files on change (needs --config)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(recordsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
	}), nil
}

// newLoader reads from --config when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadGame loads the base configs and builds the named stage
func loadGame(loader *config.Loader, stageID string) (*config.GameConfig, *entity.Stage, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	stageCfg, err := loader.LoadStage(stageID)
	if err != nil {
		return nil, nil, err
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("stage %s: %w", stageID, err)
	}
	return cfg, stage, nil
}

func openRecords(logger *log.Logger) *storage.Records {
	records, err := storage.Open(appName, logger)
	if err != nil {
		logger.Warn("records unavailable", "err", err)
		return storage.New(nil, logger)
	}
	return records
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfig)
	if err != nil {
		return err
	}
	cfg, stage, err := loadGame(loader, flagStage)
	if err != nil {
		return err
	}

	opts := playing.Options{
		StageID:    flagStage,
		RecordPath: flagRecord,
		Seed:       flagSeed,
		Records:    openRecords(logger),
		Logger:     logger,
	}

	if flagWatch {
		if flagConfig == "" {
			logger.Warn("--watch needs --config, stage reload disabled")
		} else {
			watcher, err := config.NewWatcher(filepath.Join(flagConfig, "stages"))
			if err != nil {
				return fmt.Errorf("watch stages: %w", err)
			}
			defer watcher.Close()
			opts.Loader = loader
			opts.Watcher = watcher
		}
	}

	logger.Info("starting", "stage", flagStage, "config", loader.BasePath())
	g := game.New(playing.New(cfg, stage, opts), cfg.Physics.Display, logger)
	return g.Run("Upward")
}
