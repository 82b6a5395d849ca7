package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldsys/worldsys/core"
	"github.com/worldsys/worldsys/internal/contract"
	"go.uber.org/zap"
)

// watchCmd re-runs classify whenever the dataset or config file changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run classify whenever the dataset or config file changes.",
	Long: `Run classify once, then again every time the dataset file or the config file
is saved. Config and dataset are re-read on every run, so edits to the metric
selection take effect immediately. A run that fails is logged and watching
continues. Stop with Ctrl-C.

Examples:
  # Re-rank while editing a dataset
  worldsys watch --dataset world.csv

  # Keep an export up to date
  worldsys watch --dataset world.csv --output csv --output-file world-classified.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		paths := watchedPaths()
		if len(paths) == 0 {
			contract.LogFatal("Cannot start watch", errors.New("nothing to watch: pass --dataset or use a config file"))
		}
		debounce := viper.GetDuration("debounce")
		if debounce <= 0 {
			debounce = core.DefaultWatchDebounce
		}
		zap.L().Info("Watching for changes", zap.Strings("paths", paths), zap.Duration("debounce", debounce))

		if err := core.Watch(rootCtx, paths, debounce, runClassify); err != nil {
			contract.LogFatal("Watch stopped", err)
		}
	},
}

// watchedPaths returns the dataset and config file in use, if any.
func watchedPaths() []string {
	var paths []string
	if cfg.DatasetPath != "" {
		paths = append(paths, cfg.DatasetPath)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		paths = append(paths, used)
	}
	return paths
}

// runClassify reloads config and dataset, then classifies. Each run is independent.
func runClassify(ctx context.Context) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := loadDataset(); err != nil {
		return err
	}
	return core.ExecuteClassify(ctx, cfg, ds)
}
