package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/groupbench/internal/config"
	"github.com/leengari/groupbench/internal/engine"
	"github.com/leengari/groupbench/internal/logging"
	"github.com/leengari/groupbench/internal/report"
)

func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "groupbench",
		Short: "Time a parquet/csv load and a grouped mean",
		Long: `Loads data/input.parquet, else data/input.csv, else a synthetic 1,000,000 row table,
groups it by grp, takes the mean of val and prints the timings as JSON on stdout.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd.Context(), app)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func runBenchmark(ctx context.Context, app *App) error {
	cfg := app.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: cfg.Log.SeqURL,
		Writer: app.Stderr,
	})
	defer closeFn()

	eng := engine.New(cfg, logger)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	result, err := eng.Run(ctx)
	if err != nil {
		logger.Debug("benchmark failed", "error", err)
		return err
	}

	return report.Write(app.Stdout, result)
}
