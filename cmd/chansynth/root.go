package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chansynth-go/internal/config"
	"github.com/ukaji3/chansynth-go/pkg/chansynth"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var summary bool

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "chansynth [dir]",
		Short: "Build channel lineup reports from extracted provider documents",
		Long: `chansynth scans a directory for lineup documents (*b.tsv) and their
section catalogs (*a.tsv) and writes one categorized report (*c.xlsx) per pair.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, ctx, args, summary)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a summary table after the batch")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runBatch(cmd *cobra.Command, ctx *commandContext, args []string, summary bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	opts, err := ctx.options()
	if err != nil {
		return err
	}

	dir := cfg.Batch.Directory
	if len(args) > 0 {
		dir = args[0]
	}

	out := cmd.OutOrStdout()
	result, err := chansynth.RunBatch(dir, opts, func(o chansynth.Outcome) {
		fmt.Fprintln(out, o.Message())
	})
	if err != nil {
		return err
	}

	if summary {
		fmt.Fprintln(out, renderBatchSummary(result, shouldColorize(out)))
	}

	prefs, err := ctx.ensurePreferences()
	if err != nil {
		opts.Logger.Warn("preferences unavailable", slog.String("error", err.Error()))
		return nil
	}
	if abs, err := filepath.Abs(dir); err == nil {
		if err := prefs.Set(config.PrefLastDirectory, abs); err != nil {
			opts.Logger.Warn("failed to save preferences", slog.String("error", err.Error()))
		}
	}
	return nil
}
