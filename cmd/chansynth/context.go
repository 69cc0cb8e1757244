package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ukaji3/chansynth-go/internal/config"
	"github.com/ukaji3/chansynth-go/internal/logging"
	"github.com/ukaji3/chansynth-go/pkg/chansynth"
	"github.com/ukaji3/chansynth-go/pkg/chansynth/output"
)

type commandContext struct {
	configPath *string
	logLevel   *string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	prefs  *config.Preferences
}

func newCommandContext(configPath, logLevel *string) *commandContext {
	return &commandContext{configPath: configPath, logLevel: logLevel}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	if *c.logLevel != "" {
		cfg.Logging.Level = *c.logLevel
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, err
	}
	c.logger, c.closer = logger, closer
	return logger, nil
}

func (c *commandContext) ensurePreferences() (*config.Preferences, error) {
	if c.prefs != nil {
		return c.prefs, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	prefs, err := config.OpenPreferences(cfg.PreferencesFile)
	if err != nil {
		return nil, err
	}
	if issue := prefs.LoadIssue(); issue != nil {
		if logger, lerr := c.ensureLogger(); lerr == nil {
			logger.Warn("preferences reset to defaults",
				slog.String("path", prefs.Path()),
				slog.String("reason", issue.Error()))
		}
	}
	c.prefs = prefs
	return prefs, nil
}

func (c *commandContext) options() (chansynth.Options, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return chansynth.Options{}, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return chansynth.Options{}, err
	}
	return optionsFromConfig(cfg, logger), nil
}

func (c *commandContext) close() {
	if c.closer != nil {
		_ = c.closer.Close()
	}
}

func optionsFromConfig(cfg *config.Config, logger *slog.Logger) chansynth.Options {
	return chansynth.Options{
		Naming: chansynth.Naming{
			DataSuffix:    cfg.Batch.DataSuffix,
			CatalogSuffix: cfg.Batch.CatalogSuffix,
			OutputSuffix:  cfg.Batch.OutputSuffix,
			DataExt:       cfg.Batch.DataExt,
			OutputExt:     cfg.Batch.OutputExt,
		},
		Providers: cfg.Providers,
		Report: output.XLSXOptions{
			SheetName:         cfg.Report.SheetName,
			HighlightProvider: cfg.Report.HighlightProvider,
			HighlightColor:    cfg.Report.HighlightColor,
			HeaderToken:       cfg.Report.HeaderToken,
			PrintArea:         cfg.Report.PrintArea,
		},
		Logger: logger,
	}
}
