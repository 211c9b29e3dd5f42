package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bookcatalog/internal/config"
	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
)

// AppContext bundles what a command needs once flags and settings have been
// resolved.
type AppContext struct {
	Settings    config.Settings
	Dataset     *catalog.Dataset
	DatasetName string
	Logger      ports.Logger
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	settingsPath := flags.settingsPath
	if settingsPath == "" {
		path, err := config.DefaultSettingsPath()
		if err != nil {
			return nil, newCommandError("start", "determining settings path", err, "Ensure your HOME directory is set correctly or pass --settings.")
		}
		settingsPath = path
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, newCommandError("start", "loading settings "+settingsPath, err, "Fix or remove the settings file.")
	}
	applyFlagOverrides(cmd, flags, &settings)
	if err := config.ValidateSettings(&settings); err != nil {
		return nil, newCommandError("start", "validating options", err, "Check the --theme, --page-size and --log-level values.")
	}

	logger, err := newLogger(cmd, flags, settings)
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use --log-format console or json.")
	}

	app := &AppContext{Settings: settings, Logger: logger}
	if err := app.loadDataset(); err != nil {
		return nil, err
	}
	return app, nil
}

func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, settings *config.Settings) {
	changed := cmd.Flags().Changed
	if changed("theme") {
		settings.Theme = strings.ToLower(strings.TrimSpace(flags.theme))
	}
	if changed("page-size") {
		settings.PageSize = flags.pageSize
	}
	if changed("log-level") {
		settings.LogLevel = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}
	if changed("data") {
		settings.Dataset = flags.dataPath
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}
}

func newLogger(cmd *cobra.Command, flags *rootFlags, settings config.Settings) (ports.Logger, error) {
	logger, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     settings.LogLevel,
		Format:    logging.Format(flags.logFormat),
		Layer:     "presentation",
		Component: "cli",
	})
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func (a *AppContext) loadDataset() error {
	var (
		ds  *catalog.Dataset
		err error
	)
	if a.Settings.Dataset == "" {
		a.DatasetName = config.SampleName
		ds, err = config.SampleDataset()
	} else {
		a.DatasetName = a.Settings.Dataset
		ds, err = config.ParseDataset(a.Settings.Dataset)
	}
	if err != nil {
		return newCommandError("load catalog", a.DatasetName, err, "Check the dataset file against the expected format.")
	}

	if a.Settings.PageSize > 0 && a.Settings.PageSize != ds.PageSize() {
		ds, err = ds.WithPageSize(a.Settings.PageSize)
		if err != nil {
			return newCommandError("load catalog", "applying page size", err, "Use a positive --page-size.")
		}
	}

	for _, problem := range ds.Integrity() {
		a.Logger.Warn(context.Background(), "dataset integrity problem", "dataset", a.DatasetName, "error", problem)
	}

	a.Dataset = ds
	return nil
}

// CommandContext returns a context carrying a fresh correlation id and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logging.EnsureCorrelationID(ctx)
	logger := a.Logger.With("component", component)
	logger.Debug(ctx, "command started", "dataset", a.DatasetName)
	return ctx, logger
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// resolveOption accepts an option id or a case-insensitive label.
func resolveOption(options []catalog.Option, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, catalog.Any) {
		return catalog.Any, nil
	}
	for _, opt := range options {
		if opt.ID == value {
			return opt.ID, nil
		}
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Label, value) {
			return opt.ID, nil
		}
	}
	return "", fmt.Errorf("unknown value %q", value)
}
