package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookcatalog/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
	"github.com/alexisbeaulieu97/bookcatalog/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long:  `Open the interactive browser: page through the catalog, search by title, genre and author, and open a book's details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowseCommand(cmd, flags)
		},
	}

	return cmd
}

func runBrowseCommand(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	ctx, logger := app.CommandContext(cmd, "command.browse")
	logger.Info(ctx, "launching browser", "books", app.Dataset.Len(), "page_size", app.Dataset.PageSize())

	err = runBrowser(ctx, app, logger)
	if err != nil {
		logger.Error(ctx, "browser failed", "error", err)
	}
	return err
}

// runBrowser buffers log output while the browser owns the terminal and
// replays it afterwards.
func runBrowser(ctx context.Context, app *AppContext, logger ports.Logger) error {
	selected, err := theme.Resolve(app.Settings.Theme)
	if err != nil {
		return newCommandError("browse", "resolving theme", err, "Use --theme day, night or auto.")
	}

	buffer := logging.NewEventBuffer(0)
	defer buffer.Flush(logger)

	err = browser.Run(ctx, browser.Options{
		Context:    ctx,
		Dataset:    app.Dataset,
		Theme:      selected,
		Logger:     logging.NewBufferedLogger(buffer),
		UseUnicode: supportsUnicode(os.Stdout),
	})
	if err != nil {
		return newCommandError("browse", "running the terminal UI", err, "Run 'bookcatalog list' for non-interactive output.")
	}
	return nil
}
