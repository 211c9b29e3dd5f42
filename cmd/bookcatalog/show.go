package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	catalogapp "github.com/alexisbeaulieu97/bookcatalog/internal/app/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/preview"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show the details of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output book details as JSON")

	return cmd
}

type showJSONPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

func runShow(cmd *cobra.Command, app *AppContext, id string, opts *showOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.show")
	svc := catalogapp.NewService(app.Dataset, nil, nil, logger)

	detail, err := svc.Select(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return newCommandError("show book", fmt.Sprintf("book %q", id), err, "Run 'bookcatalog list' to see available book ids.")
		}
		return newCommandError("show book", fmt.Sprintf("book %q", id), err, "Re-run with --verbose for details.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(showJSONPayload{
			ID:          detail.ID,
			Title:       detail.Title,
			Author:      detail.AuthorName,
			Year:        detail.Year,
			Image:       detail.Image,
			Description: detail.Description,
		})
	}

	selected, err := theme.Resolve(app.Settings.Theme)
	if err != nil {
		selected = theme.Day()
	}
	renderer := preview.NewRenderer(selected, supportsUnicode(cmd.OutOrStdout()))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDetail(detail, 72))
	return nil
}
