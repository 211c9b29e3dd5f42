package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
)

type optionsOptions struct {
	jsonOutput bool
}

func newOptionsCmd(flags *rootFlags) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:       "options [genres|authors]",
		Short:     "List the genre and author filter values",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"genres", "authors"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			kinds := []string{"genres", "authors"}
			if len(args) == 1 {
				kinds = args
			}
			return runOptions(cmd, app, kinds, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type optionJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func runOptions(cmd *cobra.Command, app *AppContext, kinds []string, opts *optionsOptions) error {
	sets := make(map[string][]catalog.Option, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case "genres":
			sets[kind] = catalog.GenreOptions(app.Dataset)
		case "authors":
			sets[kind] = catalog.AuthorOptions(app.Dataset)
		}
	}

	if opts.jsonOutput {
		payload := make(map[string][]optionJSON, len(sets))
		for kind, options := range sets {
			out := make([]optionJSON, len(options))
			for i, opt := range options {
				out[i] = optionJSON{ID: opt.ID, Label: opt.Label}
			}
			payload[kind] = out
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "%s\n", kind)
		fmt.Fprintln(writer, "ID\tLABEL")
		for _, opt := range sets[kind] {
			fmt.Fprintf(writer, "%s\t%s\n", opt.ID, opt.Label)
		}
	}
	return writer.Flush()
}
