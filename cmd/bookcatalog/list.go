package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogapp "github.com/alexisbeaulieu97/bookcatalog/internal/app/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
	"github.com/alexisbeaulieu97/bookcatalog/internal/preview"
)

const emptyResultMessage = "No results found. Your filters might be too narrow."

type listOptions struct {
	title      string
	author     string
	genre      string
	pages      int
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, optionally filtered",
		Long: `Print the first page of the catalog. --title matches a case-insensitive
substring; --author and --genre accept an id, a display name or "any".
--pages renders that many pages, as if "show more" had been used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Title substring to match")
	cmd.Flags().StringVar(&opts.author, "author", catalog.Any, "Author id or name")
	cmd.Flags().StringVar(&opts.genre, "genre", catalog.Any, "Genre id or name")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "Number of pages to render")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.list")

	if opts.pages < 1 {
		return newCommandError("list books", "validating --pages", fmt.Errorf("pages must be at least 1, got %d", opts.pages), "Pass a positive --pages value.")
	}

	svc := catalogapp.NewService(app.Dataset, nil, nil, logger)

	author, err := resolveOption(svc.AuthorOptions(), opts.author)
	if err != nil {
		return newCommandError("list books", "resolving --author", err, "Run 'bookcatalog options authors' to see valid values.")
	}
	genre, err := resolveOption(svc.GenreOptions(), opts.genre)
	if err != nil {
		return newCommandError("list books", "resolving --genre", err, "Run 'bookcatalog options genres' to see valid values.")
	}

	criteria := catalog.FilterCriteria{Title: opts.title, Author: author, Genre: genre}
	if criteria.Unconstrained() {
		svc.Start(ctx)
	} else {
		svc.Search(ctx, criteria)
	}

	for page := 1; page < opts.pages; page++ {
		if err := svc.ShowMore(ctx); err != nil {
			if errors.Is(err, catalog.ErrNoMoreResults) {
				break
			}
			return newCommandError("list books", "paginating", err, "Re-run with --verbose for details.")
		}
	}

	items := svc.Rendered(ctx)
	if opts.jsonOutput {
		return renderListJSON(cmd, svc, items)
	}
	if svc.EmptyResult() {
		fmt.Fprintln(cmd.OutOrStdout(), emptyResultMessage)
		return nil
	}
	return renderListTable(cmd, svc, items)
}

func renderListTable(cmd *cobra.Command, svc *catalogapp.Service, items []ports.ListItem) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR\tYEAR\tGENRES")
	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			item.Fields.ID,
			valueOrFallback(preview.Sanitize(item.Fields.Title), "(untitled)"),
			preview.Sanitize(item.Fields.Author),
			item.Book.Published.UTC().Year(),
			strings.Join(genreNames(svc.Dataset(), item.Book), ", "),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	state := svc.State()
	more := svc.ShowMoreState()
	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d. %s\n", len(items), len(state.Matches), more.Label)
	return nil
}

type listJSONBook struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Image  string   `json:"image,omitempty"`
	Genres []string `json:"genres"`
}

type listJSONPayload struct {
	Version   string         `json:"version"`
	Total     int            `json:"total"`
	Matches   int            `json:"matches"`
	Page      int            `json:"page"`
	Remaining int            `json:"remaining"`
	Empty     bool           `json:"empty"`
	Books     []listJSONBook `json:"books"`
}

func renderListJSON(cmd *cobra.Command, svc *catalogapp.Service, items []ports.ListItem) error {
	state := svc.State()
	payload := listJSONPayload{
		Version:   "1.0",
		Total:     svc.Dataset().Len(),
		Matches:   len(state.Matches),
		Page:      state.Page,
		Remaining: svc.ShowMoreState().Remaining,
		Empty:     svc.EmptyResult(),
		Books:     make([]listJSONBook, len(items)),
	}

	for i, item := range items {
		payload.Books[i] = listJSONBook{
			ID:     item.Fields.ID,
			Title:  item.Fields.Title,
			Author: item.Fields.Author,
			Year:   item.Book.Published.UTC().Year(),
			Image:  item.Fields.Image,
			Genres: genreNames(svc.Dataset(), item.Book),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// genreNames resolves genre ids, falling back to the id when no name exists.
func genreNames(ds *catalog.Dataset, book catalog.Book) []string {
	names := make([]string, 0, len(book.Genres))
	for _, id := range book.Genres {
		if name, ok := ds.Genres().Lookup(id); ok {
			names = append(names, name)
			continue
		}
		names = append(names, id)
	}
	return names
}
