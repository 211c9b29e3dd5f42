package catalog

// Default selector labels.
const (
	AllGenresLabel  = "All Genres"
	AllAuthorsLabel = "All Authors"
)

// Option is one selector entry.
type Option struct {
	ID    string
	Label string
}

// BuildOptions prepends the "no constraint" entry to the mapping's entries,
// keeping the mapping's insertion order.
func BuildOptions(mapping Mapping, defaultID, defaultLabel string) []Option {
	entries := mapping.Entries()
	options := make([]Option, 0, len(entries)+1)
	options = append(options, Option{ID: defaultID, Label: defaultLabel})
	for _, entry := range entries {
		options = append(options, Option{ID: entry.ID, Label: entry.Name})
	}
	return options
}

// GenreOptions returns the genre selector entries for the dataset.
func GenreOptions(d *Dataset) []Option {
	return BuildOptions(d.Genres(), Any, AllGenresLabel)
}

// AuthorOptions returns the author selector entries for the dataset.
func AuthorOptions(d *Dataset) []Option {
	return BuildOptions(d.Authors(), Any, AllAuthorsLabel)
}
