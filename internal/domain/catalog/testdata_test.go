package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testMappings() (Mapping, Mapping) {
	authors := NewMapping(
		Entry{ID: "a-herbert", Name: "Frank Herbert"},
		Entry{ID: "a-leguin", Name: "Ursula K. Le Guin"},
		Entry{ID: "a-austen", Name: "Jane Austen"},
	)
	genres := NewMapping(
		Entry{ID: "g-scifi", Name: "Science Fiction"},
		Entry{ID: "g-fantasy", Name: "Fantasy"},
		Entry{ID: "g-romance", Name: "Romance"},
	)
	return authors, genres
}

func testBooks() []Book {
	return []Book{
		{ID: "b1", Title: "Dune", Author: "a-herbert", Genres: []string{"g-scifi"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), Image: "dune.jpg", Description: "Spice."},
		{ID: "b2", Title: "Dune Messiah", Author: "a-herbert", Genres: []string{"g-scifi"}, Published: time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC), Image: "messiah.jpg"},
		{ID: "b3", Title: "A Wizard of Earthsea", Author: "a-leguin", Genres: []string{"g-fantasy"}, Published: time.Date(1968, 11, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b4", Title: "The Left Hand of Darkness", Author: "a-leguin", Genres: []string{"g-scifi", "g-fantasy"}, Published: time.Date(1969, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b5", Title: "Pride and Prejudice", Author: "a-austen", Genres: []string{"g-romance"}, Published: time.Date(1813, 1, 28, 0, 0, 0, 0, time.UTC)},
	}
}

func newTestDataset(t *testing.T, pageSize int) *Dataset {
	t.Helper()
	authors, genres := testMappings()
	ds, err := NewDataset(testBooks(), authors, genres, pageSize)
	require.NoError(t, err)
	return ds
}

// generatedDataset builds n books all written by the same author.
func generatedDataset(t *testing.T, n, pageSize int) *Dataset {
	t.Helper()
	authors, genres := testMappings()
	books := make([]Book, n)
	for i := range books {
		books[i] = Book{
			ID:        fmt.Sprintf("gen-%02d", i),
			Title:     fmt.Sprintf("Volume %d", i+1),
			Author:    "a-herbert",
			Genres:    []string{"g-scifi"},
			Published: time.Date(2000+i, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	ds, err := NewDataset(books, authors, genres, pageSize)
	require.NoError(t, err)
	return ds
}

func ids(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}
