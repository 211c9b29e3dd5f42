package catalog

import (
	"fmt"
	"time"
)

// Book is an immutable catalog record.
type Book struct {
	ID          string
	Title       string
	Author      string
	Image       string
	Description string
	Published   time.Time
	Genres      []string
}

// HasGenre reports whether id is one of the book's genres.
func (b Book) HasGenre(id string) bool {
	for _, genre := range b.Genres {
		if genre == id {
			return true
		}
	}
	return false
}

func (b Book) clone() Book {
	b.Genres = append([]string(nil), b.Genres...)
	return b
}

// Entry is a single id/display-name pair.
type Entry struct {
	ID   string
	Name string
}

// Mapping resolves ids to display names and remembers insertion order.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping builds a Mapping from entries in the given order. A repeated id
// keeps its first position and takes the last name.
func NewMapping(entries ...Entry) Mapping {
	m := Mapping{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if pos, ok := m.index[entry.ID]; ok {
			m.entries[pos].Name = entry.Name
			continue
		}
		m.index[entry.ID] = len(m.entries)
		m.entries = append(m.entries, entry)
	}
	return m
}

// Lookup returns the display name for id.
func (m Mapping) Lookup(id string) (string, bool) {
	pos, ok := m.index[id]
	if !ok {
		return "", false
	}
	return m.entries[pos].Name, true
}

// Entries returns a copy of the entries in insertion order.
func (m Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of entries.
func (m Mapping) Len() int {
	return len(m.entries)
}

// Dataset is the read-only collection the catalog is browsed from.
type Dataset struct {
	books    []Book
	byID     map[string]int
	authors  Mapping
	genres   Mapping
	pageSize int
}

// NewDataset validates and assembles a Dataset. Books keep their order.
func NewDataset(books []Book, authors, genres Mapping, pageSize int) (*Dataset, error) {
	if pageSize <= 0 {
		return nil, newValidationError(fmt.Sprintf("page size must be positive, got %d", pageSize), map[string]interface{}{
			"page_size": pageSize,
		})
	}

	ds := &Dataset{
		books:    make([]Book, len(books)),
		byID:     make(map[string]int, len(books)),
		authors:  authors,
		genres:   genres,
		pageSize: pageSize,
	}
	copy(ds.books, books)

	for i, book := range ds.books {
		if book.ID == "" {
			return nil, newValidationError("book id is required", map[string]interface{}{"index": i})
		}
		if _, exists := ds.byID[book.ID]; exists {
			return nil, newValidationError(fmt.Sprintf("duplicate book id %q", book.ID), map[string]interface{}{
				"book_id": book.ID,
				"index":   i,
			})
		}
		ds.byID[book.ID] = i
	}

	return ds, nil
}

// WithPageSize returns a dataset sharing d's records with a different page
// size.
func (d *Dataset) WithPageSize(pageSize int) (*Dataset, error) {
	return NewDataset(d.books, d.authors, d.genres, pageSize)
}

// Books returns the books in dataset order. The slice and the books' Genres
// are shared with the dataset and must not be modified.
func (d *Dataset) Books() []Book {
	return d.books
}

// Book finds a book by exact id.
func (d *Dataset) Book(id string) (Book, bool) {
	pos, ok := d.byID[id]
	if !ok {
		return Book{}, false
	}
	return d.books[pos].clone(), true
}

// Authors returns the author mapping.
func (d *Dataset) Authors() Mapping {
	return d.authors
}

// Genres returns the genre mapping.
func (d *Dataset) Genres() Mapping {
	return d.genres
}

// PageSize returns the number of books per window.
func (d *Dataset) PageSize() int {
	return d.pageSize
}

// Len returns the number of books.
func (d *Dataset) Len() int {
	return len(d.books)
}

// Integrity lists references to authors or genres that have no mapping entry.
func (d *Dataset) Integrity() []error {
	var problems []error
	for _, book := range d.books {
		if _, ok := d.authors.Lookup(book.Author); !ok {
			problems = append(problems, newDomainError(ErrCodeDataIntegrity, fmt.Sprintf("book %q references unknown author %q", book.ID, book.Author), nil, map[string]interface{}{
				"book_id":   book.ID,
				"author_id": book.Author,
			}))
		}
		for _, genre := range book.Genres {
			if _, ok := d.genres.Lookup(genre); !ok {
				problems = append(problems, newDomainError(ErrCodeDataIntegrity, fmt.Sprintf("book %q references unknown genre %q", book.ID, genre), nil, map[string]interface{}{
					"book_id":  book.ID,
					"genre_id": genre,
				}))
			}
		}
	}
	return problems
}
