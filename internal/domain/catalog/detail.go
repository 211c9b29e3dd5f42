package catalog

import "fmt"

// Detail holds the display fields of a resolved book.
type Detail struct {
	ID          string
	Image       string
	Title       string
	AuthorName  string
	Year        int
	Description string
}

// Subtitle renders "Author (Year)".
func (d Detail) Subtitle() string {
	return fmt.Sprintf("%s (%d)", d.AuthorName, d.Year)
}

// ResolveDetail looks id up in the full dataset, independent of any filter.
// A missing book or a book whose author has no display name yields an error
// matching ErrNotFound.
func ResolveDetail(d *Dataset, id string) (Detail, error) {
	book, ok := d.Book(id)
	if !ok {
		return Detail{}, newNotFoundError(id)
	}

	name, ok := d.Authors().Lookup(book.Author)
	if !ok {
		return Detail{}, newMissingAuthorError(book.ID, book.Author)
	}

	return Detail{
		ID:          book.ID,
		Image:       book.Image,
		Title:       book.Title,
		AuthorName:  name,
		Year:        book.Published.UTC().Year(),
		Description: book.Description,
	}, nil
}

// PreviewFields are the four flat attributes a preview item consumes. Author
// is already resolved to display text.
type PreviewFields struct {
	ID     string
	Title  string
	Author string
	Image  string
}

// Preview derives the preview attributes of b.
func Preview(d *Dataset, b Book) (PreviewFields, error) {
	name, ok := d.Authors().Lookup(b.Author)
	if !ok {
		return PreviewFields{}, newMissingAuthorError(b.ID, b.Author)
	}
	return PreviewFields{
		ID:     b.ID,
		Title:  b.Title,
		Author: name,
		Image:  b.Image,
	}, nil
}
