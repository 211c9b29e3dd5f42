package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Any is the selector value meaning "no constraint".
const Any = "any"

// FilterCriteria is a single search submission.
type FilterCriteria struct {
	Title  string
	Author string
	Genre  string
}

// DefaultCriteria matches every book.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Author: Any, Genre: Any}
}

// Unconstrained reports whether the criteria match every book.
func (c FilterCriteria) Unconstrained() bool {
	return strings.TrimSpace(c.Title) == "" && isAny(c.Author) && isAny(c.Genre)
}

// Matches reports whether b satisfies all three predicates.
func (c FilterCriteria) Matches(b Book) bool {
	return newMatcher(c).matches(b)
}

// Filter returns the books satisfying criteria, in source order. An empty
// result is returned as a non-nil empty slice.
func Filter(books []Book, criteria FilterCriteria) []Book {
	m := newMatcher(criteria)
	out := make([]Book, 0, len(books))
	for _, book := range books {
		if m.matches(book) {
			out = append(out, book)
		}
	}
	return out
}

type matcher struct {
	title  string
	author string
	genre  string
	fold   cases.Caser
}

func newMatcher(c FilterCriteria) *matcher {
	fold := cases.Fold()
	return &matcher{
		title:  fold.String(strings.TrimSpace(c.Title)),
		author: c.Author,
		genre:  c.Genre,
		fold:   fold,
	}
}

func (m *matcher) matches(b Book) bool {
	if !isAny(m.genre) && !b.HasGenre(m.genre) {
		return false
	}
	if m.title != "" && !strings.Contains(m.fold.String(b.Title), m.title) {
		return false
	}
	if !isAny(m.author) && b.Author != m.author {
		return false
	}
	return true
}

// An empty selector is treated like Any.
func isAny(id string) bool {
	return id == Any || id == ""
}
