package ports

import "github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"

// ListItem pairs a book with the display fields its preview is built from.
type ListItem struct {
	Book   catalog.Book
	Fields catalog.PreviewFields
}

// ListSink receives list rendering instructions. Replace discards everything
// previously rendered; Append adds items after the existing ones and must not
// touch them.
type ListSink interface {
	Replace(items []ListItem)
	Append(items []ListItem)
	ShowEmptyState(show bool)
	UpdateShowMore(state catalog.ShowMore)
}

// DetailSink receives the display fields of a resolved book. It is not called
// when resolution fails.
type DetailSink interface {
	ShowDetail(detail catalog.Detail)
}
