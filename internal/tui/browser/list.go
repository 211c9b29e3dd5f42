package browser

import (
	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
	"github.com/alexisbeaulieu97/bookcatalog/internal/preview"
)

// listBuffer is the rendered list. Fragments are rendered once when items
// arrive and kept until the list is replaced or restyled.
type listBuffer struct {
	renderer  *preview.Renderer
	items     []ports.ListItem
	fragments []string
	empty     bool
	showMore  catalog.ShowMore
	replaced  int
}

var _ ports.ListSink = (*listBuffer)(nil)

func newListBuffer(renderer *preview.Renderer) *listBuffer {
	return &listBuffer{renderer: renderer}
}

func (l *listBuffer) Replace(items []ports.ListItem) {
	l.items = make([]ports.ListItem, 0, len(items))
	l.fragments = make([]string, 0, len(items))
	l.replaced++
	l.Append(items)
}

func (l *listBuffer) Append(items []ports.ListItem) {
	for _, item := range items {
		l.items = append(l.items, item)
		l.fragments = append(l.fragments, l.renderer.Render(item.Fields, false))
	}
}

func (l *listBuffer) ShowEmptyState(show bool) {
	l.empty = show
}

func (l *listBuffer) UpdateShowMore(state catalog.ShowMore) {
	l.showMore = state
}

// restyle re-renders every cached fragment with renderer. Items and their
// order are untouched.
func (l *listBuffer) restyle(renderer *preview.Renderer) {
	l.renderer = renderer
	for i, item := range l.items {
		l.fragments[i] = renderer.Render(item.Fields, false)
	}
}

func (l *listBuffer) Len() int {
	return len(l.items)
}

func (l *listBuffer) item(i int) (ports.ListItem, bool) {
	if i < 0 || i >= len(l.items) {
		return ports.ListItem{}, false
	}
	return l.items[i], true
}

// fragment returns the cached fragment, or a fresh highlighted one for the
// selected row.
func (l *listBuffer) fragment(i int, selected bool) string {
	if selected {
		return l.renderer.Render(l.items[i].Fields, true)
	}
	return l.fragments[i]
}

// detailPane holds the last resolved detail.
type detailPane struct {
	detail  catalog.Detail
	visible bool
}

var _ ports.DetailSink = (*detailPane)(nil)

func (d *detailPane) ShowDetail(detail catalog.Detail) {
	d.detail = detail
	d.visible = true
}

func (d *detailPane) hide() {
	d.visible = false
}
