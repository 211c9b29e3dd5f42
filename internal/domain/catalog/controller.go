package catalog

import "fmt"

// State is the mutable browsing state: the active matches and the number of
// page-sized windows already rendered.
type State struct {
	Matches  []Book
	Page     int
	Filtered bool
}

// ShowMore describes the "show more" affordance.
type ShowMore struct {
	Label     string
	Remaining int
	Disabled  bool
}

// Controller owns the State for one browsing session. It is not safe for
// concurrent use; transitions are driven by one event loop.
type Controller struct {
	dataset *Dataset
	state   State
}

// NewController creates a controller initialised with the full dataset.
func NewController(d *Dataset) *Controller {
	c := &Controller{dataset: d}
	c.Initialize()
	return c
}

// Initialize resets matches to the full dataset and page to 1.
func (c *Controller) Initialize() {
	c.state = State{
		Matches: c.dataset.Books(),
		Page:    1,
	}
}

// Dataset returns the dataset the controller browses.
func (c *Controller) Dataset() *Dataset {
	return c.dataset
}

// ApplyFilter replaces matches with the filtered dataset, restarts pagination
// and returns the first window.
func (c *Controller) ApplyFilter(criteria FilterCriteria) []Book {
	c.state = State{
		Matches:  Filter(c.dataset.Books(), criteria),
		Page:     1,
		Filtered: true,
	}
	return c.VisibleWindow()
}

// Paginate advances one page and returns only the newly visible window.
// When nothing remains the state is left untouched and ErrNoMoreResults is
// returned.
func (c *Controller) Paginate() ([]Book, error) {
	if c.Remaining() == 0 {
		return nil, newDomainError(ErrCodeInvalidPagination, "no more results to show", nil, map[string]interface{}{
			"page":    c.state.Page,
			"matches": len(c.state.Matches),
		})
	}
	size := c.dataset.PageSize()
	prev := c.state.Page
	c.state.Page++
	return window(c.state.Matches, prev*size, c.state.Page*size), nil
}

// Remaining returns the number of matches not yet rendered.
func (c *Controller) Remaining() int {
	left := len(c.state.Matches) - c.state.Page*c.dataset.PageSize()
	if left < 0 {
		return 0
	}
	return left
}

// Rendered returns the number of matches currently rendered.
func (c *Controller) Rendered() int {
	return min(c.state.Page*c.dataset.PageSize(), len(c.state.Matches))
}

// VisibleWindow returns the first page of matches, used for a fresh render.
func (c *Controller) VisibleWindow() []Book {
	return window(c.state.Matches, 0, c.dataset.PageSize())
}

// RenderedBooks returns every match rendered so far.
func (c *Controller) RenderedBooks() []Book {
	return window(c.state.Matches, 0, c.Rendered())
}

// EmptyResult reports whether an applied filter matched nothing. It is false
// before any filter has been applied.
func (c *Controller) EmptyResult() bool {
	return c.state.Filtered && len(c.state.Matches) == 0
}

// ShowMore returns the current show-more affordance.
func (c *Controller) ShowMore() ShowMore {
	remaining := c.Remaining()
	return ShowMore{
		Label:     fmt.Sprintf("Show more (%d)", remaining),
		Remaining: remaining,
		Disabled:  remaining == 0,
	}
}

// Resolve looks a book up in the full dataset, ignoring the active filter.
func (c *Controller) Resolve(id string) (Detail, error) {
	return ResolveDetail(c.dataset, id)
}

// Snapshot returns a copy of the state.
func (c *Controller) Snapshot() State {
	return State{
		Matches:  window(c.state.Matches, 0, len(c.state.Matches)),
		Page:     c.state.Page,
		Filtered: c.state.Filtered,
	}
}

// window returns books[from:to] clamped to the slice bounds. Each book is
// copied along with its genres.
func window(books []Book, from, to int) []Book {
	if from < 0 {
		from = 0
	}
	if to > len(books) {
		to = len(books)
	}
	if from >= to {
		return []Book{}
	}
	out := make([]Book, 0, to-from)
	for _, book := range books[from:to] {
		out = append(out, book.clone())
	}
	return out
}
