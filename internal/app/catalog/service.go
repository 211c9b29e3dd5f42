package catalog

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
)

// Service drives a catalog browsing session and pushes the results to the
// presentation sinks.
type Service struct {
	controller *catalog.Controller
	list       ports.ListSink
	detail     ports.DetailSink
	logger     ports.Logger
}

// NewService constructs a Service over dataset. The sinks may be nil for
// headless callers that only read state.
func NewService(dataset *catalog.Dataset, list ports.ListSink, detail ports.DetailSink, logger ports.Logger) *Service {
	return &Service{
		controller: catalog.NewController(dataset),
		list:       list,
		detail:     detail,
		logger:     ports.LoggerOrDiscard(logger).With("layer", "application", "component", "catalog_service"),
	}
}

// Start resets the session to the unfiltered dataset and renders the first
// window.
func (s *Service) Start(ctx context.Context) {
	s.controller.Initialize()
	items := s.items(ctx, s.controller.VisibleWindow())

	if s.list != nil {
		s.list.Replace(items)
		s.list.ShowEmptyState(false)
		s.list.UpdateShowMore(s.controller.ShowMore())
	}

	s.logger.Info(ctx, "catalog initialised",
		"books", s.controller.Dataset().Len(),
		"page_size", s.controller.Dataset().PageSize(),
		"rendered", len(items),
	)
}

// Search applies criteria, replaces the rendered list with the first window
// of matches and toggles the empty state.
func (s *Service) Search(ctx context.Context, criteria catalog.FilterCriteria) {
	first := s.controller.ApplyFilter(criteria)
	items := s.items(ctx, first)
	empty := s.controller.EmptyResult()

	if s.list != nil {
		s.list.Replace(items)
		s.list.ShowEmptyState(empty)
		s.list.UpdateShowMore(s.controller.ShowMore())
	}

	s.logger.Debug(ctx, "filter applied",
		"title", criteria.Title,
		"author", criteria.Author,
		"genre", criteria.Genre,
		"matches", len(s.controller.Snapshot().Matches),
	)
}

// ShowMore appends the next window. When nothing remains it does nothing and
// returns an error matching catalog.ErrNoMoreResults.
func (s *Service) ShowMore(ctx context.Context) error {
	next, err := s.controller.Paginate()
	if err != nil {
		if errors.Is(err, catalog.ErrNoMoreResults) {
			s.logger.Debug(ctx, "show more ignored, nothing remaining")
		}
		return err
	}

	items := s.items(ctx, next)
	if s.list != nil {
		s.list.Append(items)
		s.list.UpdateShowMore(s.controller.ShowMore())
	}

	s.logger.Debug(ctx, "page appended",
		"page", s.controller.Snapshot().Page,
		"appended", len(items),
		"remaining", s.controller.Remaining(),
	)
	return nil
}

// Select resolves id against the full dataset and forwards the detail to the
// detail sink. On failure the sink is not called.
func (s *Service) Select(ctx context.Context, id string) (catalog.Detail, error) {
	detail, err := s.controller.Resolve(id)
	if err != nil {
		s.logger.Warn(ctx, "book could not be resolved", "book_id", id, "error", err)
		return catalog.Detail{}, err
	}

	if s.detail != nil {
		s.detail.ShowDetail(detail)
	}
	return detail, nil
}

// GenreOptions returns the genre selector options.
func (s *Service) GenreOptions() []catalog.Option {
	return catalog.GenreOptions(s.controller.Dataset())
}

// AuthorOptions returns the author selector options.
func (s *Service) AuthorOptions() []catalog.Option {
	return catalog.AuthorOptions(s.controller.Dataset())
}

// ShowMoreState returns the current show-more affordance.
func (s *Service) ShowMoreState() catalog.ShowMore {
	return s.controller.ShowMore()
}

// State returns a copy of the browsing state.
func (s *Service) State() catalog.State {
	return s.controller.Snapshot()
}

// EmptyResult reports whether the last filter matched nothing.
func (s *Service) EmptyResult() bool {
	return s.controller.EmptyResult()
}

// Rendered returns the list items for every match rendered so far.
func (s *Service) Rendered(ctx context.Context) []ports.ListItem {
	return s.items(ctx, s.controller.RenderedBooks())
}

// Dataset returns the browsed dataset.
func (s *Service) Dataset() *catalog.Dataset {
	return s.controller.Dataset()
}

// items derives preview fields for books. Books that cannot be previewed are
// skipped but still count toward pagination.
func (s *Service) items(ctx context.Context, books []catalog.Book) []ports.ListItem {
	out := make([]ports.ListItem, 0, len(books))
	for _, book := range books {
		fields, err := catalog.Preview(s.controller.Dataset(), book)
		if err != nil {
			s.logger.Warn(ctx, "skipping book without preview", "book_id", book.ID, "error", err)
			continue
		}
		out = append(out, ports.ListItem{Book: book, Fields: fields})
	}
	return out
}
