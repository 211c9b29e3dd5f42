package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_InitialState(t *testing.T) {
	ds := generatedDataset(t, 25, 20)
	c := NewController(ds)

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.False(t, snap.Filtered)
	assert.Len(t, snap.Matches, 25)
	assert.Len(t, c.VisibleWindow(), 20)
	assert.False(t, c.EmptyResult())
}

func TestController_ShowMoreScenario(t *testing.T) {
	ds := generatedDataset(t, 25, 20)
	c := NewController(ds)

	assert.Equal(t, 20, c.Rendered())
	assert.Equal(t, ShowMore{Label: "Show more (5)", Remaining: 5, Disabled: false}, c.ShowMore())

	appended, err := c.Paginate()
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-20", "gen-21", "gen-22", "gen-23", "gen-24"}, ids(appended))
	assert.Equal(t, 25, c.Rendered())
	assert.Equal(t, ShowMore{Label: "Show more (0)", Remaining: 0, Disabled: true}, c.ShowMore())
}

func TestController_PaginateWhenExhaustedIsNoOp(t *testing.T) {
	ds := generatedDataset(t, 3, 20)
	c := NewController(ds)
	before := c.Snapshot()

	appended, err := c.Paginate()

	assert.Nil(t, appended)
	assert.True(t, errors.Is(err, ErrNoMoreResults))
	assert.Equal(t, before, c.Snapshot())
	assert.Equal(t, 3, c.Rendered())
}

func TestController_RemainingMonotonic(t *testing.T) {
	ds := generatedDataset(t, 47, 10)
	c := NewController(ds)

	prev := c.Remaining()
	for i := 0; i < 10; i++ {
		_, _ = c.Paginate()
		cur := c.Remaining()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 5, c.Snapshot().Page)
}

func TestController_ApplyFilterResetsPage(t *testing.T) {
	ds := generatedDataset(t, 30, 10)
	c := NewController(ds)
	_, err := c.Paginate()
	require.NoError(t, err)
	require.Equal(t, 2, c.Snapshot().Page)

	window := c.ApplyFilter(FilterCriteria{Title: "volume 1", Author: Any, Genre: Any})

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.True(t, snap.Filtered)
	// Volume 1 and Volume 10 through 19.
	assert.Len(t, snap.Matches, 11)
	assert.Len(t, window, 10)
	assert.Equal(t, 1, c.Remaining())
}

func TestController_FilterSingleMatch(t *testing.T) {
	authors, genres := testMappings()
	ds, err := NewDataset([]Book{
		{ID: "x1", Title: "Foundation", Author: "a-leguin", Genres: []string{"g-scifi"}},
		{ID: "x2", Title: "Dune Messiah", Author: "a-herbert", Genres: []string{"g-scifi"}},
	}, authors, genres, 20)
	require.NoError(t, err)
	c := NewController(ds)

	window := c.ApplyFilter(FilterCriteria{Title: "dune", Author: Any, Genre: Any})

	assert.Equal(t, []string{"x2"}, ids(window))
	assert.False(t, c.EmptyResult())
}

func TestController_EmptyResult(t *testing.T) {
	c := NewController(newTestDataset(t, 2))

	window := c.ApplyFilter(FilterCriteria{Title: "nothing like this", Author: Any, Genre: Any})

	assert.Empty(t, window)
	assert.True(t, c.EmptyResult())
	assert.Equal(t, ShowMore{Label: "Show more (0)", Remaining: 0, Disabled: true}, c.ShowMore())
	assert.Len(t, c.Snapshot().Matches, 0)
}

func TestController_FilterMatchingEverythingIsNotUnfiltered(t *testing.T) {
	c := NewController(newTestDataset(t, 2))

	c.ApplyFilter(DefaultCriteria())

	assert.True(t, c.Snapshot().Filtered)
	assert.False(t, c.EmptyResult())
	assert.Len(t, c.Snapshot().Matches, 5)
}

func TestController_ResolveIgnoresActiveFilter(t *testing.T) {
	c := NewController(newTestDataset(t, 2))
	c.ApplyFilter(FilterCriteria{Author: "a-austen", Genre: Any})

	detail, err := c.Resolve("b1")

	require.NoError(t, err)
	assert.Equal(t, "Dune", detail.Title)
}

func TestController_RenderedBooks(t *testing.T) {
	c := NewController(generatedDataset(t, 7, 3))
	_, err := c.Paginate()
	require.NoError(t, err)

	assert.Equal(t, []string{"gen-00", "gen-01", "gen-02", "gen-03", "gen-04", "gen-05"}, ids(c.RenderedBooks()))
}

func TestNewDataset_Validation(t *testing.T) {
	authors, genres := testMappings()

	_, err := NewDataset(testBooks(), authors, genres, 0)
	assert.True(t, errors.Is(err, ErrInvalidDataset))

	dup := append(testBooks(), Book{ID: "b1", Title: "Again"})
	_, err = NewDataset(dup, authors, genres, 5)
	assert.True(t, errors.Is(err, ErrInvalidDataset))
	assert.Contains(t, err.Error(), "duplicate book id")
}

func TestDataset_Integrity(t *testing.T) {
	authors, genres := testMappings()
	ds, err := NewDataset([]Book{
		{ID: "ok", Title: "Fine", Author: "a-herbert", Genres: []string{"g-scifi"}},
		{ID: "bad", Title: "Broken", Author: "a-ghost", Genres: []string{"g-unknown"}},
	}, authors, genres, 5)
	require.NoError(t, err)

	problems := ds.Integrity()

	require.Len(t, problems, 2)
	for _, p := range problems {
		assert.True(t, errors.Is(p, ErrDataIntegrity))
	}
}

func TestDataset_WithPageSize(t *testing.T) {
	ds := generatedDataset(t, 7, 3)

	resized, err := ds.WithPageSize(5)
	require.NoError(t, err)
	assert.Equal(t, 5, resized.PageSize())
	assert.Equal(t, 3, ds.PageSize())
	assert.Equal(t, ds.Len(), resized.Len())

	_, err = ds.WithPageSize(0)
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestController_ResultsDoNotAliasDataset(t *testing.T) {
	ds := generatedDataset(t, 3, 2)
	c := NewController(ds)

	c.VisibleWindow()[0].Genres[0] = "g-mutated"
	c.Snapshot().Matches[1].Genres[0] = "g-mutated"
	appended, err := c.Paginate()
	require.NoError(t, err)
	appended[0].Genres[0] = "g-mutated"
	c.RenderedBooks()[0].Genres = append(c.RenderedBooks()[0].Genres, "g-extra")
	book, ok := ds.Book("gen-00")
	require.True(t, ok)
	book.Genres[0] = "g-mutated"

	for _, b := range ds.Books() {
		assert.Equal(t, []string{"g-scifi"}, b.Genres, b.ID)
	}
	assert.True(t, c.Snapshot().Matches[0].HasGenre("g-scifi"))
}
