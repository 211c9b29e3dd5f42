package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	catalogapp "github.com/alexisbeaulieu97/bookcatalog/internal/app/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
	"github.com/alexisbeaulieu97/bookcatalog/internal/preview"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

// Options configures a browser Model.
type Options struct {
	Context    context.Context
	Dataset    *catalog.Dataset
	Theme      theme.Theme
	Logger     ports.Logger
	UseUnicode bool
}

// Model is the catalog browser model
type Model struct {
	ctx     context.Context
	service *catalogapp.Service
	logger  ports.Logger

	// Sinks shared with the service
	list   *listBuffer
	detail *detailPane
	themes *theme.Manager

	// UI state
	viewMode     ViewMode
	returnMode   ViewMode
	cursor       int
	scrollOffset int

	// Overlays
	search         searchForm
	settingsCursor int

	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	useUnicode bool
}

// NewModel creates the browser and renders the first window of the dataset.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Theme.Key == "" {
		opts.Theme = theme.Day()
	}
	logger := ports.LoggerOrDiscard(opts.Logger).With("layer", "presentation", "component", "browser")

	themes := theme.NewManager(opts.Theme)
	list := newListBuffer(preview.NewRenderer(opts.Theme, opts.UseUnicode))
	detail := &detailPane{}
	themes.Subscribe(func(t theme.Theme) {
		list.restyle(list.renderer.WithTheme(t))
	})

	svc := catalogapp.NewService(opts.Dataset, list, detail, opts.Logger)

	m := Model{
		ctx:        ctx,
		service:    svc,
		logger:     logger,
		list:       list,
		detail:     detail,
		themes:     themes,
		viewMode:   ViewList,
		search:     newSearchForm(svc.GenreOptions(), svc.AuthorOptions()),
		width:      80,
		height:     24,
		useUnicode: opts.UseUnicode,
	}

	svc.Start(ctx)
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.themes.Theme()
}

// ViewMode returns the active screen.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Cursor returns the highlighted row. A value equal to the number of rendered
// items denotes the show-more button.
func (m Model) Cursor() int {
	return m.cursor
}

// Service exposes the catalog service driving the list.
func (m Model) Service() *catalogapp.Service {
	return m.service
}

// maxCursor is the last selectable row, the show-more button included when
// it is enabled.
func (m Model) maxCursor() int {
	last := m.list.Len() - 1
	if !m.list.showMore.Disabled {
		last++
	}
	if last < 0 {
		return 0
	}
	return last
}

func (m Model) onShowMore() bool {
	return !m.list.showMore.Disabled && m.cursor == m.list.Len()
}

func (m *Model) MoveCursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.ensureVisible()
}

func (m *Model) MoveCursorDown() {
	if m.cursor < m.maxCursor() {
		m.cursor++
	}
	m.ensureVisible()
}

// resetScroll moves the viewport and cursor back to the top.
func (m *Model) resetScroll() {
	m.cursor = 0
	m.scrollOffset = 0
}

func (m *Model) clampCursor() {
	if m.cursor > m.maxCursor() {
		m.cursor = m.maxCursor()
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

func (m Model) visibleRows() int {
	rows := m.height - reservedRows
	if rows < 1 {
		return 1
	}
	return rows
}
