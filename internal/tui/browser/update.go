package browser

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

var themeChoices = []theme.Key{theme.KeyDay, theme.KeyNight}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case SearchSubmittedMsg:
		m.submitSearch(msg.Criteria)
		return m, nil

	case ShowMoreMsg:
		m.showMore()
		return m, nil

	case BookSelectedMsg:
		m.selectBook(msg.ID)
		return m, nil

	case ThemeSelectedMsg:
		m.applyTheme(msg.Key)
		return m, nil

	case BackToListMsg:
		m.closeOverlay()
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewSearch:
		return m.handleSearchKeys(msg)
	case ViewSettings:
		return m.handleSettingsKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	case "home", "g":
		m.resetScroll()
		return m, nil

	case "end", "G":
		m.cursor = m.maxCursor()
		m.ensureVisible()
		return m, nil

	case "enter", " ":
		if m.onShowMore() {
			m.showMore()
			return m, nil
		}
		if item, ok := m.list.item(m.cursor); ok {
			m.selectBook(item.Fields.ID)
		}
		return m, nil

	case "m":
		m.showMore()
		return m, nil

	case "/", "s":
		m.viewMode = ViewSearch
		return m, m.search.open()

	case "t":
		m.viewMode = ViewSettings
		m.settingsCursor = 0
		if m.themes.Theme().Key == theme.KeyNight {
			m.settingsCursor = 1
		}
		return m, nil

	case "?":
		m.returnMode = ViewList
		m.viewMode = ViewHelp
		return m, nil

	case "x", "esc":
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		return m, nil
	case "enter":
		m.submitSearch(m.search.criteria())
		return m, nil
	case "tab", "down":
		return m, m.search.cycleFocus(1)
	case "shift+tab", "up":
		return m, m.search.cycleFocus(-1)
	}

	return m, m.search.update(msg)
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeOverlay()
	case "up", "k", "left", "h":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down", "j", "right", "l":
		if m.settingsCursor < len(themeChoices)-1 {
			m.settingsCursor++
		}
	case "enter", " ":
		m.applyTheme(string(themeChoices[m.settingsCursor]))
		m.closeOverlay()
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "enter", "q":
		m.closeOverlay()
	case "?":
		m.returnMode = ViewDetail
		m.viewMode = ViewHelp
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = m.returnMode
	}
	return m, nil
}

// submitSearch applies criteria, closes the search overlay and scrolls the
// list back to the top.
func (m *Model) submitSearch(criteria catalog.FilterCriteria) {
	m.service.Search(m.ctx, criteria)
	m.search.close()
	m.viewMode = ViewList
	m.resetScroll()
}

func (m *Model) showMore() {
	if err := m.service.ShowMore(m.ctx); err != nil && !errors.Is(err, catalog.ErrNoMoreResults) {
		m.showError = true
		m.errorMsg = err.Error()
	}
	m.clampCursor()
}

// selectBook opens the detail overlay. A failed lookup leaves the list as it
// was and shows the error banner.
func (m *Model) selectBook(id string) {
	if _, err := m.service.Select(m.ctx, id); err != nil {
		m.showError = true
		if errors.Is(err, catalog.ErrNotFound) {
			m.errorMsg = "Book not found: " + id
		} else {
			m.errorMsg = err.Error()
		}
		return
	}
	m.viewMode = ViewDetail
}

func (m *Model) applyTheme(key string) {
	next, err := theme.Resolve(key)
	if err != nil {
		m.showError = true
		m.errorMsg = err.Error()
		return
	}
	m.themes.Set(next)
	m.logger.Debug(m.ctx, "theme changed", "theme", string(next.Key))
}

func (m *Model) closeOverlay() {
	if m.viewMode == ViewSearch {
		m.search.close()
	}
	m.detail.hide()
	m.viewMode = ViewList
}
