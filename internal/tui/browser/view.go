package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.viewMode {
	case ViewSearch:
		return m.renderSearchView()
	case ViewSettings:
		return m.renderSettingsView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderListView()
	}
}

func (m Model) renderListView() string {
	t := m.themes.Theme()

	var content strings.Builder
	content.WriteString(m.renderHeader(t))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle(t).Render(m.errorMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderBookList(t))
	content.WriteString("\n")
	content.WriteString(m.renderShowMore(t))
	content.WriteString("\n")
	content.WriteString(m.renderFooter(t))

	return content.String()
}

func (m Model) renderHeader(t theme.Theme) string {
	title := t.Title.Render("Book Catalog")

	state := m.service.State()
	summary := fmt.Sprintf("Showing %d of %d", m.list.Len(), len(state.Matches))
	if state.Filtered {
		summary += fmt.Sprintf(" matches (%d books)", m.service.Dataset().Len())
	} else {
		summary += " books"
	}

	return headerStyle(t).Render(lipgloss.JoinVertical(lipgloss.Left, title, t.Muted.Render(summary)))
}

func (m Model) renderBookList(t theme.Theme) string {
	if m.list.empty {
		return emptyStateStyle(t).Render(emptyStateMessage)
	}
	if m.list.Len() == 0 {
		return ""
	}

	rows := m.visibleRows()
	start := m.scrollOffset
	if start > m.list.Len() {
		start = m.list.Len()
	}
	end := start + rows
	if end > m.list.Len() {
		end = m.list.Len()
	}

	items := make([]string, 0, end-start+2)
	if start > 0 {
		items = append(items, t.Muted.Render(m.glyph("▲", "^")+" More above"))
	}
	for i := start; i < end; i++ {
		items = append(items, m.list.fragment(i, i == m.cursor))
	}
	if end < m.list.Len() {
		items = append(items, t.Muted.Render(m.glyph("▼", "v")+" More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m Model) renderShowMore(t theme.Theme) string {
	state := m.list.showMore
	label := state.Label
	if label == "" {
		label = fmt.Sprintf("Show more (%d)", state.Remaining)
	}

	switch {
	case state.Disabled:
		return "  " + t.ButtonDisabled.Render(label)
	case m.onShowMore():
		return m.glyph("›", ">") + " " + t.Button.Bold(true).Underline(true).Render(label)
	default:
		return "  " + t.Button.Render(label)
	}
}

func (m Model) renderFooter(t theme.Theme) string {
	hints := []string{
		"↑/↓ move",
		"enter open",
		"m more",
		"/ search",
		"t theme",
		"? help",
		"q quit",
	}
	if !m.useUnicode {
		hints[0] = "j/k move"
	}
	return t.Footer.Render(strings.Join(hints, "  "))
}

func (m Model) renderSearchView() string {
	t := m.themes.Theme()

	titleStyle := t.Input
	if m.search.focus == fieldTitle {
		titleStyle = t.InputFocus
	}

	lines := []string{
		t.Title.Render("Search"),
		"",
		t.Muted.Render("Title"),
		titleStyle.Render(m.search.title.View()),
		m.renderSelector(t, m.search.genre, m.search.focus == fieldGenre),
		m.renderSelector(t, m.search.author, m.search.focus == fieldAuthor),
		"",
		t.Muted.Render("tab next field  ←/→ change  enter search  esc cancel"),
	}

	return overlayStyle(t, m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderSelector(t theme.Theme, s selector, focused bool) string {
	value := s.selected().Label
	if value == "" {
		value = s.selected().ID
	}
	field := fmt.Sprintf("%s %s %s", m.glyph("‹", "<"), value, m.glyph("›", ">"))

	style := t.Input
	if focused {
		style = t.InputFocus
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.Muted.Render(s.label), style.Render(field))
}

func (m Model) renderSettingsView() string {
	t := m.themes.Theme()

	lines := []string{t.Title.Render("Settings"), "", t.Muted.Render("Theme")}
	for i, key := range themeChoices {
		marker := "  "
		if i == m.settingsCursor {
			marker = m.glyph("›", ">") + " "
		}
		label := strings.ToUpper(string(key[:1])) + string(key[1:])
		if key == t.Key {
			label += " (active)"
		}
		if i == m.settingsCursor {
			label = t.Title.Render(label)
		}
		lines = append(lines, marker+label)
	}
	lines = append(lines, "", t.Muted.Render("enter apply  esc cancel"))

	return overlayStyle(t, m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderDetailView() string {
	t := m.themes.Theme()
	width := m.width - 10
	if width < 20 {
		width = 0
	}

	card := m.list.renderer.RenderDetail(m.detail.detail, width)
	return overlayStyle(t, m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		card,
		"",
		t.Muted.Render("esc close"),
	))
}

func (m Model) renderHelpView() string {
	t := m.themes.Theme()

	rows := [][2]string{
		{"↑/k ↓/j", "move the cursor"},
		{"enter", "open the highlighted book or show more"},
		{"m", "show more results"},
		{"/ or s", "open search"},
		{"t", "open settings"},
		{"g / G", "jump to top / bottom"},
		{"esc", "close overlay or dismiss error"},
		{"q", "quit"},
	}

	lines := []string{t.Title.Render("Help"), ""}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %s", row[0], t.Muted.Render(row[1])))
	}
	return overlayStyle(t, m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) glyph(unicode, ascii string) string {
	if m.useUnicode {
		return unicode
	}
	return ascii
}
