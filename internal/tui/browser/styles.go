package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

// reservedRows is the height taken by header, show-more button and footer.
const reservedRows = 9

const emptyStateMessage = "No results found. Your filters might be too narrow."

func headerStyle(t theme.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Palette.Border).
		MarginBottom(1)
}

func errorBannerStyle(t theme.Theme) lipgloss.Style {
	return t.Error.
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(t.Palette.Danger).
		PaddingLeft(1)
}

func emptyStateStyle(t theme.Theme) lipgloss.Style {
	return t.Muted.
		Italic(true).
		PaddingLeft(2).
		MarginTop(1)
}

func overlayStyle(t theme.Theme, width int) lipgloss.Style {
	style := t.Overlay
	if width > 8 {
		style = style.Width(width - 4)
	}
	return style
}
