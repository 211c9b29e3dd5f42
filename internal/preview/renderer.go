package preview

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips markup from dataset text and collapses whitespace so the
// result is safe to place on a single terminal line.
func Sanitize(text string) string {
	clean := html.UnescapeString(strictPolicy.Sanitize(text))
	return strings.Join(strings.Fields(clean), " ")
}

// Renderer turns preview fields and details into terminal fragments. It
// performs no lookups; everything it shows comes from its arguments.
type Renderer struct {
	theme      theme.Theme
	useUnicode bool
}

// NewRenderer creates a renderer styled with t.
func NewRenderer(t theme.Theme, useUnicode bool) *Renderer {
	return &Renderer{theme: t, useUnicode: useUnicode}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// WithTheme returns a renderer using t.
func (r *Renderer) WithTheme(t theme.Theme) *Renderer {
	clone := *r
	clone.theme = t
	return &clone
}

// Render produces the list fragment for one book.
func (r *Renderer) Render(fields catalog.PreviewFields, selected bool) string {
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		r.theme.Muted.Render(r.imageMarker(fields.Image)),
		" ",
		r.theme.Title.Render(Sanitize(fields.Title)),
		"  ",
		r.theme.Subtitle.Render(Sanitize(fields.Author)),
	)

	if selected {
		return r.theme.SelectedItem.Render(line)
	}
	return r.theme.Item.Render(line)
}

// RenderDetail produces the detail card. width bounds the description; zero
// leaves it unwrapped.
func (r *Renderer) RenderDetail(detail catalog.Detail, width int) string {
	subtitle := Sanitize(detail.AuthorName)
	if detail.Year != 0 {
		subtitle = catalog.Detail{AuthorName: subtitle, Year: detail.Year}.Subtitle()
	}

	description := r.theme.Body
	if width > 0 {
		description = description.Width(width)
	}

	lines := []string{
		r.theme.Title.Render(Sanitize(detail.Title)),
		r.theme.Subtitle.Render(subtitle),
	}
	if detail.Image != "" {
		lines = append(lines, r.theme.Muted.Render(r.imageMarker(detail.Image)+" "+Sanitize(detail.Image)))
	}
	if text := Sanitize(detail.Description); text != "" {
		lines = append(lines, "", description.Render(text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) imageMarker(image string) string {
	switch {
	case image == "" && r.useUnicode:
		return "□"
	case image == "":
		return "[ ]"
	case r.useUnicode:
		return "▣"
	default:
		return "[#]"
	}
}
