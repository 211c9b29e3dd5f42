package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
	"github.com/alexisbeaulieu97/bookcatalog/internal/theme"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "Dune Messiah", want: "Dune Messiah"},
		{name: "markup stripped", input: "<b>Bold</b> <script>alert(1)</script>move", want: "Bold move"},
		{name: "entities kept readable", input: "Pride & Prejudice", want: "Pride & Prejudice"},
		{name: "newlines collapsed", input: "line one\n\n  line two", want: "line one line two"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.input))
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(theme.Day(), false)
	fields := catalog.PreviewFields{ID: "x1", Title: "Foundation", Author: "Isaac Asimov", Image: "cover.jpg"}

	out := r.Render(fields, false)
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "Isaac Asimov")
	assert.Contains(t, out, "[#]")
	assert.NotContains(t, out, "\n")

	selected := r.Render(fields, true)
	assert.Contains(t, selected, "Foundation")
	assert.NotEqual(t, out, selected)
}

func TestRenderer_RenderIsDeterministic(t *testing.T) {
	r := NewRenderer(theme.Night(), true)
	fields := catalog.PreviewFields{ID: "x1", Title: "Dune", Author: "Frank Herbert"}

	assert.Equal(t, r.Render(fields, false), r.Render(fields, false))
	assert.Contains(t, r.Render(fields, false), "□")
}

func TestRenderer_RenderDetail(t *testing.T) {
	r := NewRenderer(theme.Day(), false)
	detail := catalog.Detail{
		ID:          "x2",
		Title:       "Dune Messiah",
		AuthorName:  "Frank Herbert",
		Year:        1969,
		Image:       "https://covers.example.org/x2.jpg",
		Description: "An emperor <em>struggles</em>.",
	}

	out := r.RenderDetail(detail, 40)
	assert.Contains(t, out, "Dune Messiah")
	assert.Contains(t, out, "Frank Herbert (1969)")
	assert.Contains(t, out, "covers.example.org/x2.jpg")
	assert.Contains(t, out, "An emperor struggles.")
	assert.NotContains(t, out, "<em>")
}

func TestRenderer_WithThemeKeepsOriginal(t *testing.T) {
	day := NewRenderer(theme.Day(), false)
	night := day.WithTheme(theme.Night())

	assert.Equal(t, theme.KeyDay, day.Theme().Key)
	assert.Equal(t, theme.KeyNight, night.Theme().Key)
	assert.True(t, strings.Contains(night.Render(catalog.PreviewFields{Title: "T"}, false), "T"))
}
