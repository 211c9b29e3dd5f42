package browser

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookcatalog/internal/domain/catalog"
)

type searchField int

const (
	fieldTitle searchField = iota
	fieldGenre
	fieldAuthor
	fieldCount
)

// selector cycles through a fixed option list.
type selector struct {
	label   string
	options []catalog.Option
	index   int
}

func (s *selector) next() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

func (s *selector) prev() {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

func (s selector) selected() catalog.Option {
	if len(s.options) == 0 {
		return catalog.Option{ID: catalog.Any}
	}
	return s.options[s.index]
}

// searchForm is the search overlay: a title field and two selectors.
type searchForm struct {
	title  textinput.Model
	genre  selector
	author selector
	focus  searchField
}

func newSearchForm(genres, authors []catalog.Option) searchForm {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 120

	return searchForm{
		title:  ti,
		genre:  selector{label: "Genre", options: genres},
		author: selector{label: "Author", options: authors},
	}
}

// open focuses the title field.
func (f *searchForm) open() tea.Cmd {
	f.focus = fieldTitle
	return f.title.Focus()
}

func (f *searchForm) close() {
	f.title.Blur()
}

func (f *searchForm) cycleFocus(delta int) tea.Cmd {
	f.focus = searchField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	if f.focus == fieldTitle {
		return f.title.Focus()
	}
	f.title.Blur()
	return nil
}

func (f searchForm) criteria() catalog.FilterCriteria {
	return catalog.FilterCriteria{
		Title:  f.title.Value(),
		Genre:  f.genre.selected().ID,
		Author: f.author.selected().ID,
	}
}

// update routes a key to the focused field.
func (f *searchForm) update(msg tea.KeyMsg) tea.Cmd {
	switch f.focus {
	case fieldGenre:
		f.step(&f.genre, msg)
		return nil
	case fieldAuthor:
		f.step(&f.author, msg)
		return nil
	}

	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	return cmd
}

func (f *searchForm) step(s *selector, msg tea.KeyMsg) {
	switch msg.String() {
	case "right", "l", " ":
		s.next()
	case "left", "h":
		s.prev()
	}
}
