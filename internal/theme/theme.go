package theme

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Key identifies a theme.
type Key string

const (
	KeyDay   Key = "day"
	KeyNight Key = "night"
	// KeyAuto selects day or night from the terminal background.
	KeyAuto Key = "auto"
)

// Palette describes the semantic colour slots used by the views.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Danger  lipgloss.Color
}

// Theme is a palette together with the styles derived from it.
type Theme struct {
	Key     Key
	Palette Palette

	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Body           lipgloss.Style
	Muted          lipgloss.Style
	Item           lipgloss.Style
	SelectedItem   lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Overlay        lipgloss.Style
	Input          lipgloss.Style
	InputFocus     lipgloss.Style
	Error          lipgloss.Style
	Footer         lipgloss.Style
}

// Day returns the light theme.
func Day() Theme {
	return build(KeyDay, Palette{
		Primary: lipgloss.Color("#2563eb"),
		Accent:  lipgloss.Color("#a21caf"),
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#64748b"),
		Surface: lipgloss.Color("#f8fafc"),
		Border:  lipgloss.Color("#cbd5e1"),
		Danger:  lipgloss.Color("#dc2626"),
	})
}

// Night returns the dark theme.
func Night() Theme {
	return build(KeyNight, Palette{
		Primary: lipgloss.Color("#60a5fa"),
		Accent:  lipgloss.Color("#f472b6"),
		Text:    lipgloss.Color("#f1f5f9"),
		Muted:   lipgloss.Color("#94a3b8"),
		Surface: lipgloss.Color("#0f172a"),
		Border:  lipgloss.Color("#334155"),
		Danger:  lipgloss.Color("#f87171"),
	})
}

func build(key Key, p Palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.Text)

	return Theme{
		Key:      key,
		Palette:  p,
		Title:    base.Bold(true).Foreground(p.Primary),
		Subtitle: base.Foreground(p.Muted).Italic(true),
		Body:     base,
		Muted:    base.Foreground(p.Muted),
		Item: lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2),
		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(2).
			Foreground(p.Accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary),
		Button: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Primary).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Border).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(p.Danger).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			MarginTop(1),
	}
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// Detect returns the theme matching the terminal background.
func Detect() Theme {
	if hasDarkBackground() {
		return Night()
	}
	return Day()
}

// Resolve returns the theme for key. An empty key behaves like KeyAuto.
func Resolve(key string) (Theme, error) {
	switch Key(key) {
	case KeyDay:
		return Day(), nil
	case KeyNight:
		return Night(), nil
	case KeyAuto, "":
		return Detect(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (expected day, night or auto)", key)
	}
}

// Toggle returns the opposite of t.
func Toggle(t Theme) Theme {
	if t.Key == KeyNight {
		return Day()
	}
	return Night()
}

// Manager coordinates access to the active Theme and notifies subscribers
// when it changes.
type Manager struct {
	mu          sync.RWMutex
	theme       Theme
	subscribers []func(Theme)
}

// NewManager allocates a Manager with the provided theme.
func NewManager(t Theme) *Manager {
	return &Manager{theme: t}
}

// Theme returns the active theme.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Set replaces the active theme and calls every subscriber with it. Setting
// the theme that is already active does nothing.
func (m *Manager) Set(t Theme) {
	m.mu.Lock()
	if m.theme.Key == t.Key {
		m.mu.Unlock()
		return
	}
	m.theme = t
	subs := make([]func(Theme), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}

// Subscribe registers fn to be called after each theme change.
func (m *Manager) Subscribe(fn func(Theme)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}
