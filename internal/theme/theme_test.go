package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBackground(t *testing.T, dark bool) {
	t.Helper()
	prev := hasDarkBackground
	hasDarkBackground = func() bool { return dark }
	t.Cleanup(func() { hasDarkBackground = prev })
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		key  string
		dark bool
		want Key
	}{
		{name: "explicit day on dark terminal", key: "day", dark: true, want: KeyDay},
		{name: "explicit night on light terminal", key: "night", dark: false, want: KeyNight},
		{name: "auto on dark terminal", key: "auto", dark: true, want: KeyNight},
		{name: "auto on light terminal", key: "auto", dark: false, want: KeyDay},
		{name: "empty behaves like auto", key: "", dark: true, want: KeyNight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withBackground(t, tc.dark)
			got, err := Resolve(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Key)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
}

func TestToggle(t *testing.T) {
	assert.Equal(t, KeyNight, Toggle(Day()).Key)
	assert.Equal(t, KeyDay, Toggle(Night()).Key)
}

func TestThemesDiffer(t *testing.T) {
	day, night := Day(), Night()
	assert.NotEqual(t, day.Palette.Primary, night.Palette.Primary)
	assert.NotEqual(t, day.Palette.Text, night.Palette.Text)
}

func TestManager_SetNotifiesOnChangeOnly(t *testing.T) {
	m := NewManager(Day())

	var seen []Key
	m.Subscribe(func(th Theme) { seen = append(seen, th.Key) })

	m.Set(Day())
	assert.Empty(t, seen)

	m.Set(Night())
	assert.Equal(t, []Key{KeyNight}, seen)
	assert.Equal(t, KeyNight, m.Theme().Key)

	m.Set(Toggle(m.Theme()))
	assert.Equal(t, []Key{KeyNight, KeyDay}, seen)
}
