package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	catalogerrors "github.com/alexisbeaulieu97/bookcatalog/pkg/errors"
)

// Theme preference values.
const (
	ThemeAuto  = "auto"
	ThemeDay   = "day"
	ThemeNight = "night"
)

// Settings holds optional startup preferences. They are read once and never
// written back.
type Settings struct {
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=auto day night"`
	PageSize int    `yaml:"page_size,omitempty" validate:"omitempty,gt=0"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Dataset  string `yaml:"dataset,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeAuto, LogLevel: "info"}
}

// DefaultSettingsPath returns ~/.bookcatalog/settings.yaml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bookcatalog", "settings.yaml"), nil
}

// LoadSettings reads settings from path. A missing file yields the defaults.
// Values absent from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, catalogerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), catalogerrors.NewParseError(path, extractLine(err), err)
	}
	if err := ValidateSettings(&settings); err != nil {
		return DefaultSettings(), err
	}

	if settings.Dataset != "" && !filepath.IsAbs(settings.Dataset) {
		settings.Dataset = filepath.Join(filepath.Dir(path), settings.Dataset)
	}
	return settings, nil
}
