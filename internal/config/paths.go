package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the deckctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/deckctl; on macOS
// to ~/Library/Application Support/deckctl; and on Windows to %AppData%/deckctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "deckctl"), nil
}

// PrefsPath is the preference file shared by every presenter.
func PrefsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

// DefaultFile is the config file looked up when --config is not given.
func DefaultFile() string {
	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, LocalFile)
}

// LocalFile is the project-local config file name.
const LocalFile = "deckctl.yaml"
