package tracker

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Preferences struct {
	View         string
	Follow       bool
	Sustain      bool
	Octave       int
	ScrollMargin int
	MaxUndo      int
	YmlError     error `yaml:"-"`
}

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// DefaultPreferences returns the embedded preferences, ignoring the user's
// configuration.
func DefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

func customConfigPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chiptrack", filename), nil
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	path, err := customConfigPath(filename)
	if err != nil {
		return false, err
	}
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

// MakePreferences returns the embedded preferences overridden by the user's
// preferences.yml. A malformed user file is reported in YmlError.
func MakePreferences() Preferences {
	preferences := DefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}
