package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Path resolution
	PathTemplate      string `json:"path_template"`
	DefaultUploadRoot string `json:"default_upload_root"`

	// Keywords applied to every published item
	Keywords      []string `json:"keywords"`
	ApplyKeywords bool     `json:"apply_keywords"`

	// Planning
	MaxConcurrentResolves int  `json:"max_concurrent_resolves"`
	ReadFileDates         bool `json:"read_file_dates"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		PathTemplate:          "{Date %Y}/{LrCC:path|Unsorted}",
		DefaultUploadRoot:     "photos",
		Keywords:              nil,
		ApplyKeywords:         false,
		MaxConcurrentResolves: 4,
		ReadFileDates:         true,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
