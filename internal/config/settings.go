package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/fiio"
)

// Settings holds all configuration options.
type Settings struct {
	// AutoEq data source
	IndexURL   string `json:"index_url"`
	BaseRawURL string `json:"base_raw_url"`

	// Local cache for the profile index
	CacheDir string `json:"cache_dir"`

	// Output
	OutputDir            string `json:"output_dir"`
	OutputFileNameFormat string `json:"output_file_name_format"`

	// Conversion
	DSPModel     string `json:"dsp_model"`
	SuppressGain bool   `json:"suppress_gain"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		IndexURL:   "https://raw.githubusercontent.com/jaakkopasanen/AutoEq/master/results/INDEX.md",
		BaseRawURL: "https://raw.githubusercontent.com/jaakkopasanen/AutoEq/master/results/",

		CacheDir: filepath.Join(homeDir, ".cache", "autoeq-fiio"),

		OutputDir:            ".",
		OutputFileNameFormat: "{profile}_{model}",

		DSPModel:     fiio.DefaultDSPModel,
		SuppressGain: false,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so first runs
// work without any configuration.
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
