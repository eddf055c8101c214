// Package config provides configuration management for the converter.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Index fetched from the AutoEq results repository
//	// Index cached under ~/.cache/autoeq-fiio
//	// Presets written to the working directory as {profile}_{model}.xml
//	// Target DSP model "FIIO KA17"
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if the file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - AutoEq index and raw-content URLs
//   - Cache directory
//   - Output directory and file-name template
//   - Target DSP model and preamp-gain suppression
package config
