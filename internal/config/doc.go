// Package config provides configuration management for albumpath.
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
//	// Template "{Date %Y}/{LrCC:path|Unsorted}"
//	// Default upload root "photos"
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.PathTemplate = "{Date %Y/%m}/{LrFM:creator|?}"
//	err := settings.Save("/path/to/config.json")
package config
