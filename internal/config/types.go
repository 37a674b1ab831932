/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

// Built-in defaults, used when neither a flag nor a settings file provides a value
const (
	DefaultIndexPath    = "index.html"
	DefaultProjectsRoot = "projects"
	DefaultMetadataFile = "project.json"
	DefaultStartMarker  = "<!-- PROJECT_NAV_START -->"
	DefaultEndMarker    = "<!-- PROJECT_NAV_END -->"
)

// SettingsProvider defines the interface for loading resolved tool settings
type SettingsProvider interface {
	// Load returns fully resolved settings with defaults applied
	Load() (*Settings, error)
}

// Settings represents the resolved configuration for a single navgen run
type Settings struct {
	IndexPath    string  // target document to update
	ProjectsRoot string  // directory scanned for project metadata
	MetadataFile string  // per-project metadata filename
	Markers      Markers // comment pair delimiting the owned span
}

// Markers represents the literal comment strings delimiting the navigation span
type Markers struct {
	Start string
	End   string
}

// DefaultSettings returns settings populated entirely from built-in defaults
func DefaultSettings() *Settings {
	return &Settings{
		IndexPath:    DefaultIndexPath,
		ProjectsRoot: DefaultProjectsRoot,
		MetadataFile: DefaultMetadataFile,
		Markers: Markers{
			Start: DefaultStartMarker,
			End:   DefaultEndMarker,
		},
	}
}
