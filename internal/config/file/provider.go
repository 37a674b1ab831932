/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"fmt"
	"os"

	"github.com/lumen-pages/navgen/internal/config"
	"gopkg.in/yaml.v3"
)

// Provider implements config.SettingsProvider by reading from a YAML file.
// A missing file is not an error: the built-in defaults apply.
type Provider struct {
	filename string
}

// NewProvider creates a new file-based SettingsProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// Load reads the settings file, if present, and resolves it against defaults
func (fp *Provider) Load() (*config.Settings, error) {
	settings := config.DefaultSettings()

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", fp.filename, err)
	}

	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", fp.filename, err)
	}

	// File values override defaults only when set
	if raw.Index != "" {
		settings.IndexPath = raw.Index
	}
	if raw.Projects != "" {
		settings.ProjectsRoot = raw.Projects
	}
	if raw.MetadataFile != "" {
		settings.MetadataFile = raw.MetadataFile
	}
	if raw.Markers != nil {
		if raw.Markers.Start != "" {
			settings.Markers.Start = raw.Markers.Start
		}
		if raw.Markers.End != "" {
			settings.Markers.End = raw.Markers.End
		}
	}

	return settings, nil
}
