/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/lumen-pages/navgen/internal/config"
	"github.com/lumen-pages/navgen/internal/config/file"
	"github.com/spf13/cobra"
)

var (
	// settingsProvider can be injected for testing
	settingsProvider config.SettingsProvider
)

// SetSettingsProvider allows injection of a settings provider (for testing)
func SetSettingsProvider(p config.SettingsProvider) {
	settingsProvider = p
}

// loadSettings resolves the run settings with flag > file > default precedence
func loadSettings(cmd *cobra.Command) (*config.Settings, bool, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	provider := settingsProvider
	if provider == nil {
		configFile, _ := cmd.Flags().GetString("config")
		provider = file.NewProvider(configFile)
	}

	settings, err := provider.Load()
	if err != nil {
		return nil, false, err
	}

	// Explicitly set flags win over the settings file
	if cmd.Flags().Changed("index") {
		settings.IndexPath, _ = cmd.Flags().GetString("index")
	}
	if cmd.Flags().Changed("projects") {
		settings.ProjectsRoot, _ = cmd.Flags().GetString("projects")
	}

	return settings, verbose, nil
}
