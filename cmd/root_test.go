/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lumen-pages/navgen/internal/config"
	"github.com/lumen-pages/navgen/internal/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	// Test basic command properties
	assert.Equal(t, "navgen", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	assert.Contains(t, rootCmd.Long, "Navgen rebuilds")
	assert.Contains(t, rootCmd.Long, "metadata files")
	assert.Contains(t, rootCmd.Long, "marker comments")
	assert.Contains(t, rootCmd.Long, "--dry-run")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "navgen.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	indexFlag := flags.Lookup("index")
	require.NotNil(t, indexFlag)
	assert.Equal(t, "index.html", indexFlag.DefValue)

	projectsFlag := flags.Lookup("projects")
	require.NotNil(t, projectsFlag)
	assert.Equal(t, "projects", projectsFlag.DefValue)

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	dryRunFlag := rootCmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "false", dryRunFlag.DefValue)
}

func TestRootCmd_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	assert.NoError(t, err)

	helpOutput := buf.String()
	assert.Contains(t, helpOutput, "navgen")
	assert.Contains(t, helpOutput, "Flags:")
	assert.Contains(t, helpOutput, "--index")
	assert.Contains(t, helpOutput, "--projects")
	assert.Contains(t, helpOutput, "--dry-run")

	assert.Contains(t, helpOutput, "Available Commands:")
	assert.Contains(t, helpOutput, "check")
	assert.Contains(t, helpOutput, "list")
	assert.Contains(t, helpOutput, "version")

	// Reset the persistent flag state for later tests
	require.NoError(t, rootCmd.Flags().Set("help", "false"))
	rootCmd.SetOut(nil)
}

func TestRootCmd_RunsUpdatePipeline(t *testing.T) {
	mockProvider := &config.MockSettingsProvider{}
	mockProvider.On("Load").Return(config.DefaultSettings(), nil)
	SetSettingsProvider(mockProvider)
	defer SetSettingsProvider(nil)

	mockUpdater := &update.MockUpdater{}
	mockUpdater.On("Run", mock.Anything, false).Return(nil)
	SetUpdater(mockUpdater)
	defer SetUpdater(nil)

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()

	assert.NoError(t, err)
	mockUpdater.AssertCalled(t, "Run", mock.Anything, false)
}

func TestRootCmd_DryRunFlagReachesUpdater(t *testing.T) {
	mockProvider := &config.MockSettingsProvider{}
	mockProvider.On("Load").Return(config.DefaultSettings(), nil)
	SetSettingsProvider(mockProvider)
	defer SetSettingsProvider(nil)

	mockUpdater := &update.MockUpdater{}
	mockUpdater.On("Run", mock.Anything, true).Return(nil)
	SetUpdater(mockUpdater)
	defer SetUpdater(nil)

	rootCmd.SetArgs([]string{"--dry-run"})
	err := rootCmd.Execute()

	assert.NoError(t, err)
	mockUpdater.AssertCalled(t, "Run", mock.Anything, true)

	// Reset the persistent flag state for later tests
	require.NoError(t, rootCmd.Flags().Set("dry-run", "false"))
}

func TestRootCmd_UpdateErrorPropagates(t *testing.T) {
	mockProvider := &config.MockSettingsProvider{}
	mockProvider.On("Load").Return(config.DefaultSettings(), nil)
	SetSettingsProvider(mockProvider)
	defer SetSettingsProvider(nil)

	mockUpdater := &update.MockUpdater{}
	updateErr := errors.New("could not find markers")
	mockUpdater.On("Run", mock.Anything, false).Return(updateErr)
	SetUpdater(mockUpdater)
	defer SetUpdater(nil)

	rootCmd.SetArgs([]string{})
	rootCmd.SilenceErrors = true
	defer func() { rootCmd.SilenceErrors = false }()

	err := rootCmd.Execute()
	assert.Equal(t, updateErr, err)
}

func TestRootCmd_SettingsErrorAbortsBeforeUpdate(t *testing.T) {
	mockProvider := &config.MockSettingsProvider{}
	settingsErr := errors.New("invalid YAML in navgen.yaml")
	mockProvider.On("Load").Return(nil, settingsErr)
	SetSettingsProvider(mockProvider)
	defer SetSettingsProvider(nil)

	mockUpdater := &update.MockUpdater{}
	SetUpdater(mockUpdater)
	defer SetUpdater(nil)

	rootCmd.SetArgs([]string{})
	rootCmd.SilenceErrors = true
	defer func() { rootCmd.SilenceErrors = false }()

	err := rootCmd.Execute()
	assert.Equal(t, settingsErr, err)
	mockUpdater.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestLoadSettings_FlagOverridesSettingsFile(t *testing.T) {
	fileSettings := config.DefaultSettings()
	fileSettings.IndexPath = "from-file.html"
	fileSettings.ProjectsRoot = "from-file-projects"

	mockProvider := &config.MockSettingsProvider{}
	mockProvider.On("Load").Return(fileSettings, nil)
	SetSettingsProvider(mockProvider)
	defer SetSettingsProvider(nil)

	require.NoError(t, rootCmd.PersistentFlags().Set("index", "cli.html"))

	settings, verbose, err := loadSettings(rootCmd)
	require.NoError(t, err)
	assert.False(t, verbose)
	assert.Equal(t, "cli.html", settings.IndexPath, "explicit flag wins over file")
	assert.Equal(t, "from-file-projects", settings.ProjectsRoot, "untouched flag defers to file")
}
