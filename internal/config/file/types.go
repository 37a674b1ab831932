/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains the YAML-backed settings provider. The types here
// represent the raw navgen.yaml structure before defaults are applied.
package file

// Config represents the raw YAML settings file structure
type Config struct {
	Index        string   `yaml:"index"`
	Projects     string   `yaml:"projects"`
	MetadataFile string   `yaml:"metadata_file"`
	Markers      *Markers `yaml:"markers"`
}

// Markers represents the marker comment pair as it appears in YAML
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}
