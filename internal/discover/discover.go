/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package discover locates classified projects beneath the projects root.
// A project is any immediate sub-directory carrying a metadata file; the
// metadata supplies the display name, link target and optional description,
// with fallbacks derived from the directory itself.
package discover

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ettle/strcase"
)

// Project represents a classified project surfaced in the homepage navigation
type Project struct {
	Name        string
	URL         string
	Description string
}

// metadata mirrors the optional keys of a project.json file; unknown keys are ignored
type metadata struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Discoverer defines the interface for producing the ordered project list
type Discoverer interface {
	Discover(ctx context.Context) ([]Project, error)
}

// DirectoryDiscoverer implements Discoverer by scanning a directory tree one
// level deep for metadata files
type DirectoryDiscoverer struct {
	root         string
	metadataFile string
	verbose      bool
}

// NewDirectoryDiscoverer creates a discoverer over the given projects root
func NewDirectoryDiscoverer(root, metadataFile string) *DirectoryDiscoverer {
	return &DirectoryDiscoverer{
		root:         root,
		metadataFile: metadataFile,
	}
}

// SetVerbose enables per-directory progress output during discovery
func (d *DirectoryDiscoverer) SetVerbose(verbose bool) {
	d.verbose = verbose
}

// Discover returns all projects with metadata beneath the root, ordered by
// directory name ascending. A missing root yields an empty list; a metadata
// file that exists but does not parse fails the whole operation.
func (d *DirectoryDiscoverer) Discover(ctx context.Context) ([]Project, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read projects root %s: %w", d.root, err)
	}

	var projects []Project

	// ReadDir returns entries sorted by filename, which is the ordering
	// guarantee callers rely on for reproducible output.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metadataPath := filepath.Join(d.root, entry.Name(), d.metadataFile)
		data, err := os.ReadFile(metadataPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if d.verbose {
					fmt.Printf("→ Skipping %s (no %s)\n", entry.Name(), d.metadataFile)
				}
				continue
			}
			return nil, fmt.Errorf("failed to read metadata file %s: %w", metadataPath, err)
		}

		var meta metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", metadataPath, err)
		}

		project := Project{
			Name:        meta.Name,
			URL:         meta.URL,
			Description: meta.Description,
		}
		if project.Name == "" {
			project.Name = humanizeName(entry.Name())
		}
		if project.URL == "" {
			project.URL = relativeURL(d.root, entry.Name())
		}

		if d.verbose {
			fmt.Printf("→ Discovered %s (%s)\n", project.Name, project.URL)
		}

		projects = append(projects, project)
	}

	return projects, nil
}

// humanizeName turns a directory name like "signal-mapper" into "Signal Mapper"
func humanizeName(dirName string) string {
	return strcase.ToCase(dirName, strcase.TitleCase, ' ')
}

// relativeURL derives the link target for a project without explicit metadata:
// the directory's slash-separated path relative to the working directory, with
// a trailing slash
func relativeURL(root, dirName string) string {
	return path.Join(filepath.ToSlash(root), dirName) + "/"
}
