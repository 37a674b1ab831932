/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package update orchestrates the homepage pipeline: discover projects,
// render the navigation fragment, splice it into the index document and
// write the result back. The document is fully computed in memory before
// the single write at the end, so a failed run never leaves a partial file.
package update

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lumen-pages/navgen/internal/config"
	"github.com/lumen-pages/navgen/internal/discover"
	"github.com/lumen-pages/navgen/internal/render"
	"github.com/lumen-pages/navgen/internal/splice"
)

// Updater defines the interface for homepage update operations
type Updater interface {
	// Run regenerates the navigation span of the index document, or prints
	// the fragment to output when dryRun is set
	Run(ctx context.Context, dryRun bool) error

	// Check verifies the metadata parses and the markers are present,
	// without touching the document
	Check(ctx context.Context) error
}

// NavUpdater implements Updater against the local filesystem
type NavUpdater struct {
	settings   *config.Settings
	discoverer discover.Discoverer
	splicer    *splice.Splicer
	out        io.Writer
}

// New creates a NavUpdater wired from the given settings
func New(settings *config.Settings, verbose bool) *NavUpdater {
	discoverer := discover.NewDirectoryDiscoverer(settings.ProjectsRoot, settings.MetadataFile)
	discoverer.SetVerbose(verbose)

	return &NavUpdater{
		settings:   settings,
		discoverer: discoverer,
		splicer:    splice.New(settings.Markers.Start, settings.Markers.End),
		out:        os.Stdout,
	}
}

// SetDiscoverer allows injection of a discoverer (for testing)
func (u *NavUpdater) SetDiscoverer(d discover.Discoverer) {
	u.discoverer = d
}

// SetOutput redirects human-facing output (for testing)
func (u *NavUpdater) SetOutput(w io.Writer) {
	u.out = w
}

// Run executes the full pipeline. In dry-run mode the rendered fragment is
// printed and the index document is never read or written.
func (u *NavUpdater) Run(ctx context.Context, dryRun bool) error {
	projects, err := u.discoverer.Discover(ctx)
	if err != nil {
		return err
	}

	markup := render.Fragment(projects)

	if dryRun {
		fmt.Fprintln(u.out, markup)
		return nil
	}

	indexPath := u.settings.IndexPath
	info, err := os.Stat(indexPath)
	if err != nil {
		return fmt.Errorf("failed to stat index file %s: %w", indexPath, err)
	}

	content, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("failed to read index file %s: %w", indexPath, err)
	}

	updated, err := u.splicer.Splice(string(content), markup)
	if err != nil {
		return err
	}

	if err := os.WriteFile(indexPath, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write index file %s: %w", indexPath, err)
	}

	fmt.Fprintf(u.out, "✓ Updated %s with %d project(s)\n", indexPath, len(projects))
	return nil
}

// Check validates that every discovered metadata file parses and that the
// index document contains the marker pair. No file is modified.
func (u *NavUpdater) Check(ctx context.Context) error {
	projects, err := u.discoverer.Discover(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(u.out, "✓ %d project(s) discovered under %s\n", len(projects), u.settings.ProjectsRoot)

	content, err := os.ReadFile(u.settings.IndexPath)
	if err != nil {
		return fmt.Errorf("failed to read index file %s: %w", u.settings.IndexPath, err)
	}

	if !u.splicer.HasMarkers(string(content)) {
		return fmt.Errorf("could not find markers %q and %q in %s: %w",
			u.settings.Markers.Start, u.settings.Markers.End, u.settings.IndexPath,
			splice.ErrMarkersNotFound)
	}

	fmt.Fprintf(u.out, "✓ %s contains the navigation markers\n", u.settings.IndexPath)
	return nil
}
