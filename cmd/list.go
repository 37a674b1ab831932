/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/lumen-pages/navgen/internal/config"
	"github.com/lumen-pages/navgen/internal/discover"
	"github.com/lumen-pages/navgen/internal/display"
	"github.com/spf13/cobra"
)

var (
	// listDiscoverer can be injected for testing
	listDiscoverer discover.Discoverer
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered classified projects",
	Long: `List the projects that would appear in the navigation, in render order.

Only discovery runs: the index document is never read or written. Directories
without a metadata file are skipped, exactly as during an update.

Examples:
  navgen list                        # list projects under ./projects
  navgen list --projects site/work   # list projects under another root`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, verbose, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		projects, err := getListDiscoverer(settings, verbose).Discover(cmd.Context())
		if err != nil {
			return err
		}

		styles := display.NewStyles(display.ShouldUseColour())
		out := cmd.OutOrStdout()

		if len(projects) == 0 {
			fmt.Fprintln(out, styles.Subtle.Render(
				fmt.Sprintf("No projects discovered under %s", settings.ProjectsRoot)))
			return nil
		}

		fmt.Fprintln(out, styles.Header.Render(
			fmt.Sprintf("Projects under %s", settings.ProjectsRoot)))
		fmt.Fprintln(out, styles.Separator.Render(strings.Repeat("─", 40)))

		for _, project := range projects {
			fmt.Fprintf(out, "%s %s %s\n",
				styles.Key.Render(project.Name),
				styles.Separator.Render("→"),
				styles.Value.Render(project.URL))
			if project.Description != "" {
				fmt.Fprintf(out, "  %s\n", styles.Subtle.Render(project.Description))
			}
		}

		return nil
	},
}

// getListDiscoverer returns the discoverer instance, creating a default one if none is set
func getListDiscoverer(settings *config.Settings, verbose bool) discover.Discoverer {
	if listDiscoverer != nil {
		return listDiscoverer
	}

	d := discover.NewDirectoryDiscoverer(settings.ProjectsRoot, settings.MetadataFile)
	d.SetVerbose(verbose)
	return d
}

// SetListDiscoverer allows injection of a discoverer (for testing)
func SetListDiscoverer(d discover.Discoverer) {
	listDiscoverer = d
}

func init() {
	rootCmd.AddCommand(listCmd)
}
