/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/lumen-pages/navgen/internal/config"
	"github.com/lumen-pages/navgen/internal/update"
	"github.com/lumen-pages/navgen/internal/version"
	"github.com/spf13/cobra"
)

var (
	// updater can be injected for testing
	updater update.Updater
)

// rootCmd represents the base command; invoked without a subcommand it runs
// the full update pipeline
var rootCmd = &cobra.Command{
	Use:   "navgen",
	Short: "A command-line tool for regenerating a static homepage's project navigation",
	Long: `Navgen rebuilds the classified projects section of a static homepage by:

• Scanning a projects directory for per-project metadata files
• Rendering the discovered projects into an HTML navigation fragment
• Splicing the fragment between marker comments in the index document

Projects are ordered by directory name so repeated runs produce identical
output. Use --dry-run to preview the generated markup without mutating files.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		settings, verbose, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		u := getUpdater(settings, verbose)
		return u.Run(cmd.Context(), dryRun)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getUpdater returns the updater instance, creating a default one if none is set
func getUpdater(settings *config.Settings, verbose bool) update.Updater {
	if updater != nil {
		return updater
	}
	return update.New(settings, verbose)
}

// SetUpdater allows injection of an updater (for testing)
func SetUpdater(u update.Updater) {
	updater = u
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "navgen.yaml", "settings file (default is navgen.yaml)")
	rootCmd.PersistentFlags().String("index", config.DefaultIndexPath, "path to the homepage index file")
	rootCmd.PersistentFlags().String("projects", config.DefaultProjectsRoot, "directory containing classified projects")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Root-only flags
	rootCmd.Flags().Bool("dry-run", false, "print the rendered markup instead of updating the homepage")
}
