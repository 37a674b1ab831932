/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/lumen-pages/navgen/internal/display"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the homepage and project metadata without writing",
	Long: `Check that an update would succeed, without modifying any file.

This verifies that every discovered metadata file parses as valid JSON and
that the index document contains the navigation marker pair. It gives fast
feedback after editing project metadata or restructuring the homepage.

Examples:
  navgen check                          # check with defaults
  navgen check --index site/index.html  # check an alternate document`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, verbose, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		u := getUpdater(settings, verbose)
		if err := u.Check(cmd.Context()); err != nil {
			return err
		}

		styles := display.NewStyles(display.ShouldUseColour())
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("✓ Homepage is ready to update"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
