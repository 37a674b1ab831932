/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package display holds the terminal styling used by the list and check
// commands. Colours come from Fang's colour scheme so output stays consistent
// with the command help rendering.
package display

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// Styles contains the styles for human-facing command output
type Styles struct {
	Header    lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Subtle    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style

	UseColour bool
}

// NewStyles creates the style set, coloured or plain
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if useColour {
		// Detect dark background and use Fang's colour scheme
		hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
		scheme := fang.DefaultColorScheme(lipgloss.LightDark(hasDark))

		s.Header = lipgloss.NewStyle().
			Bold(true).
			Foreground(scheme.Title)

		s.Key = lipgloss.NewStyle().
			Foreground(scheme.Argument)

		s.Value = lipgloss.NewStyle().
			Foreground(scheme.Base)

		s.Subtle = lipgloss.NewStyle().
			Foreground(scheme.Comment)

		s.Success = lipgloss.NewStyle().
			Foreground(scheme.Flag)

		s.Error = lipgloss.NewStyle().
			Foreground(scheme.ErrorDetails).
			Bold(true)

		s.Separator = lipgloss.NewStyle().
			Foreground(scheme.DimmedArgument)
	} else {
		// Plain styles pass text through unchanged
		plainStyle := lipgloss.NewStyle()

		s.Header = plainStyle.Bold(true)
		s.Key = plainStyle
		s.Value = plainStyle
		s.Subtle = plainStyle
		s.Success = plainStyle
		s.Error = plainStyle.Bold(true)
		s.Separator = plainStyle
	}

	return s
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM environment variable
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	// Check if stdout is a terminal
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
