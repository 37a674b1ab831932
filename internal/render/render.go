/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package render converts the ordered project list into the HTML fragment
// that lives between the navigation markers. The markup shapes are fixed;
// every piece of project-supplied text is HTML-escaped before it is placed
// into an attribute or element body.
package render

import (
	"html"
	"strings"

	"github.com/lumen-pages/navgen/internal/discover"
)

// EmptyMessage is rendered when no projects are discovered
const EmptyMessage = "<p>No classified projects are currently published. Add a project and rerun the updater.</p>"

// itemIndent is the fixed indentation of list items relative to the list
const itemIndent = 2

// Fragment creates the HTML markup for the classified project navigation
func Fragment(projects []discover.Project) string {
	if len(projects) == 0 {
		return EmptyMessage
	}

	var b strings.Builder
	b.WriteString("<ul class=\"classified-projects\">\n")
	for _, project := range projects {
		b.WriteString(indentBlock(navItem(project), itemIndent))
		b.WriteString("\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

// navItem returns the HTML snippet for a single project entry
func navItem(project discover.Project) string {
	var b strings.Builder
	b.WriteString("<li>\n")

	b.WriteString("  <a href=\"")
	b.WriteString(html.EscapeString(project.URL))
	b.WriteString("\"")
	if project.Description != "" {
		b.WriteString(" title=\"")
		b.WriteString(html.EscapeString(project.Description))
		b.WriteString("\"")
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(project.Name))
	b.WriteString("</a>\n")

	if project.Description != "" {
		b.WriteString("  <span class=\"description\">")
		b.WriteString(html.EscapeString(project.Description))
		b.WriteString("</span>\n")
	}

	b.WriteString("</li>")
	return b.String()
}

// indentBlock prepends the given number of spaces to every line of text
func indentBlock(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
