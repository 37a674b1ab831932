/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package splice replaces the span between two literal marker comments in a
// document with a freshly rendered fragment, reproducing the indentation of
// the line carrying the start marker. It is a pure string transformation;
// reading and writing the document is the caller's responsibility.
package splice

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMarkersNotFound indicates the document does not contain the marker pair
var ErrMarkersNotFound = errors.New("marker pair not found")

// Splicer performs marker-pair replacement for a fixed pair of markers
type Splicer struct {
	start   string
	end     string
	pattern *regexp.Regexp
}

// New creates a Splicer for the given literal marker strings
func New(start, end string) *Splicer {
	// Non-greedy across newlines: the first start..end span wins. The leading
	// whitespace run on the start marker's line is captured as the indent.
	pattern := regexp.MustCompile(
		`(?s)([ \t]*)` + regexp.QuoteMeta(start) + `.*?` + regexp.QuoteMeta(end),
	)
	return &Splicer{
		start:   start,
		end:     end,
		pattern: pattern,
	}
}

// HasMarkers reports whether the document contains the marker pair in order
func (s *Splicer) HasMarkers(document string) bool {
	return s.pattern.MatchString(document)
}

// Splice returns the document with the fragment inserted between the markers.
// Everything outside the matched span is left byte-for-byte unchanged. The
// fragment's non-blank lines are re-indented to the start marker's indent;
// blank lines are left unindented.
func (s *Splicer) Splice(document, fragment string) (string, error) {
	match := s.pattern.FindStringSubmatchIndex(document)
	if match == nil {
		return "", fmt.Errorf("could not find markers %q and %q in the document: %w",
			s.start, s.end, ErrMarkersNotFound)
	}

	indent := document[match[2]:match[3]]

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(s.start)
	b.WriteString("\n")
	for _, line := range strings.Split(fragment, "\n") {
		if line != "" {
			b.WriteString(indent)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(s.end)

	return document[:match[0]] + b.String() + document[match[1]:], nil
}
