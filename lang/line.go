// Package lang models the line-based program representation that every
// other package in this module operates on: a patient (or any variant
// derived from it) is nothing more than an ordered sequence of source
// lines, addressed by 1-based line number as they appear on disk.
package lang

import "strings"

// Line is a single, verbatim line of source, including its leading
// indentation but excluding the terminating newline.
type Line string

// Indent returns the line's maximal leading whitespace run.
func (l Line) Indent() string {
	s := string(l)
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return s[:n]
}

// Content returns the line with its indentation prefix removed.
func (l Line) Content() string {
	return strings.TrimPrefix(string(l), l.Indent())
}

// Trimmed returns the line with leading and trailing whitespace removed.
func (l Line) Trimmed() string {
	return strings.TrimSpace(string(l))
}

// Blank reports whether the line has no non-whitespace content.
func (l Line) Blank() bool {
	return l.Trimmed() == ""
}

// Reindent returns the line's content re-indented with prefix, discarding
// whatever indentation the line previously carried.
func (l Line) Reindent(prefix string) Line {
	return Line(prefix + l.Content())
}
