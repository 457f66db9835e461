// Package report renders a repair run's outcome: the per-line BEFORE/AFTER
// diff and the plain-text report_summary.txt document.
package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/joeycumines/go-apr/lang"
)

// DiffLine is one line of a unified before/after diff.
type DiffLine struct {
	// Kind is "+", "-", or " " (unchanged).
	Kind string
	Text string
}

// Diff computes a line-level unified diff between before and after,
// delegating the character-level comparison to go-diff's line-mode helpers
// (DiffLinesToChars maps whole lines to single runes so DiffMain operates
// on lines, not characters, then DiffCharsToLines expands the result back).
func Diff(before, after lang.Program) []DiffLine {
	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(before.String(), after.String())
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []DiffLine
	for _, d := range diffs {
		kind := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = "+"
		case diffmatchpatch.DiffDelete:
			kind = "-"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, DiffLine{Kind: kind, Text: line})
		}
	}
	return out
}

// Render writes diff lines in "KIND TEXT" form, one per line.
func Render(diff []DiffLine) string {
	var b strings.Builder
	for _, d := range diff {
		b.WriteString(d.Kind)
		b.WriteByte(' ')
		b.WriteString(d.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
