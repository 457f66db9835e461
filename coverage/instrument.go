package coverage

import (
	"fmt"
	"strings"

	"github.com/joeycumines/go-apr/lang"
)

// instrumentable reports whether a line should receive a coverage probe.
// Blank lines and lines that open only with a closing brace (plain block
// terminators, or brace-continuation lines such as "} else {") are
// skipped: inserting a probe statement immediately before such a line
// would land the probe inside the wrong block, and block punctuation was
// never itself an executable statement in the first place.
func instrumentable(l lang.Line) bool {
	t := l.Trimmed()
	if t == "" {
		return false
	}
	if strings.HasPrefix(t, "}") {
		return false
	}
	if t == "{" {
		return false
	}
	return true
}

// instrument returns source text equivalent to p, with a call to the probe
// function name (fn) prepended as its own statement before every
// instrumentable line, tagged with that line's 1-based number. Only lines
// originating in p are ever instrumented — lines of the harness, the
// validator, or any other host file are never seen by this function at
// all, satisfying the tracer's file-origin restriction by construction
// rather than by runtime filtering.
func instrument(p lang.Program, fn string) string {
	var b strings.Builder
	for i := 0; i < p.Len(); i++ {
		line := p.Line(i)
		if instrumentable(line) {
			fmt.Fprintf(&b, "%s(%d);\n", fn, i+1)
		}
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	return b.String()
}
