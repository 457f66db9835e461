package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeycumines/go-apr/lang"
)

func TestDiffMarksChangedLine(t *testing.T) {
	before := lang.Parse("function f(n) {\n  if (n < 0) {\n    return 0;\n  }\n  return n;\n}\n")
	after := lang.Parse("function f(n) {\n  if (n > 0) {\n    return 0;\n  }\n  return n;\n}\n")

	diff := Diff(before, after)

	var adds, dels int
	for _, d := range diff {
		switch d.Kind {
		case "+":
			adds++
		case "-":
			dels++
		}
	}
	assert.Equal(t, 1, adds)
	assert.Equal(t, 1, dels)
}

func TestDiffIdenticalProgramsHaveNoChanges(t *testing.T) {
	p := lang.Parse("return 1;\n")
	diff := Diff(p, p)
	for _, d := range diff {
		assert.Equal(t, " ", d.Kind)
	}
}
