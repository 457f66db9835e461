// Package localize implements the Fault Localizer: combining passing and
// failing coverage sets into per-line suspiciousness weights.
package localize

import (
	"sort"

	"github.com/joeycumines/go-apr/battery"
	"github.com/joeycumines/go-apr/coverage"
	"github.com/joeycumines/go-apr/lang"
)

// WeightedLine maps a 1-based line number to a suspiciousness weight in
// {0.0, 0.1, 1.0}.
type WeightedLine struct {
	Line   int
	Weight float64
}

// Weights runs the patient (never a mutated variant — "the localizer runs
// once per repair session, against the original patient") under every
// positive and negative test case, and returns the weighted-line table
// sorted by line number.
func Weights(patient lang.Program, b *battery.Battery) []WeightedLine {
	p := unionTrace(patient, b.FunctionName, b.Positive)
	f := unionTrace(patient, b.FunctionName, b.Negative)

	all := make(map[int]struct{}, len(p)+len(f))
	for l := range p {
		all[l] = struct{}{}
	}
	for l := range f {
		all[l] = struct{}{}
	}

	out := make([]WeightedLine, 0, len(all))
	for l := range all {
		_, inP := p[l]
		_, inF := f[l]
		var w float64
		switch {
		case inF && !inP:
			w = 1.0
		case inF && inP:
			w = 0.1
		default: // inP && !inF
			w = 0.0
		}
		out = append(out, WeightedLine{Line: l, Weight: w})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

func unionTrace(p lang.Program, function string, cases []battery.TestCase) map[int]struct{} {
	union := make(map[int]struct{})
	for _, c := range cases {
		for line := range coverage.Trace(p, function, c.Inputs) {
			union[line] = struct{}{}
		}
	}
	return union
}
