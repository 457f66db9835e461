package mutate

import (
	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/syntax"
)

// maxPivotAttempts bounds how many pivot points Crossover will try before
// giving up on a parent pair.
const maxPivotAttempts = 5

// Crossover performs one-point crossover between a and b: a pivot p is
// drawn in [1, L-1] (L = min(len(a), len(b))), producing offspring
// a[:p]+b[p:] and b[:p]+a[p:]. Each offspring is checked with syntax.Valid.
// If both are valid, both are returned. If exactly one is valid, that one
// is returned twice. If neither is valid, a fresh pivot is drawn, up to
// maxPivotAttempts times, before Crossover reports failure.
func (m *Mutator) Crossover(a, b lang.Program) (lang.Program, lang.Program, bool) {
	l := a.Len()
	if b.Len() < l {
		l = b.Len()
	}
	if l <= 1 {
		return a, b, false
	}

	for attempt := 0; attempt < maxPivotAttempts; attempt++ {
		pivot := 1 + m.rng.Intn(l-1)

		childA := splice(a, b, pivot)
		childB := splice(b, a, pivot)

		validA := syntax.Valid(childA)
		validB := syntax.Valid(childB)

		switch {
		case validA && validB:
			return childA, childB, true
		case validA:
			return childA, childA, true
		case validB:
			return childB, childB, true
		}
	}
	return a, b, false
}

// splice builds the offspring whose prefix comes from head and whose
// suffix comes from tail, exchanging at pivot.
func splice(head, tail lang.Program, pivot int) lang.Program {
	lines := make([]lang.Line, 0, pivot+(tail.Len()-pivot))
	for i := 0; i < pivot; i++ {
		lines = append(lines, head.Line(i))
	}
	for i := pivot; i < tail.Len(); i++ {
		lines = append(lines, tail.Line(i))
	}
	return lang.NewProgram(lines)
}
