// Package mutate implements the Mutation Engine: five line/token-level
// operators, weighted target selection under a syntax-validity filter, and
// one-point crossover.
package mutate

import (
	"math/rand"

	"github.com/joeycumines/go-apr/localize"
)

// target is a candidate line index (0-based) paired with its
// suspiciousness weight.
type target struct {
	index  int
	weight float64
}

// candidates builds the target-selection candidate set: the 0-based
// positions of lines with non-zero weight, clamped to a program of length
// limit. If every weighted line has zero weight (or the non-zero set is
// empty for any other reason), every localized line is treated with weight
// 1.0 instead — the documented fallback that "weakens the localizer under
// pathologically thin coverage" but keeps the search able to move at all.
func candidates(weights []localize.WeightedLine, limit int) []target {
	out := make([]target, 0, len(weights))
	for _, wl := range weights {
		idx := wl.Line - 1
		if idx < 0 || idx >= limit {
			continue
		}
		if wl.Weight > 0 {
			out = append(out, target{index: idx, weight: wl.Weight})
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, wl := range weights {
		idx := wl.Line - 1
		if idx < 0 || idx >= limit {
			continue
		}
		out = append(out, target{index: idx, weight: 1.0})
	}
	return out
}

// rouletteWheel draws r ∈ [0, Σw) and returns the line index of the first
// candidate whose running cumulative weight exceeds r.
func rouletteWheel(cands []target, rng *rand.Rand) int {
	var total float64
	for _, c := range cands {
		total += c.weight
	}
	if total <= 0 {
		return cands[rng.Intn(len(cands))].index
	}
	r := rng.Float64() * total
	var running float64
	for _, c := range cands {
		running += c.weight
		if running > r {
			return c.index
		}
	}
	// Floating point rounding may leave running == total == r's upper
	// bound uncrossed; fall back to the last candidate.
	return cands[len(cands)-1].index
}

// uniformSource picks a candidate line index uniformly — used by INSERT and
// SWAP, which draw their source material from the same candidate set as
// target selection but without weighting.
func uniformSource(cands []target, rng *rand.Rand) int {
	return cands[rng.Intn(len(cands))].index
}
