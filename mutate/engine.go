package mutate

import (
	"math/rand"

	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/localize"
	"github.com/joeycumines/go-apr/syntax"
)

// operatorPool is the multiset the engine draws from uniformly: two
// expression and two boolean slots against one each for delete/insert/swap,
// biasing the search toward the operand-level operators without excluding
// the structural ones.
var operatorPool = []string{"delete", "insert", "swap", "expression", "expression", "boolean", "boolean"}

// Mutator draws mutations against a deterministic PRNG, so a seeded driver
// run reproduces byte-for-byte.
type Mutator struct {
	rng *rand.Rand
}

// New returns a Mutator seeded for reproducible search.
func New(seed int64) *Mutator {
	return &Mutator{rng: rand.New(rand.NewSource(seed))}
}

// Rand exposes the Mutator's PRNG stream so the generational driver can
// thread the same deterministic sequence through survivor selection and
// crossover/mutation alternation, rather than running a second, unseeded
// source alongside it.
func (m *Mutator) Rand() *rand.Rand {
	return m.rng
}

// Mutate attempts a single mutation of variant, targeted by weights. It
// picks an operator from the multiset, a roulette-wheel target line under
// weights, and (for INSERT/SWAP) a uniformly-drawn source line from the
// same candidate set. The result is validated with syntax.Valid before
// being returned; an operator that finds nothing to do (EXPRESSION/BOOLEAN
// with no matching token on the chosen line) or that produces an invalid
// program reports ok=false, leaving it to the caller to retry with a fresh
// draw.
func (m *Mutator) Mutate(variant lang.Program, weights []localize.WeightedLine) (lang.Program, bool) {
	cands := candidates(weights, variant.Len())
	if len(cands) == 0 {
		return variant, false
	}

	op := operatorPool[m.rng.Intn(len(operatorPool))]
	t := rouletteWheel(cands, m.rng)

	var (
		out lang.Program
		ok  bool
	)
	switch op {
	case "delete":
		out, ok = applyDelete(variant, t), true
	case "insert":
		s := uniformSource(cands, m.rng)
		out, ok = applyInsert(variant, t, s), true
	case "swap":
		s := uniformSource(cands, m.rng)
		out, ok = applySwap(variant, t, s)
	case "expression":
		out, ok = applyExpression(variant, t, m.rng)
	case "boolean":
		out, ok = applyBoolean(variant, t, m.rng)
	}
	if !ok {
		return variant, false
	}
	if !syntax.Valid(out) {
		return variant, false
	}
	return out, true
}

// MutateWithRetry calls Mutate up to attempts times, returning the first
// syntactically valid result. If every attempt fails, it returns fallback
// (conventionally a clone of the patient) and false, matching spec.md's
// "on persistent mutation failure, the slot is filled with a clone of the
// patient" contingency.
func (m *Mutator) MutateWithRetry(variant lang.Program, weights []localize.WeightedLine, attempts int, fallback lang.Program) (lang.Program, bool) {
	for i := 0; i < attempts; i++ {
		if out, ok := m.Mutate(variant, weights); ok {
			return out, true
		}
	}
	return fallback, false
}
