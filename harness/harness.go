// Package harness implements the Test Harness / Fitness component: running
// a variant against a weighted test battery and reducing the outcome to a
// single scalar fitness.
package harness

import (
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/joeycumines/go-apr/battery"
	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/sandbox"
)

// Harness evaluates variants against a fixed battery and entry point.
type Harness struct {
	Battery  *battery.Battery
	Deadline time.Duration
}

// New returns a Harness with the default per-invocation deadline.
func New(b *battery.Battery) *Harness {
	return &Harness{Battery: b, Deadline: sandbox.DefaultDeadline}
}

// Outcome is one test case's verdict, surfaced for debug reporting; the
// fitness sum is all the driver uses (via Fitness), while Evaluate also
// returns the per-case detail for callers that want it.
type Outcome struct {
	Case   battery.TestCase
	Passed bool
	Result sandbox.Result
}

// Evaluate compiles and scores p against h.Battery. Every test case runs —
// the harness never short-circuits — so fitness is monotone in the number
// of tests passing and the driver can observe incremental progress even
// from partially-repaired variants.
func (h *Harness) Evaluate(p lang.Program) (fitness float64, outcomes []Outcome) {
	deadline := h.Deadline
	if deadline <= 0 {
		deadline = sandbox.DefaultDeadline
	}

	handle, err := sandbox.Load(p)
	if err != nil {
		// Unparseable / load-failed candidates score zero on every case;
		// still report one outcome per case so callers get a uniform
		// shape regardless of why the variant failed.
		cases := h.Battery.AllCases()
		outcomes = make([]Outcome, len(cases))
		for i, c := range cases {
			outcomes[i] = Outcome{Case: c, Passed: false, Result: sandbox.Result{Outcome: sandbox.OutcomeMissingFunction}}
		}
		return 0, outcomes
	}

	cases := h.Battery.AllCases()
	outcomes = make([]Outcome, 0, len(cases))

	for _, c := range cases {
		args := sandbox.DeepCopy(c.Inputs)
		res := sandbox.InvokeWithDeadline(handle, h.Battery.FunctionName, args, deadline)

		passed := res.Outcome == sandbox.OutcomeOK && structurallyEqual(res.Value, c.Expected)
		if passed {
			fitness += h.Battery.Weight(c.Label)
		}
		outcomes = append(outcomes, Outcome{Case: c, Passed: passed, Result: res})
	}

	return fitness, outcomes
}

// Fitness is Evaluate without the per-case detail, for hot paths (the
// generational driver's population scoring loop) that don't need it.
func (h *Harness) Fitness(p lang.Program) float64 {
	fitness, _ := h.Evaluate(p)
	return fitness
}

// structurallyEqual compares a goja-exported return value against a
// tests.json "expected" value by structural equality rather than identity.
// Both sides are decoded JSON-shaped trees (nil/bool/float64/string/
// []any/map[string]any); numbers that goja exports as int64 where the
// expected value decoded as float64 (or vice versa) are normalized first,
// since JavaScript — like JSON — has a single numeric type.
func structurallyEqual(got, want any) bool {
	return cmp.Equal(normalizeNumbers(got), normalizeNumbers(want))
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeNumbers(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeNumbers(e)
		}
		return out
	default:
		return v
	}
}
