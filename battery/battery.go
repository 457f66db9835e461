// Package battery models the labelled test battery a benchmark directory
// supplies (tests.json) and the TestCase/TestBattery data model from
// spec.md §3.
package battery

// Label classifies a TestCase as describing behaviour the patient already
// exhibits correctly (Positive) or the bug to be repaired (Negative).
type Label int

const (
	Positive Label = iota
	Negative
)

func (l Label) String() string {
	if l == Positive {
		return "positive"
	}
	return "negative"
}

// TestCase is one (inputs, expected, label) tuple. Inputs and Expected use
// the JSON value shapes (nil, bool, float64, string, []any, map[string]any)
// produced by decoding tests.json — the same shapes sandbox.DeepCopy and
// google/go-cmp both operate on directly.
type TestCase struct {
	Inputs   []any
	Expected any
	Label    Label
	Note     string
}

// Battery pairs the positive/negative weights with their ordered case
// lists, per spec.md §3.
type Battery struct {
	FunctionName string
	PositiveW    float64
	NegativeW    float64
	Positive     []TestCase
	Negative     []TestCase
}

// MaxFitness returns F_max = |positive|·w_pos + |negative|·w_neg.
func (b *Battery) MaxFitness() float64 {
	return float64(len(b.Positive))*b.PositiveW + float64(len(b.Negative))*b.NegativeW
}

// Weight returns the weight to award a passing TestCase of this battery
// with label l.
func (b *Battery) Weight(l Label) float64 {
	if l == Positive {
		return b.PositiveW
	}
	return b.NegativeW
}

// AllCases returns positive cases followed by negative cases, in
// declaration order — the order spec.md §5 requires the harness to run
// cases in, for deterministic debug output.
func (b *Battery) AllCases() []TestCase {
	out := make([]TestCase, 0, len(b.Positive)+len(b.Negative))
	out = append(out, b.Positive...)
	out = append(out, b.Negative...)
	return out
}
