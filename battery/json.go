package battery

import (
	"fmt"

	"github.com/goccy/go-json"
)

// wireCase mirrors one element of tests.json's positive_tests.cases /
// negative_tests.cases arrays.
type wireCase struct {
	Input    []any  `json:"input"`
	Expected any    `json:"expected"`
	Note     string `json:"note,omitempty"`
}

// wireGroup mirrors tests.json's positive_tests / negative_tests objects.
type wireGroup struct {
	Weight float64    `json:"weight"`
	Cases  []wireCase `json:"cases"`
}

// wireDocument mirrors the tests.json schema in full, per spec.md §6.
type wireDocument struct {
	FunctionName  string    `json:"function_name"`
	MaxFitness    float64   `json:"max_fitness"`
	PositiveTests wireGroup `json:"positive_tests"`
	NegativeTests wireGroup `json:"negative_tests"`
}

// Parse decodes a tests.json document's bytes into a Battery, validating
// the w_neg > w_pos invariant spec.md §3 requires ("Invariant: w_neg > w_pos
// so the search gradient slopes toward fixing the bug").
func Parse(data []byte) (*Battery, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("battery: malformed tests.json: %w", err)
	}
	if doc.FunctionName == "" {
		return nil, fmt.Errorf("battery: tests.json missing function_name")
	}
	if doc.NegativeTests.Weight <= doc.PositiveTests.Weight {
		return nil, fmt.Errorf(
			"battery: negative weight %v must exceed positive weight %v",
			doc.NegativeTests.Weight, doc.PositiveTests.Weight,
		)
	}

	b := &Battery{
		FunctionName: doc.FunctionName,
		PositiveW:    doc.PositiveTests.Weight,
		NegativeW:    doc.NegativeTests.Weight,
		Positive:     toCases(doc.PositiveTests.Cases, Positive),
		Negative:     toCases(doc.NegativeTests.Cases, Negative),
	}

	if doc.MaxFitness != 0 && doc.MaxFitness != b.MaxFitness() {
		return nil, fmt.Errorf(
			"battery: declared max_fitness %v does not match computed %v",
			doc.MaxFitness, b.MaxFitness(),
		)
	}

	return b, nil
}

func toCases(wire []wireCase, label Label) []TestCase {
	out := make([]TestCase, len(wire))
	for i, w := range wire {
		out[i] = TestCase{
			Inputs:   w.Input,
			Expected: w.Expected,
			Label:    label,
			Note:     w.Note,
		}
	}
	return out
}

// Encode renders b back into the tests.json wire schema — used by
// benchmark.Scaffold to write templates.
func Encode(b *Battery) ([]byte, error) {
	doc := wireDocument{
		FunctionName: b.FunctionName,
		MaxFitness:   b.MaxFitness(),
		PositiveTests: wireGroup{
			Weight: b.PositiveW,
			Cases:  fromCases(b.Positive),
		},
		NegativeTests: wireGroup{
			Weight: b.NegativeW,
			Cases:  fromCases(b.Negative),
		},
	}
	return json.MarshalIndent(doc, "", "    ")
}

func fromCases(cases []TestCase) []wireCase {
	out := make([]wireCase, len(cases))
	for i, c := range cases {
		out[i] = wireCase{Input: c.Inputs, Expected: c.Expected, Note: c.Note}
	}
	return out
}
