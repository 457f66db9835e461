package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/localize"
)

func TestSummaryStringOrdersFieldsPerSpec(t *testing.T) {
	patient := lang.Parse("function f(n) {\n  return n < 0;\n}\n")
	repaired := lang.Parse("function f(n) {\n  return n > 0;\n}\n")

	s := Summary{
		Timestamp:           time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC),
		BenchmarkName:       "range_direction_guard",
		FunctionName:        "f",
		Success:             true,
		FinalFitness:        33,
		MaxFitness:          33,
		GenerationsRun:      4,
		DiscoveryGeneration: 4,
		Weights:             []localize.WeightedLine{{Line: 2, Weight: 1.0}},
		Patient:             patient,
		Repaired:            repaired,
	}

	out := s.String()

	assert.Contains(t, out, "timestamp:")
	assert.Contains(t, out, "benchmark: range_direction_guard")
	assert.Contains(t, out, "success: true")
	assert.Contains(t, out, "discovery_generation: 4")
	assert.Contains(t, out, "weighted lines:")
	assert.Contains(t, out, "diff (patient -> repaired):")
	assert.Contains(t, out, "original source:")
	assert.Contains(t, out, "repaired source:")

	tsIdx := indexOf(out, "timestamp:")
	benchIdx := indexOf(out, "benchmark:")
	assert.Less(t, tsIdx, benchIdx)
}

func TestSummaryFailureOmitsRepairedSection(t *testing.T) {
	patient := lang.Parse("return 1;\n")
	s := Summary{
		FunctionName:   "f",
		Success:        false,
		FinalFitness:   0,
		MaxFitness:     10,
		GenerationsRun: 50,
		Patient:        patient,
	}
	out := s.String()
	assert.NotContains(t, out, "discovery_generation:")
	assert.NotContains(t, out, "repaired source:")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
