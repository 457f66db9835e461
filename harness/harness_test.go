package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeycumines/go-apr/battery"
	"github.com/joeycumines/go-apr/lang"
)

func findMaxBattery() *battery.Battery {
	return &battery.Battery{
		FunctionName: "find_max",
		PositiveW:    1,
		NegativeW:    10,
		Positive: []battery.TestCase{
			{Inputs: []any{[]any{5.0, 5.0, 5.0}}, Expected: 5.0, Label: battery.Positive},
		},
		Negative: []battery.TestCase{
			{Inputs: []any{[]any{1.0, 2.0, 3.0}}, Expected: 3.0, Label: battery.Negative},
		},
	}
}

func TestEvaluateScoresPassingCases(t *testing.T) {
	b := findMaxBattery()
	patient := lang.Parse(
		"function find_max(nums) {\n" +
			"  var current = nums[0];\n" +
			"  for (var i = 1; i < nums.length; i++) {\n" +
			"    if (nums[i] > current) {\n" +
			"      current = nums[i];\n" +
			"    }\n" +
			"  }\n" +
			"  return current;\n" +
			"}\n",
	)

	h := New(b)
	fitness, outcomes := h.Evaluate(patient)

	assert.Equal(t, b.MaxFitness(), fitness)
	assert.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.True(t, o.Passed)
	}
}

func TestEvaluateNeverShortCircuitsOnFailure(t *testing.T) {
	b := findMaxBattery()
	// Buggy: comparison flipped the wrong way, so only the positive case
	// (all-equal) happens to still pass.
	patient := lang.Parse(
		"function find_max(nums) {\n" +
			"  var current = nums[0];\n" +
			"  for (var i = 1; i < nums.length; i++) {\n" +
			"    if (nums[i] < current) {\n" +
			"      current = nums[i];\n" +
			"    }\n" +
			"  }\n" +
			"  return current;\n" +
			"}\n",
	)

	h := New(b)
	fitness, outcomes := h.Evaluate(patient)

	assert.Equal(t, b.PositiveW, fitness)
	assert.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Passed)
	assert.False(t, outcomes[1].Passed)
}

func TestEvaluateUnparseableVariantScoresZero(t *testing.T) {
	b := findMaxBattery()
	broken := lang.Parse("function find_max( {\n")

	h := New(b)
	fitness, outcomes := h.Evaluate(broken)

	assert.Equal(t, 0.0, fitness)
	assert.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.False(t, o.Passed)
	}
}

func TestFitnessMatchesEvaluateSum(t *testing.T) {
	b := findMaxBattery()
	patient := lang.Parse(
		"function find_max(nums) {\n" +
			"  var current = nums[0];\n" +
			"  return current;\n" +
			"}\n",
	)

	h := New(b)
	fitness := h.Fitness(patient)
	evalFitness, _ := h.Evaluate(patient)
	assert.Equal(t, evalFitness, fitness)
}
