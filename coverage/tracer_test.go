package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeycumines/go-apr/lang"
)

func TestTraceRecordsOnlyExecutedLines(t *testing.T) {
	p := lang.Parse(
		"function find_max(nums) {\n" + // 1
			"  var current = nums[0];\n" + // 2
			"  for (var i = 1; i < nums.length; i++) {\n" + // 3
			"    if (nums[i] < current) {\n" + // 4
			"      current = nums[i];\n" + // 5
			"    }\n" + // 6
			"  }\n" + // 7
			"  return current;\n" + // 8
			"}\n", // 9
	)

	covered := Trace(p, "find_max", []any{[]any{1.0, 5.0, 9.0}})

	// Line 5 (the inner assignment) only executes when a smaller element
	// is found after the first; for this input it never fires.
	assert.True(t, covered[2])
	assert.True(t, covered[3])
	assert.True(t, covered[4])
	assert.False(t, covered[5])
	assert.True(t, covered[8])
}

func TestTraceSwallowsRuntimeExceptions(t *testing.T) {
	p := lang.Parse(
		"function boom(flag) {\n" +
			"  if (flag) {\n" +
			"    return null.field;\n" +
			"  }\n" +
			"  return 1;\n" +
			"}\n",
	)

	covered := Trace(p, "boom", []any{true})
	// Coverage up to the failure point is still returned.
	assert.True(t, covered[2])
	assert.True(t, covered[3])
	// Line 5 is unreachable on this path.
	assert.False(t, covered[5])
}

func TestTraceOnlyIncludesPatientLines(t *testing.T) {
	p := lang.Parse("function f() {\n  return 1;\n}\n")
	covered := Trace(p, "f", nil)
	for line := range covered {
		assert.GreaterOrEqual(t, line, 1)
		assert.LessOrEqual(t, line, p.Len())
	}
}

func TestInstrumentableSkipsBlankAndBraceOnlyLines(t *testing.T) {
	assert.False(t, instrumentable(lang.Line("")))
	assert.False(t, instrumentable(lang.Line("   ")))
	assert.False(t, instrumentable(lang.Line("}")))
	assert.False(t, instrumentable(lang.Line("  } else {")))
	assert.False(t, instrumentable(lang.Line("{")))
	assert.True(t, instrumentable(lang.Line("  return 1;")))
}
