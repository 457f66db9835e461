package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-apr/lang"
)

func TestInvokeReturnsOKForWellBehavedFunction(t *testing.T) {
	p := lang.Parse("function add(a, b) {\n  return a + b;\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	e := New()
	res := e.Invoke(h, "add", []any{1.0, 2.0})
	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, int64(3), res.Value)
}

func TestInvokeMissingFunction(t *testing.T) {
	p := lang.Parse("function add(a, b) {\n  return a + b;\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	res := New().Invoke(h, "nope", nil)
	assert.Equal(t, OutcomeMissingFunction, res.Outcome)
}

func TestInvokeRuntimeErrorIsCaptured(t *testing.T) {
	p := lang.Parse("function boom() {\n  return null.field;\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	res := New().Invoke(h, "boom", nil)
	assert.Equal(t, OutcomeRuntimeError, res.Outcome)
	assert.NotEmpty(t, res.Message)
}

func TestInvokeTimesOutOnInfiniteLoop(t *testing.T) {
	p := lang.Parse("function spin() {\n  while (true) {}\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	res := InvokeWithDeadline(h, "spin", nil, 20*time.Millisecond)
	assert.Equal(t, OutcomeTimeout, res.Outcome)
}

func TestInvokeDoesNotBlockOnPriorRunawayInvocation(t *testing.T) {
	p := lang.Parse("function spin() {\n  while (true) {}\n}\nfunction add(a, b) {\n  return a + b;\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	_ = InvokeWithDeadline(h, "spin", nil, 10*time.Millisecond)

	start := time.Now()
	res := InvokeWithDeadline(h, "add", []any{1.0, 2.0}, time.Second)
	elapsed := time.Since(start)

	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestLoadAssignsUniqueHandleNames(t *testing.T) {
	p := lang.Parse("function f() {\n  return 1;\n}\n")
	h1, err := Load(p)
	require.NoError(t, err)
	h2, err := Load(p)
	require.NoError(t, err)

	assert.NotEqual(t, h1.Name(), h2.Name())
}

func TestLoadRejectsUnparseableSource(t *testing.T) {
	p := lang.Parse("function f( {\n")
	_, err := Load(p)
	assert.Error(t, err)
}

func TestInvokeArgumentsAreDeepCopiedAcrossCalls(t *testing.T) {
	p := lang.Parse("function mutate(arr) {\n  arr.push(99);\n  return arr.length;\n}\n")
	h, err := Load(p)
	require.NoError(t, err)

	shared := []any{[]any{1.0, 2.0, 3.0}}
	e := New()

	res1 := e.Invoke(h, "mutate", shared)
	require.Equal(t, OutcomeOK, res1.Outcome)
	assert.Equal(t, int64(4), res1.Value)

	// The caller's original slice must be untouched by the candidate's
	// in-place mutation of its (deep-copied) argument.
	inner := shared[0].([]any)
	assert.Len(t, inner, 3)
}
