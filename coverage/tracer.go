// Package coverage implements the Coverage Tracer: running a callable with
// per-line event capture, restricted to lines originating in the patient
// program.
//
// Rather than hooking a VM-level line-event callback (goja exposes no
// stable public API for that), coverage is obtained by source
// instrumentation: the patient is recompiled with a probe call prepended
// to every instrumentable line, and the probe records into a set. Because
// only the patient's own lines are ever instrumented, lines belonging to
// the harness, the validator, or any other host file can never appear in
// the result — the file-origin restriction spec.md §4.3 requires is a
// structural property of this approach, not a runtime filter.
package coverage

import (
	"github.com/dop251/goja"

	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/sandbox"
)

const probeName = "__cov"

// Trace runs function(args...) against an instrumented copy of p and
// returns the set of 1-based line numbers executed at least once before
// the call returned or raised. Exceptions raised by the candidate are
// swallowed — coverage recorded up to the failure point is still
// returned — matching the harness's general policy of degrading candidate
// faults to zero credit rather than propagating them.
//
// Trace enforces no timeout of its own; a patient whose coverage run
// cannot terminate must be bounded by the caller (e.g. running Trace in
// the same fresh-goroutine-with-deadline shape sandbox.Executor uses).
func Trace(p lang.Program, function string, args []any) map[int]bool {
	covered := make(map[int]bool)

	src := instrument(p, probeName)
	prog, err := goja.Compile("coverage-"+function+".js", src, true)
	if err != nil {
		// An uninstrumentable-but-otherwise-valid patient shouldn't occur
		// in practice (instrumentation only ever prepends statements), but
		// if it does, report empty coverage rather than panicking the
		// localizer.
		return covered
	}

	rt := goja.New()
	if err := rt.Set(probeName, func(line int64) {
		covered[int(line)] = true
	}); err != nil {
		return covered
	}

	func() {
		defer func() { _ = recover() }()

		if _, err := rt.RunProgram(prog); err != nil {
			return
		}

		fnVal := rt.Get(function)
		if fnVal == nil || goja.IsUndefined(fnVal) {
			return
		}
		fn, ok := goja.AssertFunction(fnVal)
		if !ok {
			return
		}

		copied := sandbox.DeepCopy(args)
		jsArgs := make([]goja.Value, len(copied))
		for i, a := range copied {
			jsArgs[i] = rt.ToValue(a)
		}

		_, _ = fn(goja.Undefined(), jsArgs...)
	}()

	return covered
}
