// Package sandbox implements the Sandboxed Executor: it loads a candidate
// variant as a callable and invokes a named entry point under a wall-clock
// deadline, returning success, a structured failure, or a timeout — never
// letting a candidate's pathology (infinite loop, runtime panic, wrong
// arity) escape to the caller.
//
// The backing mechanism is an embedded interpreter (goja), per the design
// note that a narrow executor interface abstracts the mechanism so an
// embedded interpreter, a subprocess, or a Wasm engine are all acceptable.
package sandbox

import (
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/google/uuid"

	"github.com/joeycumines/go-apr/lang"
)

// DefaultDeadline is the default wall-clock cap per invocation.
const DefaultDeadline = 2 * time.Second

// Outcome classifies an Invoke result.
type Outcome int

const (
	// OutcomeOK reports a successful return from the candidate.
	OutcomeOK Outcome = iota
	// OutcomeTimeout reports the deadline expired before the call returned.
	OutcomeTimeout
	// OutcomeRuntimeError reports an exception raised by the candidate.
	OutcomeRuntimeError
	// OutcomeMissingFunction reports the entry point doesn't exist (or
	// isn't callable) in the loaded program.
	OutcomeMissingFunction
)

// Result is the outcome of a single Invoke call.
type Result struct {
	Outcome Outcome
	Value   any    // valid iff Outcome == OutcomeOK
	Message string // populated for OutcomeRuntimeError
}

// Handle is a loaded, ready-to-invoke variant. It owns no runtime state by
// itself — Invoke constructs a fresh goja.Runtime per call, so a Handle may
// be invoked repeatedly, and concurrently, without invocations observing
// each other's globals or interrupt state.
type Handle struct {
	name    string
	program *goja.Program
}

// Name returns the handle's unique internal identifier, guaranteeing two
// variants never collide in any module/handle cache goja (or a future
// backing) might maintain.
func (h *Handle) Name() string { return h.name }

// Load parses and prepares a variant for invocation. Deterministic: no
// network or filesystem access beyond the in-memory source already handed
// to it.
func Load(p lang.Program) (*Handle, error) {
	name := uuid.NewString() + ".js"
	prog, err := goja.Compile(name, p.String(), true)
	if err != nil {
		return nil, fmt.Errorf("sandbox: load: %w", err)
	}
	return &Handle{name: name, program: prog}, nil
}

// Executor invokes loaded handles under a configured deadline.
type Executor struct {
	// Deadline is the wall-clock cap applied to every Invoke call that
	// doesn't supply its own via InvokeWithDeadline. Zero means
	// DefaultDeadline.
	Deadline time.Duration
}

// New returns an Executor with the default deadline.
func New() *Executor {
	return &Executor{Deadline: DefaultDeadline}
}

// Invoke runs function in a fresh execution context, with deep-copied
// arguments, under e.Deadline (or DefaultDeadline if unset).
func (e *Executor) Invoke(h *Handle, function string, args []any) Result {
	deadline := e.Deadline
	if deadline <= 0 {
		deadline = DefaultDeadline
	}
	return InvokeWithDeadline(h, function, args, deadline)
}

// InvokeWithDeadline is Invoke with an explicit per-call deadline,
// overriding the Executor's configured default.
//
// Strategy: cooperative-with-abandonment. The call runs on its own
// goroutine, against its own *goja.Runtime (a fresh execution context, so a
// runaway predecessor can never block a successor). The calling goroutine
// blocks on a channel with a timer; on expiry it signals the runtime to
// interrupt (best effort — the worker may still be running when the
// deadline fires, since goja only checks the interrupt flag at certain
// bytecode boundaries) and returns immediately without waiting further.
func InvokeWithDeadline(h *Handle, function string, args []any, deadline time.Duration) Result {
	rt := goja.New()

	type callResult struct {
		res Result
	}
	done := make(chan callResult, 1)

	go func() {
		res := invokeSync(rt, h, function, args)
		done <- callResult{res: res}
	}()

	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case cr := <-done:
		return cr.res
	case <-timer.C:
		rt.Interrupt("apr: deadline exceeded")
		return Result{Outcome: OutcomeTimeout}
	}
}

// invokeSync performs the actual compile-in-runtime, lookup, deep-copy, and
// call. It always runs on its own goroutine (see InvokeWithDeadline) so a
// panic recovered here never crosses into the caller's stack.
func invokeSync(rt *goja.Runtime, h *Handle, function string, args []any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Outcome: OutcomeRuntimeError, Message: fmt.Sprintf("%v", r)}
		}
	}()

	if _, err := rt.RunProgram(h.program); err != nil {
		return Result{Outcome: OutcomeRuntimeError, Message: err.Error()}
	}

	fnVal := rt.Get(function)
	if fnVal == nil || goja.IsUndefined(fnVal) {
		return Result{Outcome: OutcomeMissingFunction}
	}
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return Result{Outcome: OutcomeMissingFunction}
	}

	copied := DeepCopy(args)
	jsArgs := make([]goja.Value, len(copied))
	for i, a := range copied {
		jsArgs[i] = rt.ToValue(a)
	}

	ret, err := fn(goja.Undefined(), jsArgs...)
	if err != nil {
		if ie, ok := err.(*goja.InterruptedError); ok {
			_ = ie
			return Result{Outcome: OutcomeTimeout}
		}
		return Result{Outcome: OutcomeRuntimeError, Message: err.Error()}
	}

	return Result{Outcome: OutcomeOK, Value: ret.Export()}
}
