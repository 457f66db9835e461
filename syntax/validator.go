// Package syntax is the single authority deciding whether a line sequence
// parses as a legal program in the patient language (JavaScript, embedded
// via goja). It never executes the program under test — only the parser
// front end runs.
package syntax

import (
	"github.com/dop251/goja"

	"github.com/joeycumines/go-apr/lang"
)

// Valid reports whether p's concatenation parses as a syntactically valid
// JavaScript program. goja.Compile runs only the parser and bytecode
// compiler; it never executes a single statement, satisfying the
// validator's "never executes the program" contract.
func Valid(p lang.Program) bool {
	_, err := goja.Compile("candidate.js", p.String(), true)
	return err == nil
}

// Check is Valid's diagnostic counterpart, returning the compile error (if
// any) for callers — such as benchmark loading — that need to report why a
// patient is unparseable rather than a bare boolean.
func Check(p lang.Program) error {
	_, err := goja.Compile("candidate.js", p.String(), true)
	return err
}
