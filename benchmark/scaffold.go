package benchmark

import (
	"fmt"
	"os"
	"path/filepath"

	xgxerror "github.com/xgx-io/xgx-error"

	"github.com/joeycumines/go-apr/battery"
)

// Scaffold creates a new benchmark directory at dir, writing a minimal
// patient.js template (a single function named functionName) and a
// tests.json template with empty case lists. It is the non-interactive
// core of the original create_new_benchmark.py wizard — a CLI front end
// out of this package's scope is expected to wrap it with prompts for the
// actual patient source and test cases.
func Scaffold(dir, functionName string) error {
	if functionName == "" {
		return xgxerror.Invalid("function_name", "must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return xgxerror.Internal(err).Ctx("creating benchmark directory", "dir", dir)
	}

	patientSrc := fmt.Sprintf("function %s() {\n  // TODO: implement the buggy behaviour to repair\n}\n", functionName)
	if err := write(filepath.Join(dir, patientFile), patientSrc); err != nil {
		return err
	}

	template := &battery.Battery{
		FunctionName: functionName,
		PositiveW:    1,
		NegativeW:    10,
	}
	doc, err := battery.Encode(template)
	if err != nil {
		return xgxerror.Internal(err).Ctx("encoding tests.json template")
	}
	if err := write(filepath.Join(dir, testsFile), string(doc)); err != nil {
		return err
	}

	return nil
}
