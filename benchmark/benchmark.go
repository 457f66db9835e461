// Package benchmark implements the on-disk benchmark directory layout
// spec.md §6 defines: reading patient.js/tests.json, and writing
// repaired_solution.js/best_attempt.js/report_summary.txt.
package benchmark

import (
	"os"
	"path/filepath"

	xgxerror "github.com/xgx-io/xgx-error"

	"github.com/joeycumines/go-apr/battery"
	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/syntax"
)

const (
	patientFile  = "patient.js"
	testsFile    = "tests.json"
	repairedFile = "repaired_solution.js"
	bestFile     = "best_attempt.js"
	summaryFile  = "report_summary.txt"
)

// Benchmark is a loaded benchmark directory: the patient program plus its
// test battery.
type Benchmark struct {
	Dir     string
	Name    string
	Patient lang.Program
	Battery *battery.Battery
}

// Load reads dir/patient.js and dir/tests.json, validating both. Errors are
// built with xgxerror so apr.Run can surface the exact failure mode spec.md
// §6 names: missing directory → benchmark_not_found, malformed tests.json →
// tests_malformed, unparseable patient → patient_unparseable.
func Load(dir string) (*Benchmark, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, xgxerror.NotFound("benchmark", dir)
	}

	patientPath := filepath.Join(dir, patientFile)
	src, err := os.ReadFile(patientPath)
	if err != nil {
		return nil, xgxerror.NotFound("benchmark", dir).Ctx("missing patient.js", "path", patientPath)
	}
	patient := lang.Parse(string(src))
	if err := syntax.Check(patient); err != nil {
		return nil, xgxerror.Invalid("patient", err.Error()).WithStack()
	}

	testsPath := filepath.Join(dir, testsFile)
	raw, err := os.ReadFile(testsPath)
	if err != nil {
		return nil, xgxerror.Invalid("tests.json", "missing file").With("path", testsPath)
	}
	b, err := battery.Parse(raw)
	if err != nil {
		return nil, xgxerror.Invalid("tests.json", err.Error())
	}

	return &Benchmark{
		Dir:     dir,
		Name:    filepath.Base(dir),
		Patient: patient,
		Battery: b,
	}, nil
}

// WriteRepaired writes the successful variant to repaired_solution.js.
func WriteRepaired(dir string, p lang.Program) error {
	return write(filepath.Join(dir, repairedFile), p.String())
}

// WriteBestAttempt writes the best-scoring (but unsuccessful) variant to
// best_attempt.js.
func WriteBestAttempt(dir string, p lang.Program) error {
	return write(filepath.Join(dir, bestFile), p.String())
}

// WriteSummary writes the rendered report_summary.txt text.
func WriteSummary(dir string, text string) error {
	return write(filepath.Join(dir, summaryFile), text)
}

func write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return xgxerror.Internal(err).Ctx("writing benchmark output", "path", path)
	}
	return nil
}
