package report

import (
	xgxerror "github.com/xgx-io/xgx-error"
)

// FailureMode is one of the three control-surface failure modes spec.md §6
// names; everything else a run might fail on is captured as a low fitness,
// not a FailureMode.
type FailureMode string

const (
	FailureNone               FailureMode = ""
	FailureBenchmarkNotFound  FailureMode = "benchmark_not_found"
	FailureTestsMalformed     FailureMode = "tests_malformed"
	FailurePatientUnparseable FailureMode = "patient_unparseable"
)

// ModeOf classifies err by the xgxerror code and context field attached at
// construction (see benchmark.Load, which builds these with
// xgxerror.NotFound / xgxerror.Invalid("tests.json", ...) /
// xgxerror.Invalid("patient", ...), and apr.Run, which returns them). Errors carrying no recognised code, or
// nil, map to FailureNone.
func ModeOf(err error) FailureMode {
	if err == nil {
		return FailureNone
	}
	switch xgxerror.CodeOf(err) {
	case xgxerror.CodeNotFound:
		return FailureBenchmarkNotFound
	case xgxerror.CodeInvalid:
		if xe, ok := err.(xgxerror.Error); ok {
			if field, _ := xe.Context()["field"].(string); field == "patient" {
				return FailurePatientUnparseable
			}
		}
		return FailureTestsMalformed
	}
	return FailureNone
}
