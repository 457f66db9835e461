package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxerror "github.com/xgx-io/xgx-error"

	"github.com/joeycumines/go-apr/lang"
)

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, xgxerror.CodeNotFound, xgxerror.CodeOf(err))
}

func TestLoadMalformedTests(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, patientFile), []byte("function f() { return 1; }\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, testsFile), []byte("not json"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Equal(t, xgxerror.CodeInvalid, xgxerror.CodeOf(err))
}

func TestLoadUnparseablePatient(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, patientFile), []byte("function f( { oops\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, testsFile), []byte(`{"function_name":"f","positive_tests":{"weight":1,"cases":[]},"negative_tests":{"weight":10,"cases":[]}}`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Equal(t, xgxerror.CodeInvalid, xgxerror.CodeOf(err))
}

func TestLoadValidBenchmark(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, patientFile), []byte("function f() {\n  return 1;\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, testsFile), []byte(`{"function_name":"f","positive_tests":{"weight":1,"cases":[{"input":[],"expected":1}]},"negative_tests":{"weight":10,"cases":[]}}`), 0o644))

	b, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "f", b.Battery.FunctionName)
	assert.Equal(t, 3, b.Patient.Len())
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := lang.Parse("function f() {\n  return 2;\n}\n")
	require.NoError(t, WriteRepaired(dir, p))
	require.NoError(t, WriteSummary(dir, "hello"))

	got, err := os.ReadFile(filepath.Join(dir, repairedFile))
	require.NoError(t, err)
	assert.Equal(t, p.String(), string(got))
}

func TestScaffoldWritesTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new_bench")
	require.NoError(t, Scaffold(dir, "widget"))

	b, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "widget", b.Battery.FunctionName)
}

func TestScaffoldRejectsEmptyFunctionName(t *testing.T) {
	err := Scaffold(t.TempDir(), "")
	require.Error(t, err)
}
