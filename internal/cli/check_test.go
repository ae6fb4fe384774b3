package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var harnessScenarios = filepath.Join("..", "harness", "testdata", "scenarios")

const passingScenario = `
name: passing
description: "Literal widening"
types:
  t: { kind: template_mixed, scope: "function:identity", name: T, strategy: parameter, variance: invariant }
  five: { kind: constant_int, value: 5 }
  int: { kind: int }
checks:
  - relation: infer
    left: t
    right: five
    expect_map: { T: int }
`

const failingScenario = `
name: failing
description: "Templates never prove yes against a concrete type"
types:
  t: { kind: template_mixed, scope: "function:identity", name: T, strategy: parameter, variance: invariant }
  int: { kind: int }
checks:
  - relation: super
    left: t
    right: int
    expect: yes
`

func TestCheck_HarnessScenarios(t *testing.T) {
	out, _, err := execute(t, "check", harnessScenarios)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ object_lattice")
	assert.Contains(t, out, "✓ templates")
	assert.Contains(t, out, "✓ variance")
	assert.Contains(t, out, "3 passed, 0 failed, 3 total")
}

func TestCheck_SingleFileWithCache(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cache.db")

	out, _, err := execute(t, "check", filepath.Join(harnessScenarios, "templates.yaml"), "--cache", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")

	out, _, err = execute(t, "cache", "stats", "--cache", db)
	require.NoError(t, err)
	assert.Contains(t, out, "inferences: 3")
}

func TestCheck_Failure(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "failing.yaml", failingScenario)
	writeRecord(t, dir, "passing.yaml", passingScenario)

	out, _, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ failing")
	assert.Contains(t, out, "check 0: super(t, int) = maybe, expected yes")
	assert.Contains(t, out, "✓ passing")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestCheck_Filter(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "failing.yaml", failingScenario)
	writeRecord(t, dir, "passing.yaml", passingScenario)

	out, _, err := execute(t, "check", dir, "--filter", "pass*")
	require.NoError(t, err)
	assert.NotContains(t, out, "failing")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestCheck_JSON(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "failing.yaml", failingScenario)

	out, _, err := execute(t, "check", dir, "--format", "json")
	require.Error(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "failing", resp.Data.Scenarios[0].Name)
}

func TestCheck_GoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	scenario := writeRecord(t, dir, "passing.yaml", passingScenario)

	_, _, err := execute(t, "check", scenario, "--update")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "passing.golden"))
	require.NoError(t, err)
	assert.Equal(t,
		`{"run_token":"test-run-default","scenario_name":"passing","trace":[{"check":0,"left":"t","relation":"infer","result":"{T: int}","right":"five","seq":1}]}`,
		string(golden))

	_, _, err = execute(t, "check", scenario)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "passing.golden"), []byte("{}"), 0o644))
	out, _, err := execute(t, "check", scenario)
	require.Error(t, err)
	assert.Contains(t, out, "trace does not match golden file")
}

func TestCheck_LoadErrorIsScenarioFailure(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "broken.yaml", "name: broken\nunknown_field: 1\n")

	out, _, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken.yaml")
}

func TestCheck_Errors(t *testing.T) {
	out, _, err := execute(t, "check", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "scenario path not found")

	out, _, err = execute(t, "check", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}
