package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalYAML = `
name: minimal
description: "One check"
types:
  int: { kind: int }
checks:
  - relation: describe
    left: int
    expect: int
`

func TestLoadScenario_YAML(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, "minimal.yaml", minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "minimal", s.Name)
	assert.Equal(t, map[string]any{"kind": "int"}, s.Types["int"])
	require.Len(t, s.Checks, 1)
	assert.Equal(t, CheckDescribe, s.Checks[0].Relation)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	content := minimalYAML + "assertions: []\n"

	_, err := LoadScenario(writeScenario(t, "typo.yaml", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_CUE(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "variance.cue"))
	require.NoError(t, err)

	assert.Equal(t, "variance", s.Name)
	assert.Equal(t, "test-run-variance", s.RunToken)
	assert.Equal(t, map[string]any{"kind": "object", "class": "Foo"}, s.Types["foo"])
	assert.Equal(t, []ClassDecl{{Name: "Foo"}, {Name: "Child", Parents: []string{"Foo"}}}, s.Classes)
	assert.Len(t, s.Checks, 9)
}

func TestLoadScenario_CUEKeepsIntegers(t *testing.T) {
	content := `
name:        "cue_ints"
description: "Integer attributes survive the export"
types: five: {kind: "constant_int", value: 5}
checks: [{relation: "describe", left: "five", level: "value", expect: "5"}]
`
	s, err := LoadScenario(writeScenario(t, "ints.cue", content))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestLoadScenario_CUERejectsUnknownFields(t *testing.T) {
	content := `
name:        "typo"
description: "Misspelled field"
types: int: kind: "int"
check: [{relation: "describe", left: "int", expect: "int"}]
`
	_, err := LoadScenario(writeScenario(t, "typo.cue", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode CUE scenario")
}

func TestLoadScenario_CUEMustBeConcrete(t *testing.T) {
	content := `
name:        string
description: "Open name"
types: int: kind: "int"
checks: [{relation: "describe", left: "int", expect: "int"}]
`
	_, err := LoadScenario(writeScenario(t, "open.cue", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not concrete")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "x"
types: { int: { kind: int } }
checks: [{ relation: describe, left: int, expect: int }]
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			content: `
name: x
types: { int: { kind: int } }
checks: [{ relation: describe, left: int, expect: int }]
`,
			wantErr: "description is required",
		},
		{
			name: "no types",
			content: `
name: x
description: "x"
checks: [{ relation: describe, left: int, expect: int }]
`,
			wantErr: "types map is required",
		},
		{
			name: "no checks",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
`,
			wantErr: "checks list is required",
		},
		{
			name: "record without kind",
			content: `
name: x
description: "x"
types: { int: { value: 1 } }
checks: [{ relation: describe, left: int, expect: int }]
`,
			wantErr: "types.int: kind is required",
		},
		{
			name: "undeclared type",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: super, left: int, right: string, expect: yes }]
`,
			wantErr: `right refers to undeclared type "string"`,
		},
		{
			name: "bad trinary",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: super, left: int, right: int, expect: perhaps }]
`,
			wantErr: "checks[0]: expect",
		},
		{
			name: "equals cannot be maybe",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: equals, left: int, right: int, expect: maybe }]
`,
			wantErr: "expect must be yes or no",
		},
		{
			name: "unknown variance",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: variance, variance: sideways, left: int, right: int, expect: yes }]
`,
			wantErr: "checks[0]",
		},
		{
			name: "infer without expect_map",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: infer, left: int, right: int }]
`,
			wantErr: "expect_map is required",
		},
		{
			name: "subtract without expect_type",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: subtract, left: int, right: int }]
`,
			wantErr: "expect_type is required",
		},
		{
			name: "bad level",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: describe, left: int, level: loud, expect: int }]
`,
			wantErr: "unknown verbosity",
		},
		{
			name: "unknown relation",
			content: `
name: x
description: "x"
types: { int: { kind: int } }
checks: [{ relation: overlaps, left: int, right: int }]
`,
			wantErr: `unknown relation "overlaps"`,
		},
		{
			name: "class without name",
			content: `
name: x
description: "x"
classes: [{ parents: [Foo] }]
types: { int: { kind: int } }
checks: [{ relation: describe, left: int, expect: int }]
`,
			wantErr: "classes[0]: name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, "s.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarios_Directory(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"object_lattice", "templates", "variance"}, names)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
