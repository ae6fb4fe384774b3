package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	recObject      = `{"kind":"object_without_class"}`
	recObjectNoFoo = `{"kind":"object_without_class","subtractedType":{"kind":"object","class":"Foo"}}`
	recFoo         = `{"kind":"object","class":"Foo","ancestors":[]}`
	recInt         = `{"kind":"int"}`
	recFive        = `{"kind":"constant_int","value":5}`
	recTemplate    = `{"kind":"template_mixed","name":"T","scope":"function:identity","strategy":"parameter","variance":"invariant"}`
)

// writeRecord writes a record file into dir and returns its path.
func writeRecord(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
