package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/types"
)

// DescribeOptions holds flags for the describe command.
type DescribeOptions struct {
	*RootOptions
	Level string
}

// DescribeResult is the JSON payload of the describe command.
type DescribeResult struct {
	Kind        string `json:"kind"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Key         string `json:"key"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DescribeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "describe <record.json>",
		Short: "Render a type record",
		Long: `Decode a type record and print its description.

Levels:
  type_only - literals as their family ("int")
  value     - literal values ("5")
  precise   - exclusions and template scopes ("object~Foo")`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Level, "level", "value", "verbosity (type_only|value|precise)")

	return cmd
}

func runDescribe(opts *DescribeOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	level, err := types.ParseVerbosity(opts.Level)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, err.Error(), nil)
	}
	t, err := LoadType(path)
	if err != nil {
		return failLoad(f, err)
	}
	key, err := record.Key(t)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidRecord, "failed to key record", err)
	}
	f.VerboseLog("%s: kind=%s key=%s", path, t.Kind(), key)

	if opts.Format == "json" {
		return f.Success(DescribeResult{
			Kind:        string(t.Kind()),
			Level:       level.String(),
			Description: t.Describe(level),
			Key:         key,
		})
	}
	return f.Success(t.Describe(level))
}
