package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/gentype/internal/oracle"
	"github.com/roach88/gentype/internal/types"
)

// RelateOptions holds flags for the relate command.
type RelateOptions struct {
	*RootOptions
	Relation string
	Strict   bool
}

// RelateResult is the JSON payload of the relate command.
type RelateResult struct {
	Relation string       `json:"relation"`
	Left     string       `json:"left"`
	Right    string       `json:"right"`
	Strict   bool         `json:"strict"`
	Result   string       `json:"result"`
	RunID    string       `json:"run_id"`
	Stats    oracle.Stats `json:"stats"`
}

// NewRelateCommand creates the relate command.
func NewRelateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RelateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "relate <left.json> <right.json>",
		Short: "Evaluate a relation between two type records",
		Long: `Evaluate super, sub or accepts between two type records and print
yes, no or maybe. With --cache the answer is read from and written to the
result cache.

Examples:
  gentype relate object.json foo.json
  gentype relate t.json int.json --relation accepts --strict
  gentype relate t.json int.json --cache gentype.db --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Relation, "relation", "r", string(oracle.RelationSuper), "relation (super|sub|accepts)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "strict acceptance (accepts only)")

	return cmd
}

func runRelate(opts *RelateOptions, leftPath, rightPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	relation, err := oracle.ParseRelation(opts.Relation)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, err.Error(), nil)
	}
	left, err := LoadType(leftPath)
	if err != nil {
		return failLoad(f, err)
	}
	right, err := LoadType(rightPath)
	if err != nil {
		return failLoad(f, err)
	}

	st, err := openCache(opts.RootOptions)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCache, "failed to open cache", err)
	}
	if st != nil {
		defer st.Close()
	}

	o := oracle.New(
		oracle.WithCache(st),
		oracle.WithLogger(newLogger(opts.RootOptions, cmd)),
		oracle.WithLabel("relate"),
	)
	result, err := o.Relate(context.Background(), relation, left, right, opts.Strict)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeQuery, "query failed", err)
	}

	if opts.Format == "json" {
		return f.Success(RelateResult{
			Relation: string(relation),
			Left:     left.Describe(types.VerbosityPrecise),
			Right:    right.Describe(types.VerbosityPrecise),
			Strict:   opts.Strict && relation == oracle.RelationAccepts,
			Result:   result.Describe(),
			RunID:    o.RunID(),
			Stats:    o.Stats(),
		})
	}
	return f.Success(result.Describe())
}
