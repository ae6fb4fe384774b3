package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/gentype/internal/oracle"
	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/types"
)

// InferResult is the JSON payload of the infer command.
type InferResult struct {
	Template string        `json:"template"`
	Received string        `json:"received"`
	Bindings record.Object `json:"bindings"`
	RunID    string        `json:"run_id"`
}

// NewInferCommand creates the infer command.
func NewInferCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer <template.json> <received.json>",
		Short: "Infer template bindings from a received type",
		Long: `Unify a template parameter record with a received type record and print
the inferred bindings, e.g. {T: int}. Literal types are widened.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runInfer(opts *RootOptions, templatePath, receivedPath string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	t, err := LoadType(templatePath)
	if err != nil {
		return failLoad(f, err)
	}
	template, ok := t.(types.TemplateType)
	if !ok {
		return f.Fail(ExitCommandError, ErrCodeInvalidRecord,
			templatePath+": not a template parameter (kind "+string(t.Kind())+")", nil)
	}
	received, err := LoadType(receivedPath)
	if err != nil {
		return failLoad(f, err)
	}

	st, err := openCache(opts)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCache, "failed to open cache", err)
	}
	if st != nil {
		defer st.Close()
	}

	o := oracle.New(
		oracle.WithCache(st),
		oracle.WithLogger(newLogger(opts, cmd)),
		oracle.WithLabel("infer"),
	)
	bindings, err := o.Infer(context.Background(), template, received)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeQuery, "inference failed", err)
	}

	if opts.Format == "json" {
		rec, err := record.EncodeMap(bindings)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeInvalidRecord, "failed to encode bindings", err)
		}
		return f.Success(InferResult{
			Template: template.Describe(types.VerbosityPrecise),
			Received: received.Describe(types.VerbosityPrecise),
			Bindings: rec,
			RunID:    o.RunID(),
		})
	}
	return f.Success(bindings.Describe(types.VerbosityValue))
}
