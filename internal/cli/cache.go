package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gentype/internal/cache"
	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/types"
)

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
		Long: `Inspect or clear the SQLite result cache named by --cache.

Examples:
  gentype cache stats --cache gentype.db
  gentype cache runs --cache gentype.db --format json
  gentype cache show 0192f0c1-... --cache gentype.db
  gentype cache clear --cache gentype.db`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "stats",
		Short:         "Count cached runs, types, relations and inferences",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(f *OutputFormatter, st *cache.Store) error {
				stats, err := st.Stats(context.Background())
				if err != nil {
					return f.Fail(ExitCommandError, ErrCodeCache, "failed to read cache stats", err)
				}
				if rootOpts.Format == "json" {
					return f.Success(stats)
				}
				return f.Success(fmt.Sprintf("runs: %d\ntypes: %d\nrelations: %d\ninferences: %d",
					stats.Runs, stats.Types, stats.Relations, stats.Inferences))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "runs",
		Short:         "List the runs that wrote to the cache",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(f *OutputFormatter, st *cache.Store) error {
				runs, err := st.ReadRuns(context.Background())
				if err != nil {
					return f.Fail(ExitCommandError, ErrCodeCache, "failed to read runs", err)
				}
				if rootOpts.Format == "json" {
					return f.Success(runs)
				}
				if len(runs) == 0 {
					return f.Success("No runs cached.")
				}
				lines := make([]string, len(runs))
				for i, r := range runs {
					lines[i] = fmt.Sprintf("%d\t%s\t%s", r.Seq, r.ID, r.Label)
				}
				return f.Success(strings.Join(lines, "\n"))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "show <run-id>",
		Short:         "List the relations a run wrote, with operands described",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(f *OutputFormatter, st *cache.Store) error {
				return showRun(rootOpts, f, st, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "clear",
		Short:         "Delete every cached row",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(f *OutputFormatter, st *cache.Store) error {
				if err := st.Clear(context.Background()); err != nil {
					return f.Fail(ExitCommandError, ErrCodeCache, "failed to clear cache", err)
				}
				if rootOpts.Format == "json" {
					return f.Success(map[string]bool{"cleared": true})
				}
				return f.Success("Cache cleared.")
			})
		},
	})

	return cmd
}

// RelationView is a cached relation with its operands rehydrated.
type RelationView struct {
	Seq      int64  `json:"seq"`
	Relation string `json:"relation"`
	Left     string `json:"left"`
	Right    string `json:"right"`
	Strict   bool   `json:"strict"`
	Result   string `json:"result"`
}

func showRun(opts *RootOptions, f *OutputFormatter, st *cache.Store, runID string) error {
	ctx := context.Background()
	rels, err := st.ReadRunRelations(ctx, runID)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCache, "failed to read relations", err)
	}

	views := make([]RelationView, 0, len(rels))
	for _, r := range rels {
		left, err := describeCached(ctx, st, r.LeftKey)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeInvalidRecord, "failed to rehydrate cached type", err)
		}
		right, err := describeCached(ctx, st, r.RightKey)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeInvalidRecord, "failed to rehydrate cached type", err)
		}
		views = append(views, RelationView{
			Seq:      r.Seq,
			Relation: r.Relation,
			Left:     left,
			Right:    right,
			Strict:   r.Strict,
			Result:   r.Result.Describe(),
		})
	}

	if opts.Format == "json" {
		return f.Success(views)
	}
	if len(views) == 0 {
		return f.Success(fmt.Sprintf("No relations cached for run %s.", runID))
	}
	lines := make([]string, len(views))
	for i, v := range views {
		lines[i] = fmt.Sprintf("%d\t%s(%s, %s) = %s", v.Seq, v.Relation, v.Left, v.Right, v.Result)
	}
	return f.Success(strings.Join(lines, "\n"))
}

// describeCached decodes the type stored under key. Keys whose record was
// never written are shown as is.
func describeCached(ctx context.Context, st *cache.Store, key string) (string, error) {
	rec, ok, err := st.ReadType(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return key, nil
	}
	typ, err := record.Decoder{}.Decode(rec)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", key, err)
	}
	return typ.Describe(types.VerbosityPrecise), nil
}

// withCache opens the --cache store for fn and closes it afterwards.
func withCache(opts *RootOptions, cmd *cobra.Command, fn func(*OutputFormatter, *cache.Store) error) error {
	f := newFormatter(opts, cmd)
	if opts.CachePath == "" {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, "--cache is required", nil)
	}
	st, err := openCache(opts)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCache, "failed to open cache", err)
	}
	defer st.Close()
	return fn(f, st)
}
