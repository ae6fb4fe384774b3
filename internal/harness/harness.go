package harness

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/roach88/gentype/internal/cache"
	"github.com/roach88/gentype/internal/oracle"
	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/testutil"
	"github.com/roach88/gentype/internal/trinary"
	"github.com/roach88/gentype/internal/types"
)

// Harness evaluates the checks of one scenario.
type Harness struct {
	oracle *oracle.Oracle
	clock  *testutil.DeterministicClock
	types  map[string]types.Type
	logger *slog.Logger
}

// Option configures a scenario run.
type Option func(*runConfig)

type runConfig struct {
	store  *cache.Store
	logger *slog.Logger
}

// WithCache runs the scenario against an existing cache instead of a fresh
// in-memory one. The caller keeps ownership of the store.
func WithCache(s *cache.Store) Option {
	return func(c *runConfig) { c.store = s }
}

// WithLogger sets the logger handed to the oracle.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// Run executes a scenario and returns its result.
//
// Execution flow:
//  1. Open a fresh in-memory cache unless WithCache is given
//  2. Register the scenario's classes and decode its named types
//  3. Evaluate every check in order, recording a trace event for each
//
// Expectation mismatches land in Result.Errors. A returned error means the
// scenario itself could not run: a type record that does not decode or a
// cache failure.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = testutil.DiscardLogger()
	}
	if cfg.store == nil {
		st, err := cache.Open(":memory:")
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory cache: %w", err)
		}
		defer st.Close()
		cfg.store = st
	}

	classes := types.NewClassRegistry()
	for _, c := range scenario.Classes {
		if err := classes.Define(c.Name, c.Parents...); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
	}
	named, err := decodeTypes(scenario.Types, classes)
	if err != nil {
		return nil, err
	}

	h := &Harness{
		oracle: oracle.New(
			oracle.WithCache(cfg.store),
			oracle.WithLogger(cfg.logger),
			oracle.WithClasses(classes),
			oracle.WithClock(testutil.NewDeterministicClock()),
			oracle.WithRunTokens(testutil.NewFixedRunGenerator(scenario.RunToken)),
			oracle.WithLabel(scenario.Name),
		),
		clock:  testutil.NewDeterministicClock(),
		types:  named,
		logger: cfg.logger,
	}

	ctx := context.Background()
	result := NewResult()
	for i, check := range scenario.Checks {
		got, pass, err := h.evaluate(ctx, check)
		if err != nil {
			return nil, fmt.Errorf("check %d (%s): %w", i, check.Relation, err)
		}
		result.AddTrace(TraceEvent{
			Seq:      h.clock.Next(),
			Check:    i,
			Relation: check.Relation,
			Left:     check.Left,
			Right:    check.Right,
			Result:   got,
		})
		if !pass {
			result.AddError(fmt.Sprintf("check %d: %s(%s, %s) = %s, expected %s",
				i, check.Relation, check.Left, check.Right, got, expectation(check)))
		}
	}
	result.Stats = h.oracle.Stats()

	h.logger.Debug("scenario complete",
		"scenario", scenario.Name,
		"checks", len(scenario.Checks),
		"pass", result.Pass,
	)
	return result, nil
}

// decodeTypes turns every attribute record into a type, in name order so
// that the first reported error is stable.
func decodeTypes(records map[string]map[string]any, classes *types.ClassRegistry) (map[string]types.Type, error) {
	decoder := record.Decoder{Classes: classes}
	out := make(map[string]types.Type, len(records))
	for _, name := range slices.Sorted(maps.Keys(records)) {
		raw := make(map[string]any, len(records[name]))
		maps.Copy(raw, records[name])
		v, err := record.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("types.%s: %w", name, err)
		}
		t, err := decoder.Decode(v.(record.Object))
		if err != nil {
			return nil, fmt.Errorf("types.%s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// evaluate returns the rendered outcome of a check and whether it matched.
func (h *Harness) evaluate(ctx context.Context, c Check) (string, bool, error) {
	left, right := h.types[c.Left], h.types[c.Right]

	switch c.Relation {
	case CheckSuper, CheckSub, CheckAccepts:
		got, err := h.oracle.Relate(ctx, oracle.Relation(c.Relation), left, right, c.Strict)
		if err != nil {
			return "", false, err
		}
		return got.Describe(), matchesLogic(got, c.Expect), nil

	case CheckEquals:
		got := trinary.FromBool(left.Equals(right))
		return got.Describe(), matchesLogic(got, c.Expect), nil

	case CheckVariance:
		v, err := types.ParseVariance(c.Variance)
		if err != nil {
			return "", false, err
		}
		got := trinary.FromBool(v.IsValidVariance(left, right))
		return got.Describe(), matchesLogic(got, c.Expect), nil

	case CheckSubtract:
		sub, ok := left.(types.SubtractableType)
		if !ok {
			return "not subtractable", false, nil
		}
		got := sub.Subtract(right)
		return got.Describe(types.VerbosityPrecise), got.Equals(h.types[c.ExpectType]), nil

	case CheckInfer:
		tt, ok := left.(types.TemplateType)
		if !ok {
			return "not a template", false, nil
		}
		got, err := h.oracle.Infer(ctx, tt, right)
		if err != nil {
			return "", false, err
		}
		want := make(map[string]types.Type, len(c.ExpectMap))
		for name, typeName := range c.ExpectMap {
			want[name] = h.types[typeName]
		}
		return got.Describe(types.VerbosityValue), got.Equals(types.NewTemplateTypeMap(want)), nil

	case CheckDescribe:
		level, err := types.ParseVerbosity(c.Level)
		if err != nil {
			return "", false, err
		}
		got := left.Describe(level)
		return got, got == c.Expect, nil

	case CheckArgument:
		tt, ok := left.(types.TemplateType)
		if !ok {
			return "not a template", false, nil
		}
		arg := tt.ToArgument()
		got := fmt.Sprintf("%s %s", arg.Describe(types.VerbosityPrecise), arg.Variance())
		return got, got == c.Expect, nil
	}
	return "", false, fmt.Errorf("unknown relation %q", c.Relation)
}

func matchesLogic(got trinary.Logic, expect string) bool {
	want, err := trinary.Parse(expect)
	return err == nil && got == want
}

func expectation(c Check) string {
	switch c.Relation {
	case CheckSubtract:
		return c.ExpectType
	case CheckInfer:
		parts := make([]string, 0, len(c.ExpectMap))
		for _, name := range slices.Sorted(maps.Keys(c.ExpectMap)) {
			parts = append(parts, name+": "+c.ExpectMap[name])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return c.Expect
}
