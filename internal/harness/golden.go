package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/testutil"
)

// Snapshot renders the golden-file view of a run as canonical JSON: the
// scenario name, its run token and the trace. Oracle statistics are left
// out because they depend on what the cache already held.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	token := scenario.RunToken
	if token == "" {
		token = testutil.DefaultRunToken
	}

	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		m := map[string]any{
			"seq":      event.Seq,
			"check":    event.Check,
			"relation": event.Relation,
			"left":     event.Left,
			"result":   event.Result,
		}
		if event.Right != "" {
			m["right"] = event.Right
		}
		trace[i] = m
	}
	v, err := record.FromAny(map[string]any{
		"scenario_name": scenario.Name,
		"run_token":     token,
		"trace":         trace,
	})
	if err != nil {
		return nil, err
	}
	return record.MarshalCanonical(v)
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
