package harness

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// parseCUE evaluates a single-file CUE scenario and decodes the concrete
// result. The file may use CUE's own features (definitions, references,
// defaults) as long as it evaluates to a concrete scenario.
func parseCUE(path string, data []byte) (*Scenario, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE scenario is not concrete: %w", err)
	}
	data, err := value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export CUE scenario: %w", err)
	}
	return decodeStrictJSON(data)
}
