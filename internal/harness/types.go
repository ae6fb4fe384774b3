package harness

import "github.com/roach88/gentype/internal/oracle"

// TraceEvent records one evaluated check.
type TraceEvent struct {
	Seq      int64  `json:"seq"`
	Check    int    `json:"check"`
	Relation string `json:"relation"`
	Left     string `json:"left"`
	Right    string `json:"right,omitempty"`
	Result   string `json:"result"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every check matched its expectation.
	Pass bool `json:"pass"`

	// Trace holds one event per check, in evaluation order.
	Trace []TraceEvent `json:"trace"`

	// Errors describes every mismatched check. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Stats reports how the oracle answered the relational checks.
	Stats oracle.Stats `json:"stats"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an evaluated check.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
