package cache

import (
	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/trinary"
)

// Run identifies one oracle run. Seq is assigned by the store.
type Run struct {
	ID    string `json:"id"`
	Seq   int64  `json:"seq"`
	Label string `json:"label"`
}

// Relation is a cached relational result.
type Relation struct {
	Key      string        `json:"key"`
	Relation string        `json:"relation"`
	LeftKey  string        `json:"left_key"`
	RightKey string        `json:"right_key"`
	Strict   bool          `json:"strict"`
	Result   trinary.Logic `json:"result"`
	RunID    string        `json:"run_id"`
	Seq      int64         `json:"seq"`
}

// Inference is a cached inference result. Result maps template names to
// type records.
type Inference struct {
	Key         string        `json:"key"`
	TemplateKey string        `json:"template_key"`
	ReceivedKey string        `json:"received_key"`
	Result      record.Object `json:"result"`
	RunID       string        `json:"run_id"`
	Seq         int64         `json:"seq"`
}
