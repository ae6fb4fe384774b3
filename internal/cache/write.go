package cache

import (
	"context"
	"fmt"

	"github.com/roach88/gentype/internal/record"
)

// WriteRun registers a run. The run's seq is one past the highest existing
// seq. Writing the same ID twice is a no-op.
func (s *Store) WriteRun(ctx context.Context, id, label string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seq, label)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs), ?)
		ON CONFLICT(id) DO NOTHING
	`, id, label)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteType stores a canonical type record under key.
func (s *Store) WriteType(ctx context.Context, key string, rec record.Object) error {
	kind, ok := rec[record.KeyKind].(record.String)
	if !ok {
		return fmt.Errorf("write type: record has no kind")
	}
	data, err := record.MarshalCanonical(rec)
	if err != nil {
		return fmt.Errorf("write type: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO types (key, kind, record)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO NOTHING
	`, key, string(kind), string(data))
	if err != nil {
		return fmt.Errorf("write type: %w", err)
	}
	return nil
}

// WriteRelation stores a relational result. Both operand records and the
// run must already exist.
func (s *Store) WriteRelation(ctx context.Context, r Relation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO relations
		(key, relation, left_key, right_key, strict, result, run_id, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		r.Key,
		r.Relation,
		r.LeftKey,
		r.RightKey,
		r.Strict,
		r.Result.Describe(),
		r.RunID,
		r.Seq,
	)
	if err != nil {
		return fmt.Errorf("write relation: %w", err)
	}
	return nil
}

// WriteInference stores an inference result.
func (s *Store) WriteInference(ctx context.Context, inf Inference) error {
	data, err := record.MarshalCanonical(inf.Result)
	if err != nil {
		return fmt.Errorf("write inference: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO inferences
		(key, template_key, received_key, result, run_id, seq)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		inf.Key,
		inf.TemplateKey,
		inf.ReceivedKey,
		string(data),
		inf.RunID,
		inf.Seq,
	)
	if err != nil {
		return fmt.Errorf("write inference: %w", err)
	}
	return nil
}
