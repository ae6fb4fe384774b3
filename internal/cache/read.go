package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/trinary"
)

// ReadType returns the record stored under key. ok is false when absent.
func (s *Store) ReadType(ctx context.Context, key string) (rec record.Object, ok bool, err error) {
	var data string
	err = s.db.QueryRowContext(ctx, `SELECT record FROM types WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read type: %w", err)
	}
	rec, err = record.ParseObject([]byte(data))
	if err != nil {
		return nil, false, fmt.Errorf("read type %s: %w", key, err)
	}
	return rec, true, nil
}

// ReadRelation returns the relation stored under key. ok is false when absent.
func (s *Store) ReadRelation(ctx context.Context, key string) (Relation, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, relation, left_key, right_key, strict, result, run_id, seq
		FROM relations
		WHERE key = ?
	`, key)
	r, err := scanRelation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Relation{}, false, nil
	}
	if err != nil {
		return Relation{}, false, err
	}
	return r, true, nil
}

// ReadRunRelations returns every relation written by a run, ordered by
// seq ASC, key ASC COLLATE BINARY. Returns an empty slice, not nil, when the
// run wrote nothing.
func (s *Store) ReadRunRelations(ctx context.Context, runID string) ([]Relation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, relation, left_key, right_key, strict, result, run_id, seq
		FROM relations
		WHERE run_id = ?
		ORDER BY seq ASC, key COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query relations: %w", err)
	}
	defer rows.Close()

	relations := []Relation{}
	for rows.Next() {
		r, err := scanRelation(rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relations: %w", err)
	}
	return relations, nil
}

// ReadInference returns the inference stored under key. ok is false when absent.
func (s *Store) ReadInference(ctx context.Context, key string) (Inference, bool, error) {
	var (
		inf    Inference
		result string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT key, template_key, received_key, result, run_id, seq
		FROM inferences
		WHERE key = ?
	`, key).Scan(&inf.Key, &inf.TemplateKey, &inf.ReceivedKey, &result, &inf.RunID, &inf.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return Inference{}, false, nil
	}
	if err != nil {
		return Inference{}, false, fmt.Errorf("read inference: %w", err)
	}
	inf.Result, err = record.ParseObject([]byte(result))
	if err != nil {
		return Inference{}, false, fmt.Errorf("read inference %s: %w", key, err)
	}
	return inf, true, nil
}

// ReadRuns returns every run ordered by seq.
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, label FROM runs ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seq, &r.Label); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRelation(row scanner) (Relation, error) {
	var (
		r      Relation
		result string
	)
	if err := row.Scan(&r.Key, &r.Relation, &r.LeftKey, &r.RightKey, &r.Strict, &result, &r.RunID, &r.Seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Relation{}, err
		}
		return Relation{}, fmt.Errorf("scan relation: %w", err)
	}
	logic, err := trinary.Parse(result)
	if err != nil {
		return Relation{}, fmt.Errorf("relation %s: %w", r.Key, err)
	}
	r.Result = logic
	return r, nil
}
