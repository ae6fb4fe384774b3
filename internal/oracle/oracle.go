package oracle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/roach88/gentype/internal/cache"
	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/trinary"
	"github.com/roach88/gentype/internal/types"
)

// Relation names a binary query the oracle answers.
type Relation string

const (
	RelationSuper   Relation = "super"
	RelationSub     Relation = "sub"
	RelationAccepts Relation = "accepts"
)

// ParseRelation maps a relation name to a Relation.
func ParseRelation(s string) (Relation, error) {
	switch r := Relation(s); r {
	case RelationSuper, RelationSub, RelationAccepts:
		return r, nil
	}
	return "", &QueryError{
		Code:     ErrCodeUnknownRelation,
		Message:  "relation must be super, sub or accepts",
		Relation: s,
	}
}

// Stats counts how queries were answered.
type Stats struct {
	MemoHits  int64 `json:"memo_hits"`
	CacheHits int64 `json:"cache_hits"`
	Misses    int64 `json:"misses"`
}

// Oracle evaluates type relations and template inference, remembering every
// answer. The zero value is not usable; construct with New.
type Oracle struct {
	store   *cache.Store
	logger  *slog.Logger
	clock   Sequencer
	decoder record.Decoder
	runID   string
	label   string

	mu         sync.RWMutex
	relations  map[string]trinary.Logic
	inferences map[string]types.TemplateTypeMap

	runMu      sync.Mutex
	runWritten bool

	memoHits  atomic.Int64
	cacheHits atomic.Int64
	misses    atomic.Int64
}

// Option configures an Oracle.
type Option func(*config)

type config struct {
	store   *cache.Store
	logger  *slog.Logger
	tokens  RunTokenGenerator
	classes *types.ClassRegistry
	clock   Sequencer
	label   string
}

// Sequencer issues the logical seq stamped on cached results.
// Implemented by Clock and testutil.DeterministicClock.
type Sequencer interface {
	Next() int64
}

// WithCache enables read-through and write-through persistence.
func WithCache(s *cache.Store) Option {
	return func(c *config) { c.store = s }
}

// WithLogger sets the logger for per-query debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithRunTokens sets the generator for the run identifier.
// Default: UUIDv7Generator.
func WithRunTokens(g RunTokenGenerator) Option {
	return func(c *config) { c.tokens = g }
}

// WithClasses sets the registry used to decode cached inference results.
func WithClasses(r *types.ClassRegistry) Option {
	return func(c *config) { c.classes = r }
}

// WithClock sets the seq source. Default: a fresh Clock.
func WithClock(s Sequencer) Option {
	return func(c *config) { c.clock = s }
}

// WithLabel attaches a human-readable label to the run.
func WithLabel(label string) Option {
	return func(c *config) { c.label = label }
}

// New creates an oracle for one run.
func New(opts ...Option) *Oracle {
	cfg := config{tokens: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.clock == nil {
		cfg.clock = NewClock()
	}
	runID := cfg.tokens.Generate()
	return &Oracle{
		store:      cfg.store,
		logger:     cfg.logger.With("run", runID),
		clock:      cfg.clock,
		decoder:    record.Decoder{Classes: cfg.classes},
		runID:      runID,
		label:      cfg.label,
		relations:  make(map[string]trinary.Logic),
		inferences: make(map[string]types.TemplateTypeMap),
	}
}

// RunID returns the run identifier stamped on everything this oracle writes.
func (o *Oracle) RunID() string { return o.runID }

// Stats returns a snapshot of the hit counters.
func (o *Oracle) Stats() Stats {
	return Stats{
		MemoHits:  o.memoHits.Load(),
		CacheHits: o.cacheHits.Load(),
		Misses:    o.misses.Load(),
	}
}

// IsSuperTypeOf reports whether every value of b is a value of a.
func (o *Oracle) IsSuperTypeOf(ctx context.Context, a, b types.Type) (trinary.Logic, error) {
	return o.Relate(ctx, RelationSuper, a, b, false)
}

// IsSubTypeOf reports whether every value of a is a value of b.
func (o *Oracle) IsSubTypeOf(ctx context.Context, a, b types.Type) (trinary.Logic, error) {
	return o.Relate(ctx, RelationSub, a, b, false)
}

// Accepts reports whether a value of b may be passed where a is expected.
func (o *Oracle) Accepts(ctx context.Context, a, b types.Type, strict bool) (trinary.Logic, error) {
	return o.Relate(ctx, RelationAccepts, a, b, strict)
}

// Relate answers relation between left and right. strict only matters for
// RelationAccepts and is ignored otherwise.
func (o *Oracle) Relate(ctx context.Context, relation Relation, left, right types.Type, strict bool) (trinary.Logic, error) {
	if _, err := ParseRelation(string(relation)); err != nil {
		return trinary.No(), err
	}
	strict = strict && relation == RelationAccepts

	leftRec, leftKey, err := encodeOperand(relation, left)
	if err != nil {
		return trinary.No(), err
	}
	rightRec, rightKey, err := encodeOperand(relation, right)
	if err != nil {
		return trinary.No(), err
	}
	key, err := record.RelationKey(string(relation), leftKey, rightKey, strict)
	if err != nil {
		return trinary.No(), &QueryError{Code: ErrCodeEncodeFailed, Message: "relation key", Relation: string(relation), Err: err}
	}

	o.mu.RLock()
	result, ok := o.relations[key]
	o.mu.RUnlock()
	if ok {
		o.memoHits.Add(1)
		o.logger.Debug("relation", "relation", relation, "key", key, "result", result, "source", "memo")
		return result, nil
	}

	if o.store != nil {
		cached, found, err := o.store.ReadRelation(ctx, key)
		if err != nil {
			return trinary.No(), cacheError(relation, err)
		}
		if found {
			o.remember(key, cached.Result)
			o.cacheHits.Add(1)
			o.logger.Debug("relation", "relation", relation, "key", key, "result", cached.Result, "source", "cache")
			return cached.Result, nil
		}
	}

	switch relation {
	case RelationSuper:
		result = left.IsSuperTypeOf(right)
	case RelationSub:
		result = left.IsSubTypeOf(right)
	default:
		result = left.Accepts(right, strict)
	}
	o.misses.Add(1)
	o.remember(key, result)
	o.logger.Debug("relation",
		"relation", relation,
		"left", left.Describe(types.VerbosityPrecise),
		"right", right.Describe(types.VerbosityPrecise),
		"strict", strict,
		"result", result,
		"source", "computed",
	)

	if o.store == nil {
		return result, nil
	}
	if err := o.persistOperands(ctx, relation, leftKey, leftRec, rightKey, rightRec); err != nil {
		return trinary.No(), err
	}
	err = o.store.WriteRelation(ctx, cache.Relation{
		Key:      key,
		Relation: string(relation),
		LeftKey:  leftKey,
		RightKey: rightKey,
		Strict:   strict,
		Result:   result,
		RunID:    o.runID,
		Seq:      o.clock.Next(),
	})
	if err != nil {
		return trinary.No(), cacheError(relation, err)
	}
	return result, nil
}

// Infer unifies template with received and returns the bindings.
func (o *Oracle) Infer(ctx context.Context, template types.TemplateType, received types.Type) (types.TemplateTypeMap, error) {
	const relation = Relation("infer")

	templateRec, templateKey, err := encodeOperand(relation, template)
	if err != nil {
		return types.TemplateTypeMap{}, err
	}
	receivedRec, receivedKey, err := encodeOperand(relation, received)
	if err != nil {
		return types.TemplateTypeMap{}, err
	}
	key, err := record.InferenceKey(templateKey, receivedKey)
	if err != nil {
		return types.TemplateTypeMap{}, &QueryError{Code: ErrCodeEncodeFailed, Message: "inference key", Relation: string(relation), Err: err}
	}

	o.mu.RLock()
	result, ok := o.inferences[key]
	o.mu.RUnlock()
	if ok {
		o.memoHits.Add(1)
		o.logger.Debug("inference", "key", key, "result", result.Describe(types.VerbosityValue), "source", "memo")
		return result, nil
	}

	if o.store != nil {
		cached, found, err := o.store.ReadInference(ctx, key)
		if err != nil {
			return types.TemplateTypeMap{}, cacheError(relation, err)
		}
		if found {
			result, err := o.decoder.DecodeMap(cached.Result)
			if err != nil {
				return types.TemplateTypeMap{}, &QueryError{Code: ErrCodeDecodeFailed, Message: "cached inference " + key, Relation: string(relation), Err: err}
			}
			o.rememberInference(key, result)
			o.cacheHits.Add(1)
			o.logger.Debug("inference", "key", key, "result", result.Describe(types.VerbosityValue), "source", "cache")
			return result, nil
		}
	}

	result = template.InferTemplateTypes(received)
	o.misses.Add(1)
	o.rememberInference(key, result)
	o.logger.Debug("inference",
		"template", template.Describe(types.VerbosityPrecise),
		"received", received.Describe(types.VerbosityPrecise),
		"result", result.Describe(types.VerbosityValue),
		"source", "computed",
	)

	if o.store == nil {
		return result, nil
	}
	resultRec, err := record.EncodeMap(result)
	if err != nil {
		return types.TemplateTypeMap{}, &QueryError{Code: ErrCodeEncodeFailed, Message: "inference result", Relation: string(relation), Err: err}
	}
	if err := o.persistOperands(ctx, relation, templateKey, templateRec, receivedKey, receivedRec); err != nil {
		return types.TemplateTypeMap{}, err
	}
	err = o.store.WriteInference(ctx, cache.Inference{
		Key:         key,
		TemplateKey: templateKey,
		ReceivedKey: receivedKey,
		Result:      resultRec,
		RunID:       o.runID,
		Seq:         o.clock.Next(),
	})
	if err != nil {
		return types.TemplateTypeMap{}, cacheError(relation, err)
	}
	return result, nil
}

func (o *Oracle) remember(key string, result trinary.Logic) {
	o.mu.Lock()
	o.relations[key] = result
	o.mu.Unlock()
}

func (o *Oracle) rememberInference(key string, result types.TemplateTypeMap) {
	o.mu.Lock()
	o.inferences[key] = result
	o.mu.Unlock()
}

// persistOperands registers the run on first use and stores both operand
// records, which cached results reference by key.
func (o *Oracle) persistOperands(ctx context.Context, relation Relation, leftKey string, leftRec record.Object, rightKey string, rightRec record.Object) error {
	if err := o.ensureRun(ctx); err != nil {
		return cacheError(relation, err)
	}
	if err := o.store.WriteType(ctx, leftKey, leftRec); err != nil {
		return cacheError(relation, err)
	}
	if err := o.store.WriteType(ctx, rightKey, rightRec); err != nil {
		return cacheError(relation, err)
	}
	return nil
}

func (o *Oracle) ensureRun(ctx context.Context) error {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	if o.runWritten {
		return nil
	}
	if err := o.store.WriteRun(ctx, o.runID, o.label); err != nil {
		return err
	}
	o.runWritten = true
	return nil
}

func encodeOperand(relation Relation, t types.Type) (record.Object, string, error) {
	if t == nil {
		return nil, "", &QueryError{Code: ErrCodeEncodeFailed, Message: "nil operand", Relation: string(relation)}
	}
	rec, err := record.Encode(t)
	if err != nil {
		return nil, "", &QueryError{Code: ErrCodeEncodeFailed, Message: fmt.Sprintf("encode %s", t.Describe(types.VerbosityPrecise)), Relation: string(relation), Err: err}
	}
	key, err := record.TypeKey(rec)
	if err != nil {
		return nil, "", &QueryError{Code: ErrCodeEncodeFailed, Message: "type key", Relation: string(relation), Err: err}
	}
	return rec, key, nil
}

func cacheError(relation Relation, err error) error {
	return &QueryError{Code: ErrCodeCacheFailed, Message: "cache access", Relation: string(relation), Err: err}
}
