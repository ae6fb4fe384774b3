// Package cache provides SQLite-backed persistence for relation results.
//
// Relations between types are pure functions of their operands, so a result
// computed once can be reused by any later run. The cache stores:
//   - Types: canonical records keyed by record.TypeKey
//   - Relations: super/sub/accepts results keyed by record.RelationKey
//   - Inferences: inferred template maps keyed by record.InferenceKey
//   - Runs: one row per oracle run, for provenance of each result
//
// Writes are idempotent (ON CONFLICT DO NOTHING): recomputing a result and
// writing it again is a no-op. Reads that return several rows order them by
// seq ASC, key ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package cache
