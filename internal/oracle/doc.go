// Package oracle answers relational queries over types with memoization.
//
// Relations are pure functions of their operands, so the oracle keys every
// query by the content keys of its operand records (see package record) and
// remembers the answer: first in memory, then, when a cache.Store is
// configured, on disk across runs.
//
// Each Oracle is one run. The run is identified by a UUIDv7 token and every
// result it writes carries a logical seq from the run's Clock, never a
// wall-clock timestamp.
//
// Thread-safety: all query methods are safe for concurrent use.
package oracle
