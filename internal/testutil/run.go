package testutil

// DefaultRunToken is returned by a FixedRunGenerator built with an empty token.
const DefaultRunToken = "test-run-default"

// FixedRunGenerator returns the same run token on every call.
//
// Oracles built with it write byte-identical cache rows for identical query
// sequences, which is what golden snapshots compare.
//
// Thread-safety: FixedRunGenerator is immutable and safe for concurrent use.
type FixedRunGenerator struct {
	token string
}

// NewFixedRunGenerator creates a generator for token.
// If token is empty, Generate returns DefaultRunToken.
func NewFixedRunGenerator(token string) *FixedRunGenerator {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedRunGenerator{token: token}
}

// Generate returns the fixed token. Implements oracle.RunTokenGenerator.
func (g *FixedRunGenerator) Generate() string {
	return g.token
}
