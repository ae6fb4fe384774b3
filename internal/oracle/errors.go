package oracle

import (
	"errors"
	"fmt"
)

// QueryError reports a query the oracle could not answer.
//
// A relation never fails for being uncertain: Maybe is a result, not an
// error. Query errors come from the plumbing around the relation: encoding
// operands, talking to the cache, or decoding a cached result.
type QueryError struct {
	// Code identifies the error category.
	Code QueryErrorCode

	// Message is a human-readable description.
	Message string

	// Relation names the query that failed.
	Relation string

	// Err is the underlying cause, if any.
	Err error
}

// QueryErrorCode categorizes query errors.
type QueryErrorCode string

const (
	// ErrCodeEncodeFailed indicates an operand that cannot be flattened to a record.
	ErrCodeEncodeFailed QueryErrorCode = "ENCODE_FAILED"

	// ErrCodeCacheFailed indicates the persistent cache could not be read or written.
	ErrCodeCacheFailed QueryErrorCode = "CACHE_FAILED"

	// ErrCodeDecodeFailed indicates a cached result that no longer decodes.
	ErrCodeDecodeFailed QueryErrorCode = "DECODE_FAILED"

	// ErrCodeUnknownRelation indicates a relation name the oracle does not answer.
	ErrCodeUnknownRelation QueryErrorCode = "UNKNOWN_RELATION"
)

// Error implements the error interface.
func (e *QueryError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Relation != "" {
		msg = fmt.Sprintf("%s (relation=%s)", msg, e.Relation)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *QueryError) Unwrap() error { return e.Err }

// IsCacheError reports whether err is a cache failure.
// Uses errors.As to handle wrapped errors.
func IsCacheError(err error) bool {
	return hasCode(err, ErrCodeCacheFailed)
}

// IsEncodeError reports whether err is an operand encoding failure.
func IsEncodeError(err error) bool {
	return hasCode(err, ErrCodeEncodeFailed)
}

// IsDecodeError reports whether err is a cached-result decoding failure.
func IsDecodeError(err error) bool {
	return hasCode(err, ErrCodeDecodeFailed)
}

func hasCode(err error, code QueryErrorCode) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == code
}
