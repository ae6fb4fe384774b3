package types

import (
	"errors"
	"fmt"
)

// ConstructionErrorCode categorizes construction-time contract violations.
type ConstructionErrorCode string

const (
	// ErrCodeUnknownClass indicates a class name the registry does not know.
	ErrCodeUnknownClass ConstructionErrorCode = "UNKNOWN_CLASS"

	// ErrCodeDuplicateClass indicates a class redefined with different parents.
	ErrCodeDuplicateClass ConstructionErrorCode = "DUPLICATE_CLASS"

	// ErrCodeClassCycle indicates a class that is its own ancestor.
	ErrCodeClassCycle ConstructionErrorCode = "CLASS_CYCLE"

	// ErrCodeUnsupportedBound indicates a template bound with no template variant.
	ErrCodeUnsupportedBound ConstructionErrorCode = "UNSUPPORTED_BOUND"

	// ErrCodeInvalidName indicates an empty template or class name.
	ErrCodeInvalidName ConstructionErrorCode = "INVALID_NAME"

	// ErrCodeInvalidScope indicates a zero or malformed template scope.
	ErrCodeInvalidScope ConstructionErrorCode = "INVALID_SCOPE"

	// ErrCodeMissingAttribute indicates a record lacking a required attribute.
	ErrCodeMissingAttribute ConstructionErrorCode = "MISSING_ATTRIBUTE"

	// ErrCodeInvalidAttribute indicates a record attribute of the wrong shape.
	ErrCodeInvalidAttribute ConstructionErrorCode = "INVALID_ATTRIBUTE"

	// ErrCodeUnknownKind indicates a record with an unknown kind tag.
	ErrCodeUnknownKind ConstructionErrorCode = "UNKNOWN_KIND"
)

// ConstructionError reports a value that cannot be built.
// Relations never return errors; only constructors and RestoreState do.
type ConstructionError struct {
	Code    ConstructionErrorCode
	Message string

	// Field names the offending attribute when the error comes from a record.
	Field string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownClass reports whether err is an unknown-class construction error.
// Uses errors.As to handle wrapped errors.
func IsUnknownClass(err error) bool {
	var ce *ConstructionError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeUnknownClass
	}
	return false
}

// IsConstructionError reports whether err carries the given code.
func IsConstructionError(err error, code ConstructionErrorCode) bool {
	var ce *ConstructionError
	return errors.As(err, &ce) && ce.Code == code
}

func newUnknownClassError(name string) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeUnknownClass,
		Message: fmt.Sprintf("class %q is not defined", name),
	}
}

func missingAttribute(field string) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeMissingAttribute,
		Message: "required attribute is missing",
		Field:   field,
	}
}

func invalidAttribute(field string, got any) *ConstructionError {
	return &ConstructionError{
		Code:    ErrCodeInvalidAttribute,
		Message: fmt.Sprintf("unexpected value of type %T", got),
		Field:   field,
	}
}
