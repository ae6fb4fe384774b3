package types

import (
	"fmt"

	"github.com/roach88/gentype/internal/trinary"
)

// Type is implemented by every type value in the core.
// The interface is sealed: only this package provides implementations.
type Type interface {
	// Describe renders the type at the given verbosity.
	Describe(level VerbosityLevel) string

	// Equals reports structural identity.
	Equals(other Type) bool

	// IsSuperTypeOf reports whether every value of other is a value of the receiver.
	IsSuperTypeOf(other Type) trinary.Logic

	// IsSubTypeOf reports whether every value of the receiver is a value of other.
	IsSubTypeOf(other Type) trinary.Logic

	// Accepts reports whether a value of other may be passed where the receiver is expected.
	Accepts(other Type, strict bool) trinary.Logic

	// Kind returns the variant tag used for dispatch and serialization.
	Kind() Kind

	// state returns the named attributes that rebuild the value.
	state() Properties
}

// CompoundType is implemented by unions and intersections.
// Relations double-dispatch into a compound operand so that it can decide per member.
type CompoundType interface {
	Type

	// IsAcceptedBy reports whether acceptor accepts every value of the receiver.
	IsAcceptedBy(acceptor Type, strict bool) trinary.Logic

	// InferTemplateTypesOn fans template inference out over the members.
	InferTemplateTypesOn(template TemplateType) TemplateTypeMap

	// Types returns the members.
	Types() []Type

	compound()
}

// SubtractableType is implemented by types that support exclusion.
type SubtractableType interface {
	Type

	// Subtract returns the receiver minus t. Exclusions accumulate by union.
	Subtract(t Type) Type

	// TypeWithoutSubtractedType returns the exclusion-free form.
	TypeWithoutSubtractedType() Type

	// ChangeSubtractedType replaces the exclusion wholesale. A nil t removes it.
	ChangeSubtractedType(t Type) Type

	// SubtractedType returns the current exclusion, or nil.
	SubtractedType() Type
}

// TypeWithClassName is implemented by object types with a known class.
type TypeWithClassName interface {
	Type
	ClassName() string
}

// Kind identifies a type variant.
type Kind string

const (
	KindMixed              Kind = "mixed"
	KindNever              Kind = "never"
	KindObject             Kind = "object"
	KindObjectWithoutClass Kind = "object_without_class"
	KindInteger            Kind = "int"
	KindConstantInteger    Kind = "constant_int"
	KindString             Kind = "string"
	KindConstantString     Kind = "constant_string"
	KindBoolean            Kind = "bool"
	KindConstantBoolean    Kind = "constant_bool"
	KindFloat              Kind = "float"
	KindUnion              Kind = "union"
	KindIntersection       Kind = "intersection"
	KindTemplateMixed      Kind = "template_mixed"
	KindTemplateObject     Kind = "template_object"
)

// Kinds lists every variant in a stable order.
var Kinds = []Kind{
	KindMixed, KindNever, KindObject, KindObjectWithoutClass,
	KindInteger, KindConstantInteger, KindString, KindConstantString,
	KindBoolean, KindConstantBoolean, KindFloat,
	KindUnion, KindIntersection,
	KindTemplateMixed, KindTemplateObject,
}

// ParseKind validates a kind tag read from a record.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown type kind %q", s)
}

// typ is embedded by every implementation.
type typ struct{}

// equalOptional compares two possibly-nil types.
func equalOptional(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
