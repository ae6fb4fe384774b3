package types

import "github.com/roach88/gentype/internal/trinary"

// ObjectWithoutClassType is an object of unknown class, minus the excluded
// type if present. Without an exclusion it is a supertype of every
// class-named object.
type ObjectWithoutClassType struct {
	typ
	subtracted Type
}

// NewObjectWithoutClassType returns "object" minus subtracted. A nil subtracted means no exclusion.
func NewObjectWithoutClassType(subtracted Type) *ObjectWithoutClassType {
	return &ObjectWithoutClassType{subtracted: subtracted}
}

func (o *ObjectWithoutClassType) Kind() Kind { return KindObjectWithoutClass }

func (o *ObjectWithoutClassType) Describe(level VerbosityLevel) string {
	return describeWithExclusion("object", o.subtracted, level)
}

// Equals ignores the exclusion: any two unknown-object types are the same variant.
func (o *ObjectWithoutClassType) Equals(other Type) bool {
	_, ok := other.(*ObjectWithoutClassType)
	return ok
}

func (o *ObjectWithoutClassType) Accepts(t Type, strict bool) trinary.Logic {
	if c, ok := t.(CompoundType); ok {
		return c.IsAcceptedBy(o, strict)
	}
	switch t.(type) {
	case *ObjectWithoutClassType, TypeWithClassName:
		return trinary.Yes()
	}
	return trinary.No()
}

func (o *ObjectWithoutClassType) IsSuperTypeOf(t Type) trinary.Logic {
	switch t := t.(type) {
	case CompoundType:
		return t.IsSubTypeOf(o)
	case *ObjectWithoutClassType:
		if o.subtracted == nil {
			return trinary.Yes()
		}
		if t.subtracted != nil && t.subtracted.IsSuperTypeOf(o.subtracted).IsYes() {
			return trinary.Yes()
		}
		return trinary.Maybe()
	case TypeWithClassName:
		if o.subtracted == nil {
			return trinary.Yes()
		}
		if o.subtracted.IsSuperTypeOf(t).IsYes() {
			return trinary.No()
		}
		return trinary.Yes()
	}
	if r, ok := dispatchSuperType(o, t); ok {
		return r
	}
	return trinary.No()
}

func (o *ObjectWithoutClassType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(o) }

// Subtract removes t. Removing an exclusion-free unknown object leaves nothing.
func (o *ObjectWithoutClassType) Subtract(t Type) Type {
	if other, ok := t.(*ObjectWithoutClassType); ok && other.subtracted == nil {
		return NewNeverType()
	}
	if o.subtracted != nil {
		t = Union(o.subtracted, t)
	}
	return NewObjectWithoutClassType(t)
}

func (o *ObjectWithoutClassType) TypeWithoutSubtractedType() Type {
	return NewObjectWithoutClassType(nil)
}

func (o *ObjectWithoutClassType) ChangeSubtractedType(t Type) Type {
	return NewObjectWithoutClassType(t)
}

func (o *ObjectWithoutClassType) SubtractedType() Type { return o.subtracted }

func (o *ObjectWithoutClassType) state() Properties {
	return Properties{}.withSubtracted(o.subtracted)
}
