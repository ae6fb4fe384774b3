package types

import "github.com/roach88/gentype/internal/trinary"

// MixedType is the top type, optionally minus an excluded subset.
type MixedType struct {
	typ
	subtracted Type
}

// NewMixedType returns the exclusion-free top type.
func NewMixedType() *MixedType {
	return &MixedType{}
}

// NewMixedTypeWithout returns mixed minus subtracted. A nil subtracted is plain mixed.
func NewMixedTypeWithout(subtracted Type) *MixedType {
	return &MixedType{subtracted: subtracted}
}

func (m *MixedType) Kind() Kind { return KindMixed }

func (m *MixedType) Describe(level VerbosityLevel) string {
	return describeWithExclusion("mixed", m.subtracted, level)
}

func (m *MixedType) Equals(other Type) bool {
	o, ok := other.(*MixedType)
	return ok && equalOptional(m.subtracted, o.subtracted)
}

func (m *MixedType) IsSuperTypeOf(t Type) trinary.Logic {
	if m.subtracted == nil {
		return trinary.Yes()
	}
	switch t := t.(type) {
	case *NeverType:
		return trinary.Yes()
	case CompoundType:
		return t.IsSubTypeOf(m)
	case *MixedType:
		if t.subtracted == nil {
			return trinary.Maybe()
		}
		if t.subtracted.IsSuperTypeOf(m.subtracted).IsYes() {
			return trinary.Yes()
		}
		return trinary.Maybe()
	}
	if exclusionCovers(t, m.subtracted) {
		return trinary.Yes()
	}
	return m.subtracted.IsSuperTypeOf(t).Negate()
}

func (m *MixedType) IsSubTypeOf(t Type) trinary.Logic {
	switch t := t.(type) {
	case CompoundType:
		return t.IsSuperTypeOf(m)
	case *MixedType, TemplateType:
		return t.IsSuperTypeOf(m)
	}
	if m.subtracted != nil && m.subtracted.IsSuperTypeOf(t).IsYes() {
		return trinary.No()
	}
	return trinary.Maybe()
}

func (m *MixedType) Accepts(t Type, strict bool) trinary.Logic {
	if m.subtracted == nil {
		return trinary.Yes()
	}
	return acceptsBySuperType(m, t, strict)
}

func (m *MixedType) Subtract(t Type) Type {
	if o, ok := t.(*MixedType); ok && o.subtracted == nil {
		return NewNeverType()
	}
	if m.subtracted != nil {
		t = Union(m.subtracted, t)
	}
	return NewMixedTypeWithout(t)
}

func (m *MixedType) TypeWithoutSubtractedType() Type { return NewMixedType() }

func (m *MixedType) ChangeSubtractedType(t Type) Type { return NewMixedTypeWithout(t) }

func (m *MixedType) SubtractedType() Type { return m.subtracted }

func (m *MixedType) state() Properties {
	return Properties{}.withSubtracted(m.subtracted)
}
