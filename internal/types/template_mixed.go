package types

import "github.com/roach88/gentype/internal/trinary"

// TemplateMixedType is a type parameter without an explicit bound.
type TemplateMixedType struct {
	templateBase
}

// NewTemplateMixedType builds an unbounded parameter. subtracted may be nil.
func NewTemplateMixedType(
	scope TemplateTypeScope,
	strategy TemplateTypeStrategy,
	variance Variance,
	name string,
	subtracted Type,
) *TemplateMixedType {
	return &TemplateMixedType{templateBase{
		scope:      scope,
		strategy:   strategy,
		variance:   variance,
		name:       name,
		subtracted: subtracted,
	}}
}

func (t *TemplateMixedType) Kind() Kind { return KindTemplateMixed }

func (t *TemplateMixedType) Describe(level VerbosityLevel) string {
	return t.describe(level, func() string { return t.name })
}

func (t *TemplateMixedType) Equals(other Type) bool {
	o, ok := other.(*TemplateMixedType)
	return ok && o.scope.Equals(t.scope) && o.name == t.name
}

func (t *TemplateMixedType) Bound() Type {
	return NewMixedTypeWithout(t.subtracted)
}

func (t *TemplateMixedType) Accepts(other Type, strict bool) trinary.Logic {
	return t.strategy.Accepts(t, other, strict)
}

func (t *TemplateMixedType) IsSuperTypeOf(other Type) trinary.Logic {
	return templateIsSuperTypeOf(t, other)
}

func (t *TemplateMixedType) IsSubTypeOf(other Type) trinary.Logic {
	return templateIsSubTypeOf(t, other)
}

func (t *TemplateMixedType) InferTemplateTypes(received Type) TemplateTypeMap {
	return inferTemplateTypes(t, received)
}

func (t *TemplateMixedType) ToArgument() TemplateType {
	c := *t
	c.strategy = ArgumentStrategy{}
	return &c
}

func (t *TemplateMixedType) Subtract(other Type) Type {
	exclusion, empty := templateSubtract(t, other)
	if empty {
		return NewNeverType()
	}
	return &TemplateMixedType{t.with(exclusion)}
}

func (t *TemplateMixedType) TypeWithoutSubtractedType() Type {
	return &TemplateMixedType{t.with(nil)}
}

func (t *TemplateMixedType) ChangeSubtractedType(other Type) Type {
	return &TemplateMixedType{t.with(other)}
}
