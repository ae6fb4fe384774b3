package types

import "github.com/roach88/gentype/internal/trinary"

// TemplateObjectType is a type parameter bounded by a class.
type TemplateObjectType struct {
	templateBase
	class ClassInfo
}

// NewTemplateObjectType builds a parameter bounded by class. subtracted may be nil.
func NewTemplateObjectType(
	scope TemplateTypeScope,
	strategy TemplateTypeStrategy,
	variance Variance,
	name string,
	class ClassInfo,
	subtracted Type,
) *TemplateObjectType {
	return &TemplateObjectType{
		templateBase: templateBase{
			scope:      scope,
			strategy:   strategy,
			variance:   variance,
			name:       name,
			subtracted: subtracted,
		},
		class: class,
	}
}

// ClassName returns the bounding class.
func (t *TemplateObjectType) ClassName() string { return t.class.Name }

// Class returns the bounding class with its ancestry.
func (t *TemplateObjectType) Class() ClassInfo { return t.class }

func (t *TemplateObjectType) Kind() Kind { return KindTemplateObject }

// Describe renders "T of Foo"; the bound carries the exclusion at precise verbosity.
func (t *TemplateObjectType) Describe(level VerbosityLevel) string {
	return t.describe(level, func() string {
		return t.name + " of " + t.Bound().Describe(level)
	})
}

func (t *TemplateObjectType) Equals(other Type) bool {
	o, ok := other.(*TemplateObjectType)
	return ok && o.scope.Equals(t.scope) && o.name == t.name && o.class.Name == t.class.Name
}

func (t *TemplateObjectType) Bound() Type {
	return NewObjectTypeFromClass(t.class, t.subtracted)
}

func (t *TemplateObjectType) Accepts(other Type, strict bool) trinary.Logic {
	return t.strategy.Accepts(t, other, strict)
}

func (t *TemplateObjectType) IsSuperTypeOf(other Type) trinary.Logic {
	return templateIsSuperTypeOf(t, other)
}

// IsSubTypeOf is Yes against the unknown-object type: every object-bound
// parameter is an object.
func (t *TemplateObjectType) IsSubTypeOf(other Type) trinary.Logic {
	if _, ok := other.(*ObjectWithoutClassType); ok {
		return trinary.Yes()
	}
	return templateIsSubTypeOf(t, other)
}

func (t *TemplateObjectType) InferTemplateTypes(received Type) TemplateTypeMap {
	return inferTemplateTypes(t, received)
}

// ToArgument also fixes the variance to invariant: a resolved argument no
// longer widens.
func (t *TemplateObjectType) ToArgument() TemplateType {
	c := *t
	c.strategy = ArgumentStrategy{}
	c.variance = Invariant
	return &c
}

func (t *TemplateObjectType) Subtract(other Type) Type {
	exclusion, empty := templateSubtract(t, other)
	if empty {
		return NewNeverType()
	}
	return &TemplateObjectType{templateBase: t.with(exclusion), class: t.class}
}

func (t *TemplateObjectType) TypeWithoutSubtractedType() Type {
	return &TemplateObjectType{templateBase: t.with(nil), class: t.class}
}

func (t *TemplateObjectType) ChangeSubtractedType(other Type) Type {
	return &TemplateObjectType{templateBase: t.with(other), class: t.class}
}

func (t *TemplateObjectType) state() Properties {
	return t.templateBase.state().withClass(t.class)
}
