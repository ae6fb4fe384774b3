package types

import (
	"fmt"

	"github.com/roach88/gentype/internal/trinary"
)

// TemplateType is a type parameter bound to the scope that declared it.
//
// Two template types are the same parameter when they share a variant, a
// scope and a name (and, for object-bound parameters, a class). The
// exclusion is not part of that identity.
type TemplateType interface {
	SubtractableType

	// Name returns the parameter name, e.g. "T".
	Name() string

	// Scope returns the declaration site.
	Scope() TemplateTypeScope

	// Bound returns the widest concrete type the parameter may stand for,
	// carrying the parameter's exclusion.
	Bound() Type

	Strategy() TemplateTypeStrategy
	Variance() Variance

	// IsArgument reports whether the parameter has been resolved at a call site.
	IsArgument() bool

	// ToArgument returns the same parameter in the argument role.
	ToArgument() TemplateType

	// IsValidVariance reports whether actual may replace declared under the
	// parameter's variance.
	IsValidVariance(declared, actual Type) bool

	// InferTemplateTypes unifies the parameter with a type observed at a call site.
	InferTemplateTypes(received Type) TemplateTypeMap

	template()
}

// templateBase holds the attributes every template variant shares.
type templateBase struct {
	typ
	scope      TemplateTypeScope
	strategy   TemplateTypeStrategy
	variance   Variance
	name       string
	subtracted Type
}

func (b *templateBase) template() {}

func (b *templateBase) Name() string { return b.name }

func (b *templateBase) Scope() TemplateTypeScope { return b.scope }

func (b *templateBase) Strategy() TemplateTypeStrategy { return b.strategy }

func (b *templateBase) Variance() Variance { return b.variance }

func (b *templateBase) IsArgument() bool { return b.strategy.IsArgument() }

func (b *templateBase) IsValidVariance(declared, actual Type) bool {
	return b.variance.IsValidVariance(declared, actual)
}

func (b *templateBase) SubtractedType() Type { return b.subtracted }

// with returns a copy of the attributes with a new exclusion.
func (b templateBase) with(subtracted Type) templateBase {
	b.subtracted = subtracted
	return b
}

// describe renders basic at TypeOnly and Value verbosity, and appends the
// scope and role at Precise.
func (b *templateBase) describe(level VerbosityLevel, basic func() string) string {
	return level.Handle(basic, basic, func() string {
		role := "parameter"
		if b.IsArgument() {
			role = "argument"
		}
		return fmt.Sprintf("%s (%s, %s)", basic(), b.scope.Describe(), role)
	})
}

func (b *templateBase) state() Properties {
	return Properties{
		AttrScope:    b.scope.Key(),
		AttrName:     b.name,
		AttrStrategy: b.strategy.Name(),
		AttrVariance: b.variance.String(),
	}.withSubtracted(b.subtracted)
}

// sameTemplateIdentity compares name and scope only.
func sameTemplateIdentity(a, b TemplateType) bool {
	return a.Name() == b.Name() && a.Scope().Equals(b.Scope())
}

// templateIsSuperTypeOf never proves Yes against a non-compound operand:
// the parameter may still be substituted by something narrower. A mixed
// template counts as compound, an object-bound one does not.
func templateIsSuperTypeOf(self TemplateType, t Type) trinary.Logic {
	switch t := t.(type) {
	case CompoundType:
		return t.IsSubTypeOf(self)
	case *TemplateMixedType:
		return t.IsSubTypeOf(self)
	case *NeverType:
		return trinary.Yes()
	}
	return self.Bound().IsSuperTypeOf(t).And(trinary.Maybe())
}

func templateIsSubTypeOf(self TemplateType, t Type) trinary.Logic {
	switch t := t.(type) {
	case CompoundType:
		return t.IsSuperTypeOf(self)
	case TemplateType:
		if self.Equals(t) {
			return exclusionRefines(self, t)
		}
		return t.Bound().IsSuperTypeOf(self.Bound()).And(trinary.Maybe())
	}
	return t.IsSuperTypeOf(self.Bound()).And(trinary.Maybe())
}

// exclusionRefines compares two instances of one parameter. self is within
// other when other excludes nothing or self excludes at least as much.
func exclusionRefines(self, other TemplateType) trinary.Logic {
	theirs := other.SubtractedType()
	if theirs == nil {
		return trinary.Yes()
	}
	ours := self.SubtractedType()
	if ours != nil && ours.IsSuperTypeOf(theirs).IsYes() {
		return trinary.Yes()
	}
	return trinary.Maybe()
}

// inferTemplateTypes is the unification step shared by all variants.
//
//  1. compound received types fan out over their members;
//  2. a template within the bound is bound as is, keeping the result generic;
//  3. a type within the bound is bound in its generalized form;
//  4. anything else contributes no constraint.
func inferTemplateTypes(self TemplateType, received Type) TemplateTypeMap {
	if c, ok := received.(CompoundType); ok {
		return c.InferTemplateTypesOn(self)
	}
	bound := self.Bound()
	if rt, ok := received.(TemplateType); ok && bound.IsSuperTypeOf(rt.Bound()).IsYes() {
		return NewTemplateTypeMap(map[string]Type{self.Name(): rt})
	}
	if bound.IsSuperTypeOf(received).IsYes() {
		return NewTemplateTypeMap(map[string]Type{self.Name(): GeneralizeType(received)})
	}
	return EmptyTemplateTypeMap()
}

// templateSubtract reports whether removing t from self leaves nothing and,
// if not, the accumulated exclusion. Only the same parameter empties it.
func templateSubtract(self TemplateType, t Type) (exclusion Type, empty bool) {
	if other, ok := t.(TemplateType); ok && self.Equals(other) {
		return nil, true
	}
	if self.SubtractedType() != nil {
		return Union(self.SubtractedType(), t), false
	}
	return t, false
}
