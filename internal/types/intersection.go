package types

import (
	"slices"
	"strings"

	"github.com/roach88/gentype/internal/trinary"
)

// IntersectionType holds values belonging to every member type.
// Build normalized intersections with Intersect.
type IntersectionType struct {
	typ
	types []Type
}

// NewIntersectionType builds an intersection without normalization.
func NewIntersectionType(types ...Type) *IntersectionType {
	return &IntersectionType{types: slices.Clone(types)}
}

func (i *IntersectionType) compound() {}

// Types returns a copy of the members.
func (i *IntersectionType) Types() []Type { return slices.Clone(i.types) }

func (i *IntersectionType) Kind() Kind { return KindIntersection }

func (i *IntersectionType) Describe(level VerbosityLevel) string {
	parts := make([]string, len(i.types))
	for n, t := range i.types {
		parts[n] = t.Describe(level)
	}
	return strings.Join(parts, "&")
}

func (i *IntersectionType) Equals(other Type) bool {
	o, ok := other.(*IntersectionType)
	return ok && sameMembers(i.types, o.types)
}

func (i *IntersectionType) IsSuperTypeOf(t Type) trinary.Logic {
	if o, ok := t.(*IntersectionType); ok && i.Equals(o) {
		return trinary.Yes()
	}
	result := trinary.Yes()
	for _, member := range i.types {
		result = result.And(member.IsSuperTypeOf(t))
		if result.IsNo() {
			break
		}
	}
	return result
}

func (i *IntersectionType) IsSubTypeOf(t Type) trinary.Logic {
	switch t.(type) {
	case *IntersectionType, *UnionType:
		return t.IsSuperTypeOf(i)
	}
	results := make([]trinary.Logic, len(i.types))
	for n, member := range i.types {
		results[n] = t.IsSuperTypeOf(member)
	}
	return trinary.MaxMin(results...)
}

func (i *IntersectionType) Accepts(t Type, strict bool) trinary.Logic {
	if c, ok := t.(CompoundType); ok {
		return c.IsAcceptedBy(i, strict)
	}
	result := trinary.Yes()
	for _, member := range i.types {
		result = result.And(member.Accepts(t, strict))
	}
	return result
}

// IsAcceptedBy succeeds when the acceptor accepts any member: a value of the
// intersection is a value of each member.
func (i *IntersectionType) IsAcceptedBy(acceptor Type, strict bool) trinary.Logic {
	results := make([]trinary.Logic, len(i.types))
	for n, member := range i.types {
		results[n] = acceptor.Accepts(member, strict)
	}
	return trinary.MaxMin(results...)
}

// InferTemplateTypesOn intersects the inference of every member.
func (i *IntersectionType) InferTemplateTypesOn(template TemplateType) TemplateTypeMap {
	result := EmptyTemplateTypeMap()
	for _, member := range i.types {
		result = result.Intersect(template.InferTemplateTypes(member))
	}
	return result
}

func (i *IntersectionType) state() Properties {
	return Properties{AttrTypes: slices.Clone(i.types)}
}
