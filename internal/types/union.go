package types

import (
	"slices"
	"strings"

	"github.com/roach88/gentype/internal/trinary"
)

// UnionType holds values of any member type.
// Build normalized unions with Union; NewUnionType keeps members as given.
type UnionType struct {
	typ
	types []Type
}

// NewUnionType builds a union without normalization.
func NewUnionType(types ...Type) *UnionType {
	return &UnionType{types: slices.Clone(types)}
}

func (u *UnionType) compound() {}

// Types returns a copy of the members.
func (u *UnionType) Types() []Type { return slices.Clone(u.types) }

func (u *UnionType) Kind() Kind { return KindUnion }

func (u *UnionType) Describe(level VerbosityLevel) string {
	parts := make([]string, len(u.types))
	for i, t := range u.types {
		parts[i] = t.Describe(level)
	}
	return strings.Join(parts, "|")
}

// Equals compares members regardless of order.
func (u *UnionType) Equals(other Type) bool {
	o, ok := other.(*UnionType)
	return ok && sameMembers(u.types, o.types)
}

func (u *UnionType) IsSuperTypeOf(t Type) trinary.Logic {
	if o, ok := t.(*UnionType); ok {
		return o.IsSubTypeOf(u)
	}
	result := trinary.No()
	for _, member := range u.types {
		result = result.Or(member.IsSuperTypeOf(t))
		if result.IsYes() {
			break
		}
	}
	return result
}

func (u *UnionType) IsSubTypeOf(t Type) trinary.Logic {
	result := trinary.Yes()
	for _, member := range u.types {
		result = result.And(t.IsSuperTypeOf(member))
		if result.IsNo() {
			break
		}
	}
	return result
}

func (u *UnionType) Accepts(t Type, strict bool) trinary.Logic {
	if c, ok := t.(CompoundType); ok {
		return c.IsAcceptedBy(u, strict)
	}
	result := trinary.No()
	for _, member := range u.types {
		result = result.Or(member.Accepts(t, strict))
	}
	return result
}

// IsAcceptedBy requires the acceptor to accept every member.
func (u *UnionType) IsAcceptedBy(acceptor Type, strict bool) trinary.Logic {
	result := trinary.Yes()
	for _, member := range u.types {
		result = result.And(acceptor.Accepts(member, strict))
	}
	return result
}

// InferTemplateTypesOn unions the inference of every member.
func (u *UnionType) InferTemplateTypesOn(template TemplateType) TemplateTypeMap {
	result := EmptyTemplateTypeMap()
	for _, member := range u.types {
		result = result.Union(template.InferTemplateTypes(member))
	}
	return result
}

func (u *UnionType) state() Properties {
	return Properties{AttrTypes: slices.Clone(u.types)}
}

// sameMembers reports whether a and b hold equal members, ignoring order.
func sameMembers(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && x.Equals(y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
