package types

import (
	"maps"
	"slices"
	"strings"
)

// TemplateTypeMap maps parameter names to inferred types.
// The zero value is the empty map. Values are immutable.
type TemplateTypeMap struct {
	types map[string]Type
}

// EmptyTemplateTypeMap returns the map that contributes no constraint.
func EmptyTemplateTypeMap() TemplateTypeMap {
	return TemplateTypeMap{}
}

// NewTemplateTypeMap copies m. Nil values are dropped.
func NewTemplateTypeMap(m map[string]Type) TemplateTypeMap {
	if len(m) == 0 {
		return TemplateTypeMap{}
	}
	types := make(map[string]Type, len(m))
	for name, t := range m {
		if t != nil {
			types[name] = t
		}
	}
	return TemplateTypeMap{types: types}
}

// Type returns the type inferred for name, or nil.
func (m TemplateTypeMap) Type(name string) Type {
	return m.types[name]
}

func (m TemplateTypeMap) Has(name string) bool {
	_, ok := m.types[name]
	return ok
}

// Names returns the mapped names, sorted.
func (m TemplateTypeMap) Names() []string {
	return slices.Sorted(maps.Keys(m.types))
}

func (m TemplateTypeMap) Len() int { return len(m.types) }

func (m TemplateTypeMap) IsEmpty() bool { return len(m.types) == 0 }

// Types returns a copy of the underlying mapping.
func (m TemplateTypeMap) Types() map[string]Type {
	return maps.Clone(m.types)
}

// Union merges two maps; a name present in both maps to the union of its types.
func (m TemplateTypeMap) Union(other TemplateTypeMap) TemplateTypeMap {
	return m.merge(other, func(a, b Type) Type { return Union(a, b) })
}

// Intersect merges two maps; a name present in both maps to the intersection
// of its types.
func (m TemplateTypeMap) Intersect(other TemplateTypeMap) TemplateTypeMap {
	return m.merge(other, func(a, b Type) Type { return Intersect(a, b) })
}

func (m TemplateTypeMap) merge(other TemplateTypeMap, combine func(a, b Type) Type) TemplateTypeMap {
	if other.IsEmpty() {
		return m
	}
	if m.IsEmpty() {
		return other
	}
	out := maps.Clone(m.types)
	for name, t := range other.types {
		if existing, ok := out[name]; ok {
			out[name] = combine(existing, t)
			continue
		}
		out[name] = t
	}
	return TemplateTypeMap{types: out}
}

// Map applies fn to every mapped type.
func (m TemplateTypeMap) Map(fn func(name string, t Type) Type) TemplateTypeMap {
	out := make(map[string]Type, len(m.types))
	for name, t := range m.types {
		out[name] = fn(name, t)
	}
	return NewTemplateTypeMap(out)
}

// Equals compares names and mapped types.
func (m TemplateTypeMap) Equals(other TemplateTypeMap) bool {
	return maps.EqualFunc(m.types, other.types, func(a, b Type) bool { return a.Equals(b) })
}

// Describe renders "{T: int, U: Foo}" with names sorted.
func (m TemplateTypeMap) Describe(level VerbosityLevel) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range m.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(m.types[name].Describe(level))
	}
	b.WriteByte('}')
	return b.String()
}

// Resolve substitutes mapped parameters inside t. Unions and intersections
// are rebuilt member-wise; unmapped parameters are left in place.
func (m TemplateTypeMap) Resolve(t Type) Type {
	switch t := t.(type) {
	case TemplateType:
		if resolved, ok := m.types[t.Name()]; ok {
			return resolved
		}
		return t
	case *UnionType:
		return Union(m.resolveAll(t.types)...)
	case *IntersectionType:
		return Intersect(m.resolveAll(t.types)...)
	}
	return t
}

func (m TemplateTypeMap) resolveAll(types []Type) []Type {
	out := make([]Type, len(types))
	for i, t := range types {
		out[i] = m.Resolve(t)
	}
	return out
}
