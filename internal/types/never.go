package types

import "github.com/roach88/gentype/internal/trinary"

// NeverType is the bottom type. It has no values.
type NeverType struct {
	typ
}

// NewNeverType returns the bottom type.
func NewNeverType() *NeverType {
	return &NeverType{}
}

func (n *NeverType) Kind() Kind { return KindNever }

func (n *NeverType) Describe(VerbosityLevel) string { return "never" }

func (n *NeverType) Equals(other Type) bool {
	_, ok := other.(*NeverType)
	return ok
}

func (n *NeverType) IsSuperTypeOf(t Type) trinary.Logic {
	_, ok := t.(*NeverType)
	return trinary.FromBool(ok)
}

func (n *NeverType) IsSubTypeOf(Type) trinary.Logic { return trinary.Yes() }

func (n *NeverType) Accepts(t Type, _ bool) trinary.Logic {
	_, ok := t.(*NeverType)
	return trinary.FromBool(ok)
}

func (n *NeverType) state() Properties { return Properties{} }
