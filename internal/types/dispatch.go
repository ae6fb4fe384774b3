package types

import "github.com/roach88/gentype/internal/trinary"

// dispatchSuperType resolves the operand variants every concrete type treats
// alike when asked self.IsSuperTypeOf(t). ok is false when self must apply its
// own rule.
//
//	compound  -> t.IsSubTypeOf(self)
//	never     -> Yes
//	mixed     -> t.IsSubTypeOf(self)
//	template  -> self.IsSuperTypeOf(t.Bound())
func dispatchSuperType(self, t Type) (result trinary.Logic, ok bool) {
	switch t := t.(type) {
	case CompoundType:
		return t.IsSubTypeOf(self), true
	case *NeverType:
		return trinary.Yes(), true
	case *MixedType:
		return t.IsSubTypeOf(self), true
	case TemplateType:
		return self.IsSuperTypeOf(t.Bound()), true
	}
	return trinary.No(), false
}

// acceptsBySuperType is the Accepts rule shared by concrete types: compound
// operands decide per member, everything else falls back to IsSuperTypeOf.
func acceptsBySuperType(self, t Type, strict bool) trinary.Logic {
	if c, ok := t.(CompoundType); ok {
		return c.IsAcceptedBy(self, strict)
	}
	return self.IsSuperTypeOf(t)
}

// exclusionCovers reports whether t already excludes at least excl.
func exclusionCovers(t Type, excl Type) bool {
	s, ok := t.(SubtractableType)
	if !ok || s.SubtractedType() == nil {
		return false
	}
	return s.SubtractedType().IsSuperTypeOf(excl).IsYes()
}

// describeWithExclusion appends "~excl" at precise verbosity.
func describeWithExclusion(base string, excl Type, level VerbosityLevel) string {
	if level != VerbosityPrecise || excl == nil {
		return base
	}
	return base + "~" + excl.Describe(level)
}
