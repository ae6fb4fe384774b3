package types

// GeneralizeType widens literal types to their general family so that one
// call site's literal does not pin a template parameter.
//
//	5       -> int
//	"a"     -> string
//	true    -> bool
//	5|"a"   -> int|string
//
// Every other type is returned unchanged.
func GeneralizeType(t Type) Type {
	switch t := t.(type) {
	case *ConstantIntegerType:
		return NewIntegerType()
	case *ConstantStringType:
		return NewStringType()
	case *ConstantBooleanType:
		return NewBooleanType()
	case *UnionType:
		members := make([]Type, len(t.types))
		for i, m := range t.types {
			members[i] = GeneralizeType(m)
		}
		return Union(members...)
	case *IntersectionType:
		members := make([]Type, len(t.types))
		for i, m := range t.types {
			members[i] = GeneralizeType(m)
		}
		return Intersect(members...)
	}
	return t
}
