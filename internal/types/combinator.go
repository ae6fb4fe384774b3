package types

import (
	"slices"
	"strings"
)

// Union combines types into a normalized union.
//
// Nested unions are flattened, never is dropped, duplicates and members
// proven to be subtypes of another member are removed, and the result is
// ordered by precise description so that Union(a, b) equals Union(b, a).
// A single surviving member is returned as is; no members yields never.
func Union(types ...Type) Type {
	flat := make([]Type, 0, len(types))
	for _, t := range types {
		switch t := t.(type) {
		case nil, *NeverType:
			continue
		case *UnionType:
			for _, member := range t.types {
				if _, never := member.(*NeverType); !never {
					flat = append(flat, member)
				}
			}
		case *MixedType:
			if t.subtracted == nil {
				return t
			}
			flat = append(flat, t)
		default:
			flat = append(flat, t)
		}
	}

	kept := absorb(flat, func(kept, candidate Type) bool {
		return kept.IsSuperTypeOf(candidate).IsYes()
	})
	switch len(kept) {
	case 0:
		return NewNeverType()
	case 1:
		return kept[0]
	}
	sortMembers(kept)
	return &UnionType{types: kept}
}

// Intersect combines types into a normalized intersection.
//
// Nested intersections are flattened, plain mixed is dropped, members proven
// to be supertypes of another member are removed, and two members that
// exclude each other collapse the result to never. No members yields mixed.
func Intersect(types ...Type) Type {
	flat := make([]Type, 0, len(types))
	for _, t := range types {
		switch t := t.(type) {
		case nil:
			continue
		case *NeverType:
			return t
		case *IntersectionType:
			flat = append(flat, t.types...)
		case *MixedType:
			if t.subtracted != nil {
				flat = append(flat, t)
			}
		default:
			flat = append(flat, t)
		}
	}

	kept := absorb(flat, func(kept, candidate Type) bool {
		return candidate.IsSuperTypeOf(kept).IsYes()
	})
	for i := range kept {
		for j := i + 1; j < len(kept); j++ {
			if disjoint(kept[i], kept[j]) {
				return NewNeverType()
			}
		}
	}
	switch len(kept) {
	case 0:
		return NewMixedType()
	case 1:
		return kept[0]
	}
	sortMembers(kept)
	return &IntersectionType{types: kept}
}

// absorb keeps members in order, skipping a candidate already covered by a
// kept member and evicting kept members the candidate covers.
func absorb(types []Type, covers func(kept, candidate Type) bool) []Type {
	kept := make([]Type, 0, len(types))
	for _, candidate := range types {
		redundant := false
		for _, k := range kept {
			if identical(k, candidate) || covers(k, candidate) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		kept = slices.DeleteFunc(kept, func(k Type) bool {
			return covers(candidate, k)
		})
		kept = append(kept, candidate)
	}
	return kept
}

// identical is Equals extended to exclusions, which Equals ignores for
// object and template members.
func identical(a, b Type) bool {
	if !a.Equals(b) {
		return false
	}
	sa, ok := a.(SubtractableType)
	if !ok {
		return true
	}
	sb, ok := b.(SubtractableType)
	if !ok {
		return false
	}
	x, y := sa.SubtractedType(), sb.SubtractedType()
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return identical(x, y)
}

// disjoint reports whether two non-compound types provably share no value.
func disjoint(a, b Type) bool {
	if _, ok := a.(CompoundType); ok {
		return false
	}
	if _, ok := b.(CompoundType); ok {
		return false
	}
	return a.IsSuperTypeOf(b).IsNo() && b.IsSuperTypeOf(a).IsNo()
}

func sortMembers(types []Type) {
	slices.SortStableFunc(types, func(a, b Type) int {
		if c := strings.Compare(a.Describe(VerbosityPrecise), b.Describe(VerbosityPrecise)); c != 0 {
			return c
		}
		return strings.Compare(exclusionKey(a), exclusionKey(b))
	})
}

// exclusionKey orders members whose precise descriptions hide their
// exclusion, such as templates.
func exclusionKey(t Type) string {
	s, ok := t.(SubtractableType)
	if !ok || s.SubtractedType() == nil {
		return ""
	}
	excl := s.SubtractedType()
	return excl.Describe(VerbosityPrecise) + "~" + exclusionKey(excl)
}
