package types

import "github.com/roach88/gentype/internal/trinary"

// ObjectType is an instance of a named class, optionally minus an excluded subset.
type ObjectType struct {
	typ
	class      ClassInfo
	subtracted Type
}

// NewObjectType builds an object type from a class name and its ancestors.
// Use ClassRegistry.Object to validate the class first.
func NewObjectType(class string, ancestors ...string) *ObjectType {
	return &ObjectType{class: NewClassInfo(class, ancestors...)}
}

// NewObjectTypeFromClass builds an object type from resolved class info.
func NewObjectTypeFromClass(class ClassInfo, subtracted Type) *ObjectType {
	return &ObjectType{class: class, subtracted: subtracted}
}

// ClassName returns the class name.
func (o *ObjectType) ClassName() string { return o.class.Name }

// Class returns the class with its ancestry.
func (o *ObjectType) Class() ClassInfo { return o.class }

func (o *ObjectType) Kind() Kind { return KindObject }

func (o *ObjectType) Describe(level VerbosityLevel) string {
	return describeWithExclusion(o.class.Name, o.subtracted, level)
}

func (o *ObjectType) Equals(other Type) bool {
	t, ok := other.(*ObjectType)
	return ok && t.class.Name == o.class.Name && equalOptional(o.subtracted, t.subtracted)
}

func (o *ObjectType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(o, t); ok {
		return r
	}

	switch t := t.(type) {
	case *ObjectWithoutClassType:
		return trinary.Maybe()
	case *ObjectType:
		limit := trinary.Yes()
		if o.subtracted != nil {
			covered := o.subtracted.IsSuperTypeOf(t)
			if covered.IsYes() {
				return trinary.No()
			}
			if !covered.IsNo() && !exclusionCovers(t, o.subtracted) {
				limit = trinary.Maybe()
			}
		}
		return o.classRelation(t.class).And(limit)
	}
	return trinary.No()
}

// classRelation compares class hierarchies: Yes when other is this class or
// a descendant, Maybe when this class descends from other, No otherwise.
func (o *ObjectType) classRelation(other ClassInfo) trinary.Logic {
	if other.IsSubclassOf(o.class.Name) {
		return trinary.Yes()
	}
	if o.class.IsSubclassOf(other.Name) {
		return trinary.Maybe()
	}
	return trinary.No()
}

func (o *ObjectType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(o) }

func (o *ObjectType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(o, t, strict)
}

func (o *ObjectType) Subtract(t Type) Type {
	if t.IsSuperTypeOf(o.TypeWithoutSubtractedType()).IsYes() {
		return NewNeverType()
	}
	if o.subtracted != nil {
		t = Union(o.subtracted, t)
	}
	return NewObjectTypeFromClass(o.class, t)
}

func (o *ObjectType) TypeWithoutSubtractedType() Type {
	return NewObjectTypeFromClass(o.class, nil)
}

func (o *ObjectType) ChangeSubtractedType(t Type) Type {
	return NewObjectTypeFromClass(o.class, t)
}

func (o *ObjectType) SubtractedType() Type { return o.subtracted }

func (o *ObjectType) state() Properties {
	return Properties{}.withClass(o.class).withSubtracted(o.subtracted)
}
