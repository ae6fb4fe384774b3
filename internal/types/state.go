package types

import (
	"fmt"
	"slices"
)

// Attribute names of the flat record every type value is rebuilt from.
const (
	AttrValue          = "value"
	AttrTypes          = "types"
	AttrSubtractedType = "subtractedType"
	AttrClass          = "class"
	AttrAncestors      = "ancestors"
	AttrScope          = "scope"
	AttrName           = "name"
	AttrStrategy       = "strategy"
	AttrVariance       = "variance"
)

// Properties is the named-attribute record of a type value.
//
// Attribute values are string, int64, bool, []string, Type or []Type.
// Nested types stay as values; encoders recurse through ExportState.
type Properties map[string]any

func (p Properties) withSubtracted(t Type) Properties {
	if t != nil {
		p[AttrSubtractedType] = t
	}
	return p
}

func (p Properties) withClass(c ClassInfo) Properties {
	p[AttrClass] = c.Name
	p[AttrAncestors] = slices.Clone(c.Ancestors)
	return p
}

// ExportState returns the kind and attributes that rebuild t.
func ExportState(t Type) (Kind, Properties) {
	return t.Kind(), t.state()
}

// RestoreState rebuilds a type value from its kind and attributes.
//
// Class attributes without ancestors are resolved through classes; a nil
// registry takes the class as a root. Nested attributes must already be
// restored Type values.
func RestoreState(kind Kind, p Properties, classes *ClassRegistry) (Type, error) {
	switch kind {
	case KindMixed:
		sub, err := p.optionalType(AttrSubtractedType)
		if err != nil {
			return nil, err
		}
		return NewMixedTypeWithout(sub), nil
	case KindNever:
		return NewNeverType(), nil
	case KindInteger:
		return NewIntegerType(), nil
	case KindString:
		return NewStringType(), nil
	case KindBoolean:
		return NewBooleanType(), nil
	case KindFloat:
		return NewFloatType(), nil
	case KindConstantInteger:
		v, err := p.int64Attr(AttrValue)
		if err != nil {
			return nil, err
		}
		return NewConstantIntegerType(v), nil
	case KindConstantString:
		v, err := p.stringAttr(AttrValue)
		if err != nil {
			return nil, err
		}
		return NewConstantStringType(v), nil
	case KindConstantBoolean:
		v, ok := p[AttrValue]
		if !ok {
			return nil, missingAttribute(AttrValue)
		}
		b, ok := v.(bool)
		if !ok {
			return nil, invalidAttribute(AttrValue, v)
		}
		return NewConstantBooleanType(b), nil
	case KindObjectWithoutClass:
		sub, err := p.optionalType(AttrSubtractedType)
		if err != nil {
			return nil, err
		}
		return NewObjectWithoutClassType(sub), nil
	case KindObject:
		class, err := p.class(classes)
		if err != nil {
			return nil, err
		}
		sub, err := p.optionalType(AttrSubtractedType)
		if err != nil {
			return nil, err
		}
		return NewObjectTypeFromClass(class, sub), nil
	case KindUnion, KindIntersection:
		members, err := p.typesAttr(AttrTypes)
		if err != nil {
			return nil, err
		}
		if kind == KindUnion {
			return NewUnionType(members...), nil
		}
		return NewIntersectionType(members...), nil
	case KindTemplateMixed, KindTemplateObject:
		return p.template(kind, classes)
	}
	return nil, &ConstructionError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("unknown type kind %q", kind),
	}
}

func (p Properties) template(kind Kind, classes *ClassRegistry) (Type, error) {
	key, err := p.stringAttr(AttrScope)
	if err != nil {
		return nil, err
	}
	scope, err := ParseScopeKey(key)
	if err != nil {
		return nil, err
	}
	name, err := p.stringAttr(AttrName)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ConstructionError{Code: ErrCodeInvalidName, Message: "template name is empty", Field: AttrName}
	}
	strategyName, err := p.stringAttr(AttrStrategy)
	if err != nil {
		return nil, err
	}
	strategy, err := StrategyByName(strategyName)
	if err != nil {
		return nil, err
	}
	varianceName, err := p.stringAttr(AttrVariance)
	if err != nil {
		return nil, err
	}
	variance, err := ParseVariance(varianceName)
	if err != nil {
		return nil, err
	}
	sub, err := p.optionalType(AttrSubtractedType)
	if err != nil {
		return nil, err
	}

	if kind == KindTemplateMixed {
		return NewTemplateMixedType(scope, strategy, variance, name, sub), nil
	}
	class, err := p.class(classes)
	if err != nil {
		return nil, err
	}
	return NewTemplateObjectType(scope, strategy, variance, name, class, sub), nil
}

func (p Properties) class(classes *ClassRegistry) (ClassInfo, error) {
	name, err := p.stringAttr(AttrClass)
	if err != nil {
		return ClassInfo{}, err
	}
	if name == "" {
		return ClassInfo{}, &ConstructionError{Code: ErrCodeInvalidName, Message: "class name is empty", Field: AttrClass}
	}
	raw, ok := p[AttrAncestors]
	if !ok {
		if classes == nil {
			return NewClassInfo(name), nil
		}
		return classes.Class(name)
	}
	switch v := raw.(type) {
	case []string:
		return NewClassInfo(name, v...), nil
	case []any:
		ancestors := make([]string, 0, len(v))
		for _, a := range v {
			s, ok := a.(string)
			if !ok {
				return ClassInfo{}, invalidAttribute(AttrAncestors, a)
			}
			ancestors = append(ancestors, s)
		}
		return NewClassInfo(name, ancestors...), nil
	}
	return ClassInfo{}, invalidAttribute(AttrAncestors, raw)
}

func (p Properties) stringAttr(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", missingAttribute(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidAttribute(name, v)
	}
	return s, nil
}

func (p Properties) int64Attr(name string) (int64, error) {
	v, ok := p[name]
	if !ok {
		return 0, missingAttribute(name)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	}
	return 0, invalidAttribute(name, v)
}

func (p Properties) optionalType(name string) (Type, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return nil, nil
	}
	t, ok := v.(Type)
	if !ok {
		return nil, invalidAttribute(name, v)
	}
	return t, nil
}

func (p Properties) typesAttr(name string) ([]Type, error) {
	v, ok := p[name]
	if !ok {
		return nil, missingAttribute(name)
	}
	members, ok := v.([]Type)
	if !ok {
		return nil, invalidAttribute(name, v)
	}
	if len(members) == 0 {
		return nil, &ConstructionError{
			Code:    ErrCodeInvalidAttribute,
			Message: "compound type has no members",
			Field:   name,
		}
	}
	return slices.Clone(members), nil
}
