package types

import "fmt"

// NewTemplateType picks the template variant from the declared bound.
// A nil or exclusion-free mixed bound yields a TemplateMixedType and a class
// bound yields a TemplateObjectType carrying the bound's exclusion. Other
// bounds are rejected.
func NewTemplateType(
	scope TemplateTypeScope,
	bound Type,
	name string,
	variance Variance,
	strategy TemplateTypeStrategy,
) (TemplateType, error) {
	if name == "" {
		return nil, &ConstructionError{
			Code:    ErrCodeInvalidName,
			Message: "template name is empty",
			Field:   AttrName,
		}
	}
	if !scope.IsValid() {
		return nil, &ConstructionError{
			Code:    ErrCodeInvalidScope,
			Message: fmt.Sprintf("template %q has no declaration site", name),
			Field:   AttrScope,
		}
	}
	if strategy == nil {
		strategy = ParameterStrategy{}
	}

	switch b := bound.(type) {
	case nil:
		return NewTemplateMixedType(scope, strategy, variance, name, nil), nil
	case *MixedType:
		return NewTemplateMixedType(scope, strategy, variance, name, b.subtracted), nil
	case *ObjectType:
		return NewTemplateObjectType(scope, strategy, variance, name, b.class, b.subtracted), nil
	}
	return nil, &ConstructionError{
		Code:    ErrCodeUnsupportedBound,
		Message: fmt.Sprintf("template %q cannot be bounded by %s", name, bound.Describe(VerbosityPrecise)),
	}
}
