package types

import (
	"fmt"

	"github.com/roach88/gentype/internal/trinary"
)

// TemplateTypeStrategy decides how a template type accepts other types.
type TemplateTypeStrategy interface {
	// Accepts reports whether left accepts right.
	Accepts(left TemplateType, right Type, strict bool) trinary.Logic

	// IsArgument reports whether the template has been resolved at a call site.
	IsArgument() bool

	// Name returns "parameter" or "argument".
	Name() string
}

// ParameterStrategy is used while a template is still being solved: it
// accepts anything within its bound.
type ParameterStrategy struct{}

func (ParameterStrategy) Accepts(left TemplateType, right Type, strict bool) trinary.Logic {
	if c, ok := right.(CompoundType); ok {
		return c.IsAcceptedBy(left.Bound(), strict)
	}
	return left.Bound().Accepts(right, strict)
}

func (ParameterStrategy) IsArgument() bool { return false }

func (ParameterStrategy) Name() string { return "parameter" }

// ArgumentStrategy is used once a template has been resolved: only the same
// template identity is accepted for certain.
type ArgumentStrategy struct{}

func (ArgumentStrategy) Accepts(left TemplateType, right Type, strict bool) trinary.Logic {
	if c, ok := right.(CompoundType); ok {
		return c.IsAcceptedBy(left, strict)
	}
	rt, isTemplate := right.(TemplateType)
	if isTemplate && left.Equals(rt) {
		return trinary.Yes()
	}
	accepts := left.Bound().Accepts(right, strict).And(trinary.Maybe())
	if accepts.IsMaybe() {
		return trinary.FromBool(isTemplate && sameTemplateIdentity(left, rt))
	}
	return accepts
}

func (ArgumentStrategy) IsArgument() bool { return true }

func (ArgumentStrategy) Name() string { return "argument" }

// StrategyByName returns the strategy named "parameter" or "argument".
func StrategyByName(name string) (TemplateTypeStrategy, error) {
	switch name {
	case "parameter":
		return ParameterStrategy{}, nil
	case "argument":
		return ArgumentStrategy{}, nil
	}
	return nil, &ConstructionError{
		Code:    ErrCodeInvalidAttribute,
		Message: fmt.Sprintf("unknown strategy %q", name),
		Field:   AttrStrategy,
	}
}
