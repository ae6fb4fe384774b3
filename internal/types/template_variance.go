package types

import "fmt"

// Variance is the allowed direction of substitution at a template's usage position.
type Variance int8

const (
	Invariant Variance = iota
	Covariant
	Contravariant
	Bivariant
	Static
)

var varianceNames = [...]string{
	Invariant:     "invariant",
	Covariant:     "covariant",
	Contravariant: "contravariant",
	Bivariant:     "bivariant",
	Static:        "static",
}

// IsValidVariance reports whether substituting actual where declared is
// expected respects the variance.
func (v Variance) IsValidVariance(declared, actual Type) bool {
	if _, ok := actual.(*NeverType); ok {
		return true
	}
	switch v {
	case Invariant:
		return declared.Equals(actual)
	case Covariant:
		return declared.IsSuperTypeOf(actual).IsYes()
	case Contravariant:
		return actual.IsSuperTypeOf(declared).IsYes()
	case Bivariant:
		return true
	}
	return false
}

// Compose returns the variance of a position nested inside a position of variance v.
//
//	covariant     ∘ x             = x
//	contravariant ∘ covariant     = contravariant
//	contravariant ∘ contravariant = covariant
//	invariant     ∘ x             = invariant (unless x is bivariant)
//	bivariant     ∘ x             = bivariant
func (v Variance) Compose(inner Variance) Variance {
	switch {
	case v == Static || inner == Static:
		return Static
	case v == Bivariant || inner == Bivariant:
		return Bivariant
	case v == Invariant || inner == Invariant:
		return Invariant
	case v == Covariant:
		return inner
	case inner == Contravariant:
		return Covariant
	}
	return Contravariant
}

func (v Variance) String() string {
	if v >= 0 && int(v) < len(varianceNames) {
		return varianceNames[v]
	}
	return fmt.Sprintf("Variance(%d)", int8(v))
}

// Describe returns the lower-case variance name.
func (v Variance) Describe() string { return v.String() }

// ParseVariance reads a variance name.
func ParseVariance(s string) (Variance, error) {
	for v, name := range varianceNames {
		if name == s {
			return Variance(v), nil
		}
	}
	return Invariant, &ConstructionError{
		Code:    ErrCodeInvalidAttribute,
		Message: fmt.Sprintf("unknown variance %q", s),
		Field:   AttrVariance,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variance) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(varianceNames) {
		return nil, fmt.Errorf("invalid variance %d", int8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variance) UnmarshalText(text []byte) error {
	parsed, err := ParseVariance(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
