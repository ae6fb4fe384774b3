package types

import "fmt"

// VerbosityLevel selects how much detail Describe renders.
type VerbosityLevel int8

const (
	// VerbosityTypeOnly renders literals as their family ("int").
	VerbosityTypeOnly VerbosityLevel = iota
	// VerbosityValue renders literal values ("5").
	VerbosityValue
	// VerbosityPrecise adds exclusions and template scope details.
	VerbosityPrecise
)

// Handle picks the renderer matching the level.
func (l VerbosityLevel) Handle(typeOnly, value, precise func() string) string {
	switch l {
	case VerbosityTypeOnly:
		return typeOnly()
	case VerbosityValue:
		return value()
	default:
		return precise()
	}
}

func (l VerbosityLevel) String() string {
	switch l {
	case VerbosityTypeOnly:
		return "type_only"
	case VerbosityValue:
		return "value"
	case VerbosityPrecise:
		return "precise"
	}
	return fmt.Sprintf("VerbosityLevel(%d)", int8(l))
}

// ParseVerbosity reads "type_only", "value" or "precise".
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch s {
	case "type_only", "typeonly", "type":
		return VerbosityTypeOnly, nil
	case "value", "":
		return VerbosityValue, nil
	case "precise":
		return VerbosityPrecise, nil
	}
	return VerbosityValue, fmt.Errorf("unknown verbosity %q: must be type_only, value or precise", s)
}
