package trinary

import (
	"fmt"
	"strings"
)

// Logic is a three-valued boolean.
// The zero value is No.
type Logic int8

const (
	no Logic = iota
	maybe
	yes
)

// Yes returns the Yes value.
func Yes() Logic { return yes }

// No returns the No value.
func No() Logic { return no }

// Maybe returns the Maybe value.
func Maybe() Logic { return maybe }

// FromBool maps true to Yes and false to No.
func FromBool(b bool) Logic {
	if b {
		return yes
	}
	return no
}

// IsYes reports whether l is Yes.
func (l Logic) IsYes() bool { return l == yes }

// IsNo reports whether l is No.
func (l Logic) IsNo() bool { return l == no }

// IsMaybe reports whether l is Maybe.
func (l Logic) IsMaybe() bool { return l == maybe }

// And returns the minimum of l and others.
func (l Logic) And(others ...Logic) Logic {
	out := l
	for _, o := range others {
		if o < out {
			out = o
		}
	}
	return out
}

// Or returns the maximum of l and others.
func (l Logic) Or(others ...Logic) Logic {
	out := l
	for _, o := range others {
		if o > out {
			out = o
		}
	}
	return out
}

// Negate swaps Yes and No. Maybe stays Maybe.
func (l Logic) Negate() Logic {
	return yes - l
}

// Equals reports whether l and other are the same value.
func (l Logic) Equals(other Logic) bool { return l == other }

// Compare returns -1, 0 or 1 following No < Maybe < Yes.
func (l Logic) Compare(other Logic) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	}
	return 0
}

// ExtremeIdentity returns the common value when all operands agree, Maybe otherwise.
// An empty operand list yields Maybe.
func ExtremeIdentity(operands ...Logic) Logic {
	if len(operands) == 0 {
		return maybe
	}
	first := operands[0]
	for _, o := range operands[1:] {
		if o != first {
			return maybe
		}
	}
	return first
}

// MaxMin returns Yes if any operand is Yes, No if all are No, Maybe otherwise.
// Used for relations against intersections where one member decides the answer.
func MaxMin(operands ...Logic) Logic {
	if len(operands) == 0 {
		return no
	}
	allNo := true
	for _, o := range operands {
		if o == yes {
			return yes
		}
		if o != no {
			allNo = false
		}
	}
	if allNo {
		return no
	}
	return maybe
}

// String renders the value as "Yes", "No" or "Maybe".
func (l Logic) String() string {
	switch l {
	case yes:
		return "Yes"
	case maybe:
		return "Maybe"
	case no:
		return "No"
	}
	return fmt.Sprintf("Logic(%d)", int8(l))
}

// Describe renders the lower-case form used in records and scenario files.
func (l Logic) Describe() string {
	return strings.ToLower(l.String())
}

// Parse reads "yes", "no" or "maybe" (case-insensitive).
func Parse(s string) (Logic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return yes, nil
	case "no":
		return no, nil
	case "maybe":
		return maybe, nil
	}
	return no, fmt.Errorf("unknown trinary value %q: must be yes, no or maybe", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Logic) MarshalText() ([]byte, error) {
	if l < no || l > yes {
		return nil, fmt.Errorf("invalid trinary value %d", int8(l))
	}
	return []byte(l.Describe()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Logic) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
