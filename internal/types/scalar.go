package types

import (
	"strconv"

	"github.com/roach88/gentype/internal/trinary"
)

// IntegerType is the general int family.
type IntegerType struct{ typ }

// StringType is the general string family.
type StringType struct{ typ }

// BooleanType is the general bool family.
type BooleanType struct{ typ }

// FloatType is the general float family. It accepts ints in non-strict mode.
type FloatType struct{ typ }

func NewIntegerType() *IntegerType { return &IntegerType{} }
func NewStringType() *StringType { return &StringType{} }
func NewBooleanType() *BooleanType { return &BooleanType{} }
func NewFloatType() *FloatType { return &FloatType{} }

func (*IntegerType) Kind() Kind { return KindInteger }
func (*StringType) Kind() Kind { return KindString }
func (*BooleanType) Kind() Kind { return KindBoolean }
func (*FloatType) Kind() Kind { return KindFloat }

func (*IntegerType) Describe(VerbosityLevel) string { return "int" }
func (*StringType) Describe(VerbosityLevel) string { return "string" }
func (*BooleanType) Describe(VerbosityLevel) string { return "bool" }
func (*FloatType) Describe(VerbosityLevel) string { return "float" }

func (i *IntegerType) Equals(other Type) bool {
	_, ok := other.(*IntegerType)
	return ok
}

func (s *StringType) Equals(other Type) bool {
	_, ok := other.(*StringType)
	return ok
}

func (b *BooleanType) Equals(other Type) bool {
	_, ok := other.(*BooleanType)
	return ok
}

func (f *FloatType) Equals(other Type) bool {
	_, ok := other.(*FloatType)
	return ok
}

func (i *IntegerType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(i, t); ok {
		return r
	}
	switch t.(type) {
	case *IntegerType, *ConstantIntegerType:
		return trinary.Yes()
	}
	return trinary.No()
}

func (s *StringType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(s, t); ok {
		return r
	}
	switch t.(type) {
	case *StringType, *ConstantStringType:
		return trinary.Yes()
	}
	return trinary.No()
}

func (b *BooleanType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(b, t); ok {
		return r
	}
	switch t.(type) {
	case *BooleanType, *ConstantBooleanType:
		return trinary.Yes()
	}
	return trinary.No()
}

func (f *FloatType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(f, t); ok {
		return r
	}
	_, ok := t.(*FloatType)
	return trinary.FromBool(ok)
}

func (i *IntegerType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(i) }
func (s *StringType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(s) }
func (b *BooleanType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(b) }
func (f *FloatType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(f) }

func (i *IntegerType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(i, t, strict)
}

func (s *StringType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(s, t, strict)
}

func (b *BooleanType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(b, t, strict)
}

func (f *FloatType) Accepts(t Type, strict bool) trinary.Logic {
	if !strict {
		switch t.(type) {
		case *IntegerType, *ConstantIntegerType:
			return trinary.Yes()
		}
	}
	return acceptsBySuperType(f, t, strict)
}

func (*IntegerType) state() Properties { return Properties{} }
func (*StringType) state() Properties { return Properties{} }
func (*BooleanType) state() Properties { return Properties{} }
func (*FloatType) state() Properties { return Properties{} }

// ConstantIntegerType is a single int literal.
type ConstantIntegerType struct {
	typ
	value int64
}

// NewConstantIntegerType returns the literal type of v.
func NewConstantIntegerType(v int64) *ConstantIntegerType {
	return &ConstantIntegerType{value: v}
}

// Value returns the literal.
func (c *ConstantIntegerType) Value() int64 { return c.value }

func (c *ConstantIntegerType) Kind() Kind { return KindConstantInteger }

func (c *ConstantIntegerType) Describe(level VerbosityLevel) string {
	return level.Handle(
		func() string { return "int" },
		func() string { return strconv.FormatInt(c.value, 10) },
		func() string { return strconv.FormatInt(c.value, 10) },
	)
}

func (c *ConstantIntegerType) Equals(other Type) bool {
	o, ok := other.(*ConstantIntegerType)
	return ok && o.value == c.value
}

func (c *ConstantIntegerType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(c, t); ok {
		return r
	}
	switch t := t.(type) {
	case *ConstantIntegerType:
		return trinary.FromBool(t.value == c.value)
	case *IntegerType:
		return trinary.Maybe()
	}
	return trinary.No()
}

func (c *ConstantIntegerType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(c) }

func (c *ConstantIntegerType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(c, t, strict)
}

func (c *ConstantIntegerType) state() Properties {
	return Properties{AttrValue: c.value}
}

// ConstantStringType is a single string literal.
type ConstantStringType struct {
	typ
	value string
}

// NewConstantStringType returns the literal type of v.
func NewConstantStringType(v string) *ConstantStringType {
	return &ConstantStringType{value: v}
}

// Value returns the literal.
func (c *ConstantStringType) Value() string { return c.value }

func (c *ConstantStringType) Kind() Kind { return KindConstantString }

func (c *ConstantStringType) Describe(level VerbosityLevel) string {
	return level.Handle(
		func() string { return "string" },
		func() string { return strconv.Quote(c.value) },
		func() string { return strconv.Quote(c.value) },
	)
}

func (c *ConstantStringType) Equals(other Type) bool {
	o, ok := other.(*ConstantStringType)
	return ok && o.value == c.value
}

func (c *ConstantStringType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(c, t); ok {
		return r
	}
	switch t := t.(type) {
	case *ConstantStringType:
		return trinary.FromBool(t.value == c.value)
	case *StringType:
		return trinary.Maybe()
	}
	return trinary.No()
}

func (c *ConstantStringType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(c) }

func (c *ConstantStringType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(c, t, strict)
}

func (c *ConstantStringType) state() Properties {
	return Properties{AttrValue: c.value}
}

// ConstantBooleanType is true or false.
type ConstantBooleanType struct {
	typ
	value bool
}

// NewConstantBooleanType returns the literal type of v.
func NewConstantBooleanType(v bool) *ConstantBooleanType {
	return &ConstantBooleanType{value: v}
}

// Value returns the literal.
func (c *ConstantBooleanType) Value() bool { return c.value }

func (c *ConstantBooleanType) Kind() Kind { return KindConstantBoolean }

func (c *ConstantBooleanType) Describe(level VerbosityLevel) string {
	return level.Handle(
		func() string { return "bool" },
		func() string { return strconv.FormatBool(c.value) },
		func() string { return strconv.FormatBool(c.value) },
	)
}

func (c *ConstantBooleanType) Equals(other Type) bool {
	o, ok := other.(*ConstantBooleanType)
	return ok && o.value == c.value
}

func (c *ConstantBooleanType) IsSuperTypeOf(t Type) trinary.Logic {
	if r, ok := dispatchSuperType(c, t); ok {
		return r
	}
	switch t := t.(type) {
	case *ConstantBooleanType:
		return trinary.FromBool(t.value == c.value)
	case *BooleanType:
		return trinary.Maybe()
	}
	return trinary.No()
}

func (c *ConstantBooleanType) IsSubTypeOf(t Type) trinary.Logic { return t.IsSuperTypeOf(c) }

func (c *ConstantBooleanType) Accepts(t Type, strict bool) trinary.Logic {
	return acceptsBySuperType(c, t, strict)
}

func (c *ConstantBooleanType) state() Properties {
	return Properties{AttrValue: c.value}
}
