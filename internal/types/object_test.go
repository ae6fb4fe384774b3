package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/gentype/internal/trinary"
)

func TestObjectTypeIsSuperTypeOf(t *testing.T) {
	foo := NewObjectType("Foo")
	child := NewObjectType("Child", "Foo")
	other := NewObjectType("Other")

	assert.Equal(t, trinary.Yes(), foo.IsSuperTypeOf(child))
	assert.Equal(t, trinary.Maybe(), child.IsSuperTypeOf(foo))
	assert.Equal(t, trinary.No(), foo.IsSuperTypeOf(other))
	assert.Equal(t, trinary.Maybe(), foo.IsSuperTypeOf(NewObjectWithoutClassType(nil)))
	assert.Equal(t, trinary.Maybe(), foo.IsSuperTypeOf(NewMixedType()))
	assert.Equal(t, trinary.No(), foo.IsSuperTypeOf(NewIntegerType()))

	withoutChild := foo.Subtract(child).(*ObjectType)
	assert.Equal(t, trinary.No(), withoutChild.IsSuperTypeOf(child))
	assert.Equal(t, trinary.Maybe(), withoutChild.IsSuperTypeOf(foo))
	assert.Equal(t, trinary.Yes(), foo.IsSuperTypeOf(withoutChild))
	assert.Equal(t, "Foo~Child", withoutChild.Describe(VerbosityPrecise))
	assert.Equal(t, "Foo", withoutChild.Describe(VerbosityValue))
}

func TestObjectTypeSubtract(t *testing.T) {
	foo := NewObjectType("Foo")

	assert.True(t, foo.Subtract(foo).Equals(NewNeverType()))
	assert.True(t, foo.Subtract(NewObjectWithoutClassType(nil)).Equals(NewNeverType()))
	assert.False(t, foo.Equals(foo.Subtract(NewObjectType("Child", "Foo"))))
}

func TestMixedType(t *testing.T) {
	mixed := NewMixedType()
	withoutInt := mixed.Subtract(NewIntegerType()).(*MixedType)

	assert.Equal(t, trinary.Yes(), mixed.IsSuperTypeOf(withoutInt))
	assert.Equal(t, trinary.Maybe(), withoutInt.IsSuperTypeOf(mixed))
	assert.Equal(t, trinary.No(), withoutInt.IsSuperTypeOf(NewConstantIntegerType(3)))
	assert.Equal(t, trinary.Yes(), withoutInt.IsSuperTypeOf(NewStringType()))
	assert.Equal(t, trinary.Maybe(), NewIntegerType().IsSuperTypeOf(mixed))
	assert.True(t, mixed.Subtract(mixed).Equals(NewNeverType()))
	assert.Equal(t, "mixed~int", withoutInt.Describe(VerbosityPrecise))
	assert.Equal(t, trinary.No(), withoutInt.Accepts(NewIntegerType(), true))
	assert.Equal(t, trinary.Yes(), mixed.Accepts(NewIntegerType(), true))
}

func TestScalarFamilies(t *testing.T) {
	five := NewConstantIntegerType(5)

	assert.Equal(t, trinary.Yes(), NewIntegerType().IsSuperTypeOf(five))
	assert.Equal(t, trinary.Maybe(), five.IsSuperTypeOf(NewIntegerType()))
	assert.Equal(t, trinary.No(), five.IsSuperTypeOf(NewConstantIntegerType(6)))
	assert.Equal(t, trinary.No(), NewStringType().IsSuperTypeOf(five))
	assert.Equal(t, trinary.Yes(), NewFloatType().Accepts(five, false))
	assert.Equal(t, trinary.No(), NewFloatType().Accepts(five, true))

	assert.Equal(t, "int", five.Describe(VerbosityTypeOnly))
	assert.Equal(t, "5", five.Describe(VerbosityValue))
	assert.Equal(t, `"a"`, NewConstantStringType("a").Describe(VerbosityValue))
	assert.Equal(t, "true", NewConstantBooleanType(true).Describe(VerbosityPrecise))
}
