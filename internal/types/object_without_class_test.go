package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/gentype/internal/trinary"
)

func TestObjectWithoutClassIsSuperTypeOfClass(t *testing.T) {
	foo := NewObjectType("Foo")
	bar := NewObjectType("Bar")

	t.Run("no exclusion", func(t *testing.T) {
		assert.Equal(t, trinary.Yes(), NewObjectWithoutClassType(nil).IsSuperTypeOf(foo))
	})

	t.Run("excluded class", func(t *testing.T) {
		owc := NewObjectWithoutClassType(foo)
		assert.Equal(t, trinary.No(), owc.IsSuperTypeOf(foo))
		assert.Equal(t, trinary.Yes(), owc.IsSuperTypeOf(bar))
	})

	t.Run("subclass of excluded class", func(t *testing.T) {
		child := NewObjectType("Child", "Foo")
		owc := NewObjectWithoutClassType(foo)
		assert.Equal(t, trinary.No(), owc.IsSuperTypeOf(child))
	})
}

func TestObjectWithoutClassIsSuperTypeOfUnknownObject(t *testing.T) {
	foo := NewObjectType("Foo")
	bar := NewObjectType("Bar")
	plain := NewObjectWithoutClassType(nil)
	withoutFoo := NewObjectWithoutClassType(foo)
	withoutBoth := NewObjectWithoutClassType(Union(foo, bar))

	assert.Equal(t, trinary.Yes(), plain.IsSuperTypeOf(withoutFoo))
	assert.Equal(t, trinary.Maybe(), withoutFoo.IsSuperTypeOf(plain))
	assert.Equal(t, trinary.Yes(), withoutFoo.IsSuperTypeOf(withoutBoth),
		"removing a larger set removes at least the smaller set")
	assert.Equal(t, trinary.Maybe(), withoutBoth.IsSuperTypeOf(withoutFoo))
}

func TestObjectWithoutClassIsSuperTypeOfOther(t *testing.T) {
	owc := NewObjectWithoutClassType(nil)
	foo := NewObjectType("Foo")
	bar := NewObjectType("Bar")

	assert.Equal(t, trinary.No(), owc.IsSuperTypeOf(NewIntegerType()))
	assert.Equal(t, trinary.Yes(), owc.IsSuperTypeOf(NewNeverType()))
	assert.Equal(t, trinary.Yes(), owc.IsSuperTypeOf(Union(foo, bar)))
	assert.Equal(t, trinary.No(), owc.IsSuperTypeOf(Union(foo, NewIntegerType())))
	assert.Equal(t, trinary.Yes(), foo.IsSubTypeOf(owc))
}

func TestObjectWithoutClassAccepts(t *testing.T) {
	owc := NewObjectWithoutClassType(nil)
	foo := NewObjectType("Foo")

	assert.Equal(t, trinary.Yes(), owc.Accepts(foo, true))
	assert.Equal(t, trinary.Yes(), owc.Accepts(NewObjectWithoutClassType(foo), true))
	assert.Equal(t, trinary.No(), owc.Accepts(NewStringType(), false))
	assert.Equal(t, trinary.Yes(), owc.Accepts(Union(foo, NewObjectType("Bar")), true))
	assert.Equal(t, trinary.No(), owc.Accepts(Union(foo, NewIntegerType()), true))
}

func TestObjectWithoutClassSubtract(t *testing.T) {
	owc := NewObjectWithoutClassType(nil)
	foo := NewObjectType("Foo")
	bar := NewObjectType("Bar")

	t.Run("self yields never", func(t *testing.T) {
		assert.True(t, owc.Subtract(NewObjectWithoutClassType(nil)).Equals(NewNeverType()))
		narrowed := NewObjectWithoutClassType(foo)
		assert.True(t, narrowed.Subtract(owc).Equals(NewNeverType()))
	})

	t.Run("exclusions accumulate in any order", func(t *testing.T) {
		ab := owc.Subtract(foo).(*ObjectWithoutClassType).Subtract(bar).(*ObjectWithoutClassType)
		ba := owc.Subtract(bar).(*ObjectWithoutClassType).Subtract(foo).(*ObjectWithoutClassType)
		assert.True(t, ab.SubtractedType().Equals(Union(foo, bar)))
		assert.True(t, ab.SubtractedType().Equals(ba.SubtractedType()))
	})

	t.Run("change replaces wholesale", func(t *testing.T) {
		changed := NewObjectWithoutClassType(foo).ChangeSubtractedType(bar).(*ObjectWithoutClassType)
		assert.True(t, changed.SubtractedType().Equals(bar))
		assert.Nil(t, changed.TypeWithoutSubtractedType().(*ObjectWithoutClassType).SubtractedType())
	})
}

func TestObjectWithoutClassDescribe(t *testing.T) {
	owc := NewObjectWithoutClassType(NewObjectType("Foo"))

	assert.Equal(t, "object", owc.Describe(VerbosityTypeOnly))
	assert.Equal(t, "object", owc.Describe(VerbosityValue))
	assert.Equal(t, "object~Foo", owc.Describe(VerbosityPrecise))
	assert.True(t, owc.Equals(NewObjectWithoutClassType(nil)), "exclusion is not part of identity")
}
