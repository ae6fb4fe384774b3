package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gentype/internal/trinary"
)

func TestUnion(t *testing.T) {
	i, s := NewIntegerType(), NewStringType()

	assert.True(t, Union().Equals(NewNeverType()))
	assert.True(t, Union(i, NewNeverType()).Equals(i))
	assert.True(t, Union(i, NewConstantIntegerType(5)).Equals(i))
	assert.True(t, Union(NewConstantIntegerType(5), i).Equals(i))
	assert.True(t, Union(NewMixedType(), i).Equals(NewMixedType()))
	assert.True(t, Union(i, s).Equals(Union(s, i)))
	assert.Equal(t, "int|string", Union(s, i).Describe(VerbosityValue))

	nested, ok := Union(Union(i, s), NewFloatType()).(*UnionType)
	require.True(t, ok)
	assert.Len(t, nested.Types(), 3)
}

func TestIntersect(t *testing.T) {
	foo := NewObjectType("Foo")
	child := NewObjectType("Child", "Foo")

	assert.True(t, Intersect().Equals(NewMixedType()))
	assert.True(t, Intersect(foo, child).Equals(child))
	assert.True(t, Intersect(NewMixedType(), NewIntegerType()).Equals(NewIntegerType()))
	assert.True(t, Intersect(NewIntegerType(), NewStringType()).Equals(NewNeverType()))
	assert.True(t, Intersect(NewNeverType(), foo).Equals(NewNeverType()))
}

func TestCombinatorKeepsExclusionsOrderIndependent(t *testing.T) {
	foo := NewObjectType("Foo")
	object := NewObjectWithoutClassType(nil)
	objectNoFoo := NewObjectWithoutClassType(foo)

	t.Run("union keeps the wider member", func(t *testing.T) {
		for _, u := range []Type{Union(object, objectNoFoo), Union(objectNoFoo, object)} {
			assert.Equal(t, "object", u.Describe(VerbosityPrecise))
			assert.Equal(t, trinary.Yes(), u.IsSuperTypeOf(foo))
		}
	})

	t.Run("intersect keeps the narrower member", func(t *testing.T) {
		for _, i := range []Type{Intersect(object, objectNoFoo), Intersect(objectNoFoo, object)} {
			assert.Equal(t, "object~Foo", i.Describe(VerbosityPrecise))
			assert.Equal(t, trinary.No(), i.IsSuperTypeOf(foo))
		}
	})

	t.Run("same parameter with different exclusions", func(t *testing.T) {
		withoutInt := templateMixed("T", NewIntegerType())
		withoutString := templateMixed("T", NewStringType())
		ab := Union(withoutInt, withoutString)
		ba := Union(withoutString, withoutInt)

		members, ok := ab.(*UnionType)
		require.True(t, ok, "neither exclusion covers the other")
		assert.Len(t, members.Types(), 2)
		assert.Equal(t, exclusionKey(ab.(*UnionType).Types()[0]), exclusionKey(ba.(*UnionType).Types()[0]))
		assert.True(t, ab.Equals(ba))
	})

	t.Run("identical members collapse", func(t *testing.T) {
		of := templateObject("T", "Foo")
		assert.Same(t, of, Union(of, of))
		assert.True(t, Union(objectNoFoo, NewObjectWithoutClassType(foo)).Equals(objectNoFoo))
	})

	t.Run("exclusions accumulate in any order", func(t *testing.T) {
		bar := NewObjectType("Bar")
		ab := object.Subtract(foo).(*ObjectWithoutClassType).Subtract(bar).(*ObjectWithoutClassType)
		ba := object.Subtract(bar).(*ObjectWithoutClassType).Subtract(foo).(*ObjectWithoutClassType)
		assert.Equal(t, ab.Describe(VerbosityPrecise), ba.Describe(VerbosityPrecise))
		assert.Equal(t, "object~Bar|Foo", ab.Describe(VerbosityPrecise))
	})
}

func TestGeneralizeType(t *testing.T) {
	assert.True(t, GeneralizeType(NewConstantIntegerType(5)).Equals(NewIntegerType()))
	assert.True(t, GeneralizeType(NewConstantStringType("a")).Equals(NewStringType()))
	assert.True(t, GeneralizeType(NewConstantBooleanType(true)).Equals(NewBooleanType()))
	assert.True(t, GeneralizeType(
		NewUnionType(NewConstantIntegerType(1), NewConstantIntegerType(2), NewConstantStringType("a")),
	).Equals(Union(NewIntegerType(), NewStringType())))

	foo := NewObjectType("Foo")
	assert.Same(t, foo, GeneralizeType(foo))
}
