package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTypes covers every kind, including nested exclusions.
func sampleTypes() []Type {
	foo := NewObjectType("Foo")
	child := NewObjectType("Child", "Foo")
	return []Type{
		NewMixedType(),
		NewMixedTypeWithout(NewIntegerType()),
		NewNeverType(),
		NewIntegerType(),
		NewStringType(),
		NewBooleanType(),
		NewFloatType(),
		NewConstantIntegerType(-42),
		NewConstantStringType("héllo"),
		NewConstantBooleanType(false),
		foo,
		NewObjectTypeFromClass(NewClassInfo("Foo"), child),
		NewObjectWithoutClassType(nil),
		NewObjectWithoutClassType(Union(foo, NewObjectType("Bar"))),
		Union(NewIntegerType(), NewStringType()),
		NewIntersectionType(foo, NewObjectType("Countable")),
		templateMixed("T", nil),
		templateMixed("T", NewIntegerType()).ToArgument(),
		templateObject("T", "Child", "Foo"),
		NewTemplateObjectType(ScopeForMethod("Repo", "find"), ArgumentStrategy{}, Bivariant, "E",
			NewClassInfo("Foo"), child),
	}
}

func TestStateRoundTrip(t *testing.T) {
	for _, typ := range sampleTypes() {
		t.Run(typ.Describe(VerbosityPrecise), func(t *testing.T) {
			kind, props := ExportState(typ)
			restored, err := RestoreState(kind, props, nil)
			require.NoError(t, err)

			assert.True(t, restored.Equals(typ))
			assert.Equal(t, typ.Describe(VerbosityPrecise), restored.Describe(VerbosityPrecise))
			assert.Equal(t, kind, restored.Kind())
		})
	}
}

func TestRestoreStateResolvesClasses(t *testing.T) {
	r := NewClassRegistry()
	require.NoError(t, r.Define("Foo"))
	require.NoError(t, r.Define("Child", "Foo"))

	restored, err := RestoreState(KindObject, Properties{AttrClass: "Child"}, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo"}, restored.(*ObjectType).Class().Ancestors)

	_, err = RestoreState(KindObject, Properties{AttrClass: "Nope"}, r)
	assert.True(t, IsUnknownClass(err))

	restored, err = RestoreState(KindObject, Properties{AttrClass: "Nope"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nope", restored.(*ObjectType).ClassName())

	restored, err = RestoreState(KindTemplateObject, Properties{
		AttrScope:     "class:Box",
		AttrName:      "T",
		AttrStrategy:  "parameter",
		AttrVariance:  "covariant",
		AttrClass:     "Child",
		AttrAncestors: []any{"Foo"},
	}, r)
	require.NoError(t, err)
	assert.Equal(t, "T of Child (class Box, parameter)", restored.Describe(VerbosityPrecise))
}

func TestRestoreStateErrors(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		props Properties
		code  ConstructionErrorCode
	}{
		{"unknown kind", Kind("array"), Properties{}, ErrCodeUnknownKind},
		{"missing value", KindConstantInteger, Properties{}, ErrCodeMissingAttribute},
		{"wrong value", KindConstantString, Properties{AttrValue: int64(1)}, ErrCodeInvalidAttribute},
		{"empty union", KindUnion, Properties{AttrTypes: []Type{}}, ErrCodeInvalidAttribute},
		{"bad subtracted", KindMixed, Properties{AttrSubtractedType: "int"}, ErrCodeInvalidAttribute},
		{"bad scope", KindTemplateMixed, Properties{
			AttrScope: "nowhere", AttrName: "T", AttrStrategy: "parameter", AttrVariance: "invariant",
		}, ErrCodeInvalidScope},
		{"bad strategy", KindTemplateMixed, Properties{
			AttrScope: "function:f", AttrName: "T", AttrStrategy: "solver", AttrVariance: "invariant",
		}, ErrCodeInvalidAttribute},
		{"empty name", KindTemplateMixed, Properties{
			AttrScope: "function:f", AttrName: "", AttrStrategy: "parameter", AttrVariance: "invariant",
		}, ErrCodeInvalidName},
		{"missing class", KindTemplateObject, Properties{
			AttrScope: "function:f", AttrName: "T", AttrStrategy: "parameter", AttrVariance: "invariant",
		}, ErrCodeMissingAttribute},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RestoreState(tc.kind, tc.props, nil)
			require.Error(t, err)
			assert.True(t, IsConstructionError(err, tc.code), err.Error())
		})
	}
}
