package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gentype/internal/types"
)

func TestTypeKeyDeterminism(t *testing.T) {
	u1 := types.Union(types.NewIntegerType(), types.NewStringType())
	u2 := types.Union(types.NewStringType(), types.NewIntegerType())

	k1, err := Key(u1)
	require.NoError(t, err)
	k2, err := Key(u2)
	require.NoError(t, err)

	assert.Equal(t, k1, k2, "normalized unions share a key")
	assert.Len(t, k1, 64, "SHA-256 hex is 64 characters")

	k3, err := Key(types.NewIntegerType())
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestTemplateKeyIncludesExclusion(t *testing.T) {
	scope := types.ScopeForFunction("f")
	plain := types.NewTemplateMixedType(scope, types.ParameterStrategy{}, types.Invariant, "T", nil)
	narrowed := plain.Subtract(types.NewIntegerType())

	require.True(t, plain.Equals(narrowed))
	k1, err := Key(plain)
	require.NoError(t, err)
	k2, err := Key(narrowed)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2, "records keep the exclusion even though identity ignores it")
}

func TestRelationAndInferenceKeys(t *testing.T) {
	left := MustTypeKey(MustEncode(types.NewIntegerType()))
	right := MustTypeKey(MustEncode(types.NewConstantIntegerType(5)))

	k1, err := RelationKey("super", left, right, false)
	require.NoError(t, err)
	k2, err := RelationKey("super", right, left, false)
	require.NoError(t, err)
	k3, err := RelationKey("accepts", left, right, true)
	require.NoError(t, err)
	k4, err := RelationKey("accepts", left, right, false)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2, "operand order matters")
	assert.NotEqual(t, k3, k4, "strictness matters")

	i1, err := InferenceKey(left, right)
	require.NoError(t, err)
	assert.NotEqual(t, k1, i1, "domains are separated")
}
