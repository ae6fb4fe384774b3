package trinary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var all = []Logic{No(), Maybe(), Yes()}

func TestAndIsMinimum(t *testing.T) {
	for _, a := range all {
		for _, b := range all {
			want := a
			if b < a {
				want = b
			}
			assert.Equal(t, want, a.And(b), "%s AND %s", a, b)
		}
	}
}

func TestOrIsMaximum(t *testing.T) {
	for _, a := range all {
		for _, b := range all {
			want := a
			if b > a {
				want = b
			}
			assert.Equal(t, want, a.Or(b), "%s OR %s", a, b)
		}
	}
}

func TestNegate(t *testing.T) {
	assert.Equal(t, No(), Yes().Negate())
	assert.Equal(t, Yes(), No().Negate())
	assert.Equal(t, Maybe(), Maybe().Negate())
}

func TestVariadicCombinators(t *testing.T) {
	assert.Equal(t, No(), Yes().And(Maybe(), No(), Yes()))
	assert.Equal(t, Yes(), No().Or(Maybe(), Yes()))
	assert.Equal(t, Maybe(), Yes().And())
	assert.Equal(t, Maybe(), Maybe().Or())
}

func TestFromBool(t *testing.T) {
	assert.True(t, FromBool(true).IsYes())
	assert.True(t, FromBool(false).IsNo())
}

func TestQueries(t *testing.T) {
	assert.True(t, Maybe().IsMaybe())
	assert.False(t, Maybe().IsYes())
	assert.False(t, Maybe().IsNo())
	assert.Equal(t, No(), Logic(0), "zero value is No")
}

func TestExtremeIdentity(t *testing.T) {
	assert.Equal(t, Yes(), ExtremeIdentity(Yes(), Yes()))
	assert.Equal(t, No(), ExtremeIdentity(No(), No(), No()))
	assert.Equal(t, Maybe(), ExtremeIdentity(Yes(), No()))
	assert.Equal(t, Maybe(), ExtremeIdentity())
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, Yes(), MaxMin(No(), Yes()))
	assert.Equal(t, No(), MaxMin(No(), No()))
	assert.Equal(t, Maybe(), MaxMin(No(), Maybe()))
	assert.Equal(t, No(), MaxMin())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, No().Compare(Maybe()))
	assert.Equal(t, 1, Yes().Compare(Maybe()))
	assert.Equal(t, 0, Maybe().Compare(Maybe()))
}

func TestParse(t *testing.T) {
	for _, l := range all {
		parsed, err := Parse(l.Describe())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}

	parsed, err := Parse(" MAYBE ")
	require.NoError(t, err)
	assert.Equal(t, Maybe(), parsed)

	_, err = Parse("perhaps")
	assert.Error(t, err)
}

func TestTextMarshaling(t *testing.T) {
	data, err := json.Marshal(map[string]Logic{"result": Maybe()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"maybe"}`, string(data))

	var decoded struct {
		Expect Logic `yaml:"expect"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("expect: yes\n"), &decoded))
	assert.Equal(t, Yes(), decoded.Expect)

	assert.Error(t, yaml.Unmarshal([]byte("expect: sometimes\n"), &decoded))
}
