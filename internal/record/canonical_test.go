package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"int", Int(42), "42"},
		{"negative int", Int(-100), "-100"},
		{"min int64", Int(-9223372036854775808), "-9223372036854775808"},
		{"bool", Bool(true), "true"},
		{"empty list", List{}, "[]"},
		{"empty object", Object{}, "{}"},
		{"nested", Object{"z": Object{"b": Int(1), "a": Int(2)}, "a": Int(3)}, `{"a":3,"z":{"a":2,"b":1}}`},
		{"list", List{String("x"), Int(1), Bool(false)}, `["x",1,false]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalUTF16Ordering(t *testing.T) {
	// U+10000 encodes as 0xD800 0xDC00 and sorts before U+E000 in UTF-16,
	// the reverse of UTF-8 byte order.
	obj := Object{
		"\uE000": Int(1),
		"𐀀":      Int(2),
	}

	result, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"𐀀":2,"`+"\uE000"+`":1}`, string(result))
}

func TestMarshalCanonicalStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"html is not escaped", "<a&b>", `"<a&b>"`},
		{"quote and backslash", `say "hi" \o/`, `"say \"hi\" \\o/"`},
		{"short escapes", "\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"other control", "\x01\x1f", `"\u0001\u001f"`},
		{"line separators stay literal", "a\u2028b\u2029", "\"a\u2028b\u2029\""},
		{"nfc", "e\u0301", "\"\u00e9\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MarshalCanonical(String(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(Object{"a": Null{}})
	assert.ErrorContains(t, err, "null is forbidden")

	_, err = MarshalCanonical(nil)
	assert.Error(t, err)
}

func TestParseRejectsFloats(t *testing.T) {
	_, err := Parse([]byte(`{"value": 1.5}`))
	assert.ErrorContains(t, err, "floats are forbidden")

	_, err = Parse([]byte(`[1e3]`))
	assert.ErrorContains(t, err, "floats are forbidden")

	v, err := Parse([]byte(`{"a": [1, "x", true, null]}`))
	require.NoError(t, err)
	assert.Equal(t, Object{"a": List{Int(1), String("x"), Bool(true), Null{}}}, v)

	_, err = ParseObject([]byte(`[1]`))
	assert.ErrorContains(t, err, "expected object")
}

func TestObjectMarshalJSONSortsKeys(t *testing.T) {
	data, err := Object{"b": Int(1), "a": List{String("<")}}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a":["\u003c"],"b":1}`, string(data))
}
