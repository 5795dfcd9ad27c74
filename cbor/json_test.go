package cbor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON_Scalars(t *testing.T) {
	require.Equal(t, "0", NewInteger(0).JSONString())
	require.Equal(t, "-1000", NewInteger(-1000).JSONString())
	require.True(t, NewInteger(0).IsValidJSON())

	require.Equal(t, "1.5", NewFloat64(1.5).JSONString())
	require.Equal(t, "1.0", NewFloat64(1).JSONString())
	require.Equal(t, "1.1", NewFloat64(1.1).JSONString())

	require.Equal(t, "false", False.JSONString())
	require.Equal(t, "true", True.JSONString())
	require.Equal(t, "null", Null.JSONString())
	require.True(t, Null.IsValidJSON())
}

func TestJSON_NonFiniteFloats(t *testing.T) {
	for _, f := range []*Float{
		NewFloat64(math.NaN()),
		NewFloat64(math.Inf(1)),
		NewFloat64(math.Inf(-1)),
	} {
		require.False(t, f.IsValidJSON())
		require.Equal(t, "null", f.JSONString())
	}
}

func TestJSON_Text(t *testing.T) {
	require.Equal(t, `"IETF"`, NewTextString("IETF").JSONString())
	require.Equal(t, `"a\"b"`, NewTextString(`a"b`).JSONString())
	require.True(t, NewTextString("").IsValidJSON())
}

func TestJSON_ByteStrings(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}

	plain := NewByteString(data)
	require.False(t, plain.IsValidJSON())

	b16, err := NewTaggedByteString(data, TagExpectedBase16)
	require.NoError(t, err)
	require.True(t, b16.IsValidJSON())
	require.Equal(t, `"deadbeef"`, b16.JSONString())

	b64, err := NewTaggedByteString(data, TagExpectedBase64)
	require.NoError(t, err)
	require.True(t, b64.IsValidJSON())
	require.Equal(t, `"3q2+7w=="`, b64.JSONString())

	b64url, err := NewTaggedByteString(data, TagExpectedBase64URL)
	require.NoError(t, err)
	require.True(t, b64url.IsValidJSON())
	require.Equal(t, `"3q2-7w"`, b64url.JSONString())
}

func TestJSON_UndefinedAndReservedSimple(t *testing.T) {
	require.False(t, Undefined.IsValidJSON())
	require.Equal(t, `"undefined"`, Undefined.JSONString())

	s, err := NewSimple(100)
	require.NoError(t, err)
	require.False(t, s.IsValidJSON())
	require.Equal(t, `"simple(100)"`, s.JSONString())
}

func TestJSON_Aggregates(t *testing.T) {
	arr := NewArray()
	arr.Add(NewInteger(1))
	arr.Add(NewTextString("two"))
	arr.Add(Null)
	require.True(t, arr.IsValidJSON())
	require.Equal(t, `[1,"two",null]`, arr.JSONString())

	arr.Add(NewFloat64(math.NaN()))
	require.False(t, arr.IsValidJSON())
	require.Equal(t, `[1,"two",null,null]`, arr.JSONString())

	m := NewMap()
	m.PutText("a", NewInteger(1))
	m.PutText("b", arr)
	require.False(t, m.IsValidJSON())

	m2 := NewMap()
	m2.PutText("x", True)
	require.True(t, m2.IsValidJSON())
	require.Equal(t, `{"x":true}`, m2.JSONString())
}

func TestJSON_DecodedDocument(t *testing.T) {
	m := mustDecode(t, "a26161016162820203").(*Map)
	require.True(t, m.IsValidJSON())
	require.Equal(t, `{"a":1,"b":[2,3]}`, m.JSONString())
}
