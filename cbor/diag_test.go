package cbor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnostic_Scalars(t *testing.T) {
	require.Equal(t, "0", NewInteger(0).String())
	require.Equal(t, "-100", NewInteger(-100).String())
	require.Equal(t, "false", False.String())
	require.Equal(t, "null", Null.String())
	require.Equal(t, "undefined", Undefined.String())
	require.Equal(t, "simple(100)", mustSimple(100).String())
}

func TestDiagnostic_FloatWidthSuffix(t *testing.T) {
	require.Equal(t, "1.5_1", NewFloat16(1.5).String())
	require.Equal(t, "1.5_2", NewFloat32(1.5).String())
	require.Equal(t, "1.5_3", NewFloat64(1.5).String())
	require.Equal(t, "1.0_3", NewFloat64(1).String())
	require.Equal(t, "NaN_3", NewFloat64(math.NaN()).String())
	require.Equal(t, "Infinity_1", NewFloat16(float32(math.Inf(1))).String())
	require.Equal(t, "-Infinity_3", NewFloat64(math.Inf(-1)).String())
}

func TestDiagnostic_Strings(t *testing.T) {
	require.Equal(t, "h''", NewByteString(nil).String())
	require.Equal(t, "h'01020304'", NewByteString([]byte{1, 2, 3, 4}).String())
	require.Equal(t, `"IETF"`, NewTextString("IETF").String())
	require.Equal(t, `"a\"b"`, NewTextString(`a"b`).String())
}

func TestDiagnostic_Tags(t *testing.T) {
	i, err := NewTaggedInteger(1363896240, TagTimestampUnix)
	require.NoError(t, err)
	require.Equal(t, "1(1363896240)", i.String())

	b, err := NewTaggedByteString([]byte{1, 2}, TagExpectedBase16)
	require.NoError(t, err)
	require.Equal(t, "23(h'0102')", b.String())
}

func TestDiagnostic_Aggregates(t *testing.T) {
	require.Equal(t, "[]", NewArray().String())
	require.Equal(t, "{}", NewMap().String())

	arr := mustDecode(t, "8301820203820405")
	require.Equal(t, "[1, [2, 3], [4, 5]]", arr.String())

	m := mustDecode(t, "a26161016162820203")
	require.Equal(t, `{"a": 1, "b": [2, 3]}`, m.String())
}

func TestDiagnostic_PrettyPrint(t *testing.T) {
	m := mustDecode(t, "a26161016162820203")
	expected := "{\n\t\"a\": 1,\n\t\"b\": [\n\t\t2,\n\t\t3\n\t]\n}"
	require.Equal(t, expected, m.Diagnostic(0))
}
