package cbor

import (
	"encoding/hex"
	"math"
	"testing"

	"cborg/stream"

	"github.com/stretchr/testify/require"
)

func mustEncode(t *testing.T, item Item) string {
	t.Helper()
	out, err := Encode(item)
	require.NoError(t, err)
	return hex.EncodeToString(out)
}

func TestWriter_IntegerOperandWidths(t *testing.T) {
	tests := []struct {
		value int64
		hex   string
	}{
		{0, "00"},
		{1, "01"},
		{23, "17"},
		{24, "1818"},
		{255, "18ff"},
		{256, "190100"},
		{500, "1901f4"},
		{65535, "19ffff"},
		{65536, "1a00010000"},
		{math.MaxUint32, "1affffffff"},
		{math.MaxUint32 + 1, "1b0000000100000000"},
		{math.MaxInt64, "1b7fffffffffffffff"},
		{-1, "20"},
		{-24, "37"},
		{-25, "3818"},
		{-100, "3863"},
		{-500, "3901f3"},
		{-1000, "3903e7"},
		{math.MinInt64, "3b7fffffffffffffff"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.hex, mustEncode(t, NewInteger(tt.value)), "value %d", tt.value)
	}
}

func TestWriter_Floats(t *testing.T) {
	require.Equal(t, "f93c00", mustEncode(t, NewFloat16(1.0)))
	require.Equal(t, "f97bff", mustEncode(t, NewFloat16(65504.0)))
	require.Equal(t, "fa47c35000", mustEncode(t, NewFloat32(100000.0)))
	require.Equal(t, "fb3ff199999999999a", mustEncode(t, NewFloat64(1.1)))
	require.Equal(t, "f97c00", mustEncode(t, NewFloat16(float32(math.Inf(1)))))
	require.Equal(t, "fb7ff0000000000000", mustEncode(t, NewFloat64(math.Inf(1))))
}

func TestWriter_Strings(t *testing.T) {
	require.Equal(t, "40", mustEncode(t, NewByteString(nil)))
	require.Equal(t, "4401020304", mustEncode(t, NewByteString([]byte{1, 2, 3, 4})))
	require.Equal(t, "60", mustEncode(t, NewTextString("")))
	require.Equal(t, "6449455446", mustEncode(t, NewTextString("IETF")))
	require.Equal(t, "62c3bc", mustEncode(t, NewTextString("ü")))
}

func TestWriter_Aggregates(t *testing.T) {
	arr := NewArray()
	for i := 1; i <= 3; i++ {
		arr.Add(NewInteger(int64(i)))
	}
	require.Equal(t, "83010203", mustEncode(t, arr))

	big := NewArray()
	for i := 1; i <= 25; i++ {
		big.Add(NewInteger(int64(i)))
	}
	require.Equal(t,
		"98190102030405060708090a0b0c0d0e0f101112131415161718181819",
		mustEncode(t, big))

	inner := NewArray()
	inner.Add(NewInteger(2))
	inner.Add(NewInteger(3))
	m := NewMap()
	m.PutText("a", NewInteger(1))
	m.PutText("b", inner)
	require.Equal(t, "a26161016162820203", mustEncode(t, m))
}

func TestWriter_Tagged(t *testing.T) {
	i, err := NewTaggedInteger(1363896240, TagTimestampUnix)
	require.NoError(t, err)
	require.Equal(t, "c11a514b67b0", mustEncode(t, i))

	s, err := NewTaggedTextString("http://www.example.com", TagURI)
	require.NoError(t, err)
	require.Equal(t, "d82076687474703a2f2f7777772e6578616d706c652e636f6d", mustEncode(t, s))
}

func TestWriter_Simple(t *testing.T) {
	require.Equal(t, "f4", mustEncode(t, False))
	require.Equal(t, "f5", mustEncode(t, True))
	require.Equal(t, "f6", mustEncode(t, Null))
	require.Equal(t, "f7", mustEncode(t, Undefined))

	s, err := NewSimple(255)
	require.NoError(t, err)
	require.Equal(t, "f8ff", mustEncode(t, s))
}

func TestWriter_Length(t *testing.T) {
	items := []Item{
		NewInteger(0),
		NewInteger(1000000),
		NewFloat64(1.1),
		NewTextString("streaming"),
		NewByteString([]byte{1, 2, 3, 4}),
	}
	m := NewMap()
	m.PutText("a", NewInteger(1))
	items = append(items, m)

	for _, item := range items {
		encoded, err := Encode(item)
		require.NoError(t, err)
		require.Equal(t, len(encoded), Length(item))
	}
}

func TestWriter_FixedBufferOverflow(t *testing.T) {
	buf := stream.NewFixedBuffer(make([]byte, 2))
	err := NewWriter(buf).WriteItem(NewTextString("IETF"))
	require.Equal(t, stream.ErrOverflow, err)
}

func TestWriter_RoundTrip(t *testing.T) {
	// Definite-length inputs re-encode byte for byte.
	vectors := []string{
		"00", "1864", "3903e7", "1b000000e8d4a51000",
		"f93c00", "fa47c35000", "fb3ff199999999999a",
		"4401020304", "6449455446",
		"83010203", "8301820203820405",
		"a26161016162820203",
		"c11a514b67b0", "d74401020304",
		"f4", "f6", "f8ff",
	}
	for _, v := range vectors {
		require.Equal(t, v, mustEncode(t, mustDecode(t, v)), "vector %s", v)
	}
}

func TestWriter_IndefiniteBecomesDefinite(t *testing.T) {
	require.Equal(t, "6973747265616d696e67",
		mustEncode(t, mustDecode(t, "7f657374726561646d696e67ff")))
	require.Equal(t, "83010203",
		mustEncode(t, mustDecode(t, "9f010203ff")))
}
