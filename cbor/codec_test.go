package cbor

import (
	"bytes"
	"encoding/hex"
	"testing"

	"cborg/stream"

	"github.com/stretchr/testify/require"
)

func TestDecodeMap(t *testing.T) {
	data, err := hex.DecodeString("a26161016162820203")
	require.NoError(t, err)
	m, err := DecodeMap(data)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	_, err = DecodeMap([]byte{0x00})
	require.Error(t, err)
	require.True(t, IsParseError(err))
}

func TestDecodeArray(t *testing.T) {
	data, err := hex.DecodeString("83010203")
	require.NoError(t, err)
	arr, err := DecodeArray(data)
	require.NoError(t, err)
	require.Equal(t, 3, arr.Len())

	_, err = DecodeArray([]byte{0x00})
	require.Error(t, err)
}

func TestEncodeTo(t *testing.T) {
	var out bytes.Buffer
	err := EncodeTo(NewTextString("IETF"), stream.NewWriterSink(&out))
	require.NoError(t, err)
	require.Equal(t, "6449455446", hex.EncodeToString(out.Bytes()))
}
