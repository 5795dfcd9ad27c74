package half

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func assertRoundTrip(t *testing.T, value float32, bits uint16) {
	require.Equal(t, value, Decode(bits))
	require.Equal(t, bits, Encode(value))
}

func TestHalf_KnownValues(t *testing.T) {
	assertRoundTrip(t, 0.0, 0x0000)
	assertRoundTrip(t, float32(math.Copysign(0, -1)), 0x8000)
	assertRoundTrip(t, 1.0, 0x3C00)
	assertRoundTrip(t, -2.0, 0xC000)
	assertRoundTrip(t, MaxValue, 0x7BFF)
	assertRoundTrip(t, MinNormal, 0x0400)
	assertRoundTrip(t, MinValue, 0x0001)
	assertRoundTrip(t, 0.3332519531, 0x3555)
	assertRoundTrip(t, float32(math.Inf(1)), 0x7C00)
	assertRoundTrip(t, float32(math.Inf(-1)), 0xFC00)
}

func TestHalf_NaN(t *testing.T) {
	require.True(t, math.IsNaN(float64(Decode(0x7E00))))
	require.True(t, math.IsNaN(float64(Decode(0x7FFF))))
	require.True(t, math.IsNaN(float64(Decode(0xFFFF))))
	require.Equal(t, uint16(0x7E00), Encode(float32(math.NaN())))
}

func TestHalf_Epsilon(t *testing.T) {
	require.Equal(t, Epsilon, Decode(Encode(1.0)+1)-1.0)
}

func TestHalf_Saturation(t *testing.T) {
	require.Equal(t, uint16(0x7C00), Encode(65536.0))
	require.Equal(t, uint16(0xFC00), Encode(-65536.0))
}

func TestHalf_FlushToZero(t *testing.T) {
	require.Equal(t, uint16(0x0000), Encode(1e-9))
	require.Equal(t, uint16(0x8000), Encode(-1e-9))
}

func TestHalf_DecodeRangeBounds(t *testing.T) {
	// No half value decodes above MaxValue or, for positive nonzero
	// patterns, below MinValue.
	for i := 0; i <= 0xFFFF; i++ {
		v := Decode(uint16(i))
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			continue
		}
		require.True(t, v <= MaxValue, "0x%04X decodes above MaxValue", i)
		require.True(t, v >= -MaxValue, "0x%04X decodes below -MaxValue", i)
		if i&0x8000 == 0 && v != 0 {
			require.True(t, v >= MinValue, "0x%04X decodes below MinValue", i)
		}
	}
}

func TestHalf_ExhaustiveRoundTrip(t *testing.T) {
	// Every finite half value must survive a decode/encode cycle
	// bit-exactly.
	for i := 0; i <= 0xFFFF; i++ {
		bits := uint16(i)
		v := Decode(bits)
		if math.IsNaN(float64(v)) {
			continue
		}
		require.Equal(t, bits, Encode(v), "bits 0x%04X", i)
	}
}
