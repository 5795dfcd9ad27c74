package cbor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual_NumericEquivalence(t *testing.T) {
	require.True(t, Equal(NewInteger(1), NewFloat64(1.0)))
	require.True(t, Equal(NewFloat64(1.0), NewInteger(1)))
	require.Equal(t, NewInteger(1).Hash(), NewFloat64(1.0).Hash())

	require.True(t, Equal(NewInteger(-4), NewFloat64(-4.0)))
	require.Equal(t, NewInteger(-4).Hash(), NewFloat64(-4.0).Hash())

	// Same truncated value, different bit pattern.
	require.False(t, Equal(NewInteger(1), NewFloat64(1.5)))
	// Negative zero truncates to 0 but has a different bit pattern.
	require.False(t, Equal(NewInteger(0), NewFloat64(math.Copysign(0, -1))))
	require.True(t, Equal(NewInteger(0), NewFloat64(0)))
}

func TestEqual_FloatWidthIgnored(t *testing.T) {
	// Width is an encoding preference, not part of the value.
	require.True(t, Equal(NewFloat16(1.5), NewFloat64(1.5)))
	require.Equal(t, NewFloat16(1.5).Hash(), NewFloat64(1.5).Hash())
}

func TestEqual_NaN(t *testing.T) {
	nan := NewFloat64(math.NaN())
	require.True(t, Equal(nan, NewFloat64(math.NaN())))
	require.False(t, Equal(nan, NewInteger(0)))
}

func TestEqual_TagsParticipate(t *testing.T) {
	plain := NewInteger(5)
	tagged, err := NewTaggedInteger(5, TagTimestampUnix)
	require.NoError(t, err)
	require.False(t, Equal(plain, tagged))
	require.NotEqual(t, plain.Hash(), tagged.Hash())
	require.True(t, Equal(tagged, tagged.Copy()))
}

func TestEqual_Strings(t *testing.T) {
	require.True(t, Equal(NewByteString([]byte{1, 2}), NewByteString([]byte{1, 2})))
	require.False(t, Equal(NewByteString([]byte{1, 2}), NewByteString([]byte{1, 3})))
	require.False(t, Equal(NewByteString([]byte("ab")), NewTextString("ab")))
	require.True(t, Equal(NewTextString("ab"), NewTextString("ab")))
}

func TestEqual_Aggregates(t *testing.T) {
	a1 := NewArray()
	a1.Add(NewInteger(1))
	a1.Add(NewTextString("x"))
	a2 := NewArray()
	a2.Add(NewInteger(1))
	a2.Add(NewTextString("x"))
	require.True(t, Equal(a1, a2))
	require.Equal(t, a1.Hash(), a2.Hash())

	a2.Add(Null)
	require.False(t, Equal(a1, a2))

	m1 := NewMap()
	m1.PutText("a", NewInteger(1))
	m1.PutText("b", NewInteger(2))
	m2 := NewMap()
	m2.PutText("b", NewInteger(2))
	m2.PutText("a", NewInteger(1))

	// Maps compare and hash independent of insertion order.
	require.True(t, Equal(m1, m2))
	require.Equal(t, m1.Hash(), m2.Hash())

	m2.PutText("a", NewInteger(3))
	require.False(t, Equal(m1, m2))
}

func TestCopy_Independence(t *testing.T) {
	arr := NewArray()
	inner := NewMap()
	inner.PutText("k", NewInteger(1))
	arr.Add(inner)

	dup := arr.Copy().(*Array)
	require.True(t, Equal(arr, dup))

	dup.Get(0).(*Map).PutText("k", NewInteger(2))
	require.False(t, Equal(arr, dup))
	require.Equal(t, int64(1), inner.GetText("k").(*Integer).Value())
}

func TestSimple_Interning(t *testing.T) {
	a, err := NewSimple(simpleTrue)
	require.NoError(t, err)
	b, err := NewSimple(simpleTrue)
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Same(t, True, a)

	_, err = NewSimple(24)
	require.Error(t, err)
	_, err = NewSimple(31)
	require.Error(t, err)
}
