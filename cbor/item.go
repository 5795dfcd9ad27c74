// Package cbor implements the RFC 7049 binary data-interchange format as a
// tree of typed data items, with a streaming decoder and encoder that are
// byte-exact with the wire format.
//
// The item model is a closed set: Integer, Float, ByteString, TextString,
// Array, Map and Simple, each carrying an optional Tag. Items are created
// either by decoding or by the New* constructors, and are immutable except
// for Array and Map, which are mutable containers.
package cbor

import (
	"bytes"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Item is one CBOR data item plus its optional tag.
//
// The set of implementations is closed: *Integer, *Float, *ByteString,
// *TextString, *Array, *Map and *Simple.
type Item interface {
	// Tag returns the item's tag, or Untagged.
	Tag() Tag

	// MajorType returns the wire major type the item encodes with.
	MajorType() MajorType

	// Copy returns a deep, independent copy of the item. Immutable kinds
	// may return the receiver itself.
	Copy() Item

	// Hash returns a structural hash consistent with Equal: items that
	// compare equal hash equal, including across the Integer/Float
	// numeric equivalence.
	Hash() uint64

	// IsValidJSON reports whether JSONString can represent the item
	// without substituting placeholder values.
	IsValidJSON() bool

	// JSONString renders the item as syntactically valid JSON text,
	// substituting placeholders where no JSON representation exists.
	JSONString() string

	// Diagnostic renders the item in RFC 7049 diagnostic notation.
	// A non-negative indent pretty-prints nested aggregates with that
	// many leading tab stops; a negative indent renders a single line.
	Diagnostic(indent int) string

	// String renders compact diagnostic notation.
	String() string

	item()
}

var (
	_ Item = (*Integer)(nil)
	_ Item = (*Float)(nil)
	_ Item = (*ByteString)(nil)
	_ Item = (*TextString)(nil)
	_ Item = (*Array)(nil)
	_ Item = (*Map)(nil)
	_ Item = (*Simple)(nil)
)

// Equal reports structural equality of two items. Tags must match. An
// Integer and a Float compare equal when the integer's value equals the
// float's truncated integral value and the float's bit pattern equals that
// of the integer converted to a float64; this preserves the numeric
// equivalence of RFC 7049 section 3.6 across container lookups.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag() != b.Tag() {
		return false
	}

	switch lhs := a.(type) {
	case *Integer:
		switch rhs := b.(type) {
		case *Integer:
			return lhs.value == rhs.value
		case *Float:
			return numericEquivalent(lhs, rhs)
		}
		return false

	case *Float:
		switch rhs := b.(type) {
		case *Float:
			return math.Float64bits(lhs.value) == math.Float64bits(rhs.value)
		case *Integer:
			return numericEquivalent(rhs, lhs)
		}
		return false

	case *ByteString:
		rhs, ok := b.(*ByteString)
		return ok && bytes.Equal(lhs.data, rhs.data)

	case *TextString:
		rhs, ok := b.(*TextString)
		return ok && lhs.value == rhs.value

	case *Array:
		rhs, ok := b.(*Array)
		if !ok || len(lhs.items) != len(rhs.items) {
			return false
		}
		for i, it := range lhs.items {
			if !Equal(it, rhs.items[i]) {
				return false
			}
		}
		return true

	case *Map:
		rhs, ok := b.(*Map)
		if !ok || len(lhs.entries) != len(rhs.entries) {
			return false
		}
		for _, entry := range lhs.entries {
			other := rhs.Get(entry.key)
			if other == nil || !Equal(entry.value, other) {
				return false
			}
		}
		return true

	case *Simple:
		rhs, ok := b.(*Simple)
		return ok && lhs.value == rhs.value
	}

	return false
}

func numericEquivalent(i *Integer, f *Float) bool {
	return i.value == truncInt64(f.value) &&
		math.Float64bits(f.value) == math.Float64bits(float64(i.value))
}

// truncInt64 converts a float64 to an int64 with saturating, truncating
// semantics: NaN maps to zero and out-of-range values clamp to the int64
// bounds. Go's native conversion is undefined for those inputs.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// mix is the splitmix64 finalizer, used to spread hash inputs.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// numberHash hashes a numeric item from its float64 bit pattern and its
// truncated integral value. Both components participate so that an Integer
// and a Float that compare equal hash equal, and ones that do not compare
// equal (same integral value, different bit pattern) are still spread.
func numberHash(tag Tag, floatBits uint64, intValue int64) uint64 {
	return (uint64(tag-Untagged)*1337 + mix(floatBits)) ^ mix(uint64(intValue))
}

// contentHash hashes raw byte content. blake2b keeps unrelated contents
// from colliding in map buckets regardless of input structure.
func contentHash(b []byte) uint64 {
	sum := blake2b.Sum256(b)
	return binary.BigEndian.Uint64(sum[:8])
}

func tagSalt(tag Tag) uint64 {
	return uint64(tag-Untagged) * 1337
}
