package cbor

import (
	"math"

	"github.com/pkg/errors"
)

// FloatWidth selects the wire width of a Float. Its value is the
// additional-information field the width encodes with.
type FloatWidth byte

const (
	// WidthHalf encodes as a two-byte IEEE-754 binary16 value.
	WidthHalf FloatWidth = addInfoUint16
	// WidthSingle encodes as a four-byte binary32 value.
	WidthSingle FloatWidth = addInfoUint32
	// WidthDouble encodes as an eight-byte binary64 value.
	WidthDouble FloatWidth = addInfoUint64
)

func (w FloatWidth) String() string {
	switch w {
	case WidthHalf:
		return "half"
	case WidthSingle:
		return "single"
	case WidthDouble:
		return "double"
	default:
		return "invalid"
	}
}

// Float is a floating-point data item. The width marker controls both the
// wire encoding and textual formatting, and is never narrowed or widened by
// the codec: a value decoded as a half re-encodes as a half even when it
// would fit losslessly elsewhere.
type Float struct {
	value float64
	width FloatWidth
	tag   Tag
}

// NewFloat16 returns an untagged Float that encodes as a half. The value
// should be within the binary16 domain; out-of-range values saturate on
// encode.
func NewFloat16(value float32) *Float {
	return &Float{value: float64(value), width: WidthHalf, tag: Untagged}
}

// NewFloat32 returns an untagged single-width Float.
func NewFloat32(value float32) *Float {
	return &Float{value: float64(value), width: WidthSingle, tag: Untagged}
}

// NewFloat64 returns an untagged double-width Float.
func NewFloat64(value float64) *Float {
	return &Float{value: value, width: WidthDouble, tag: Untagged}
}

// NewTaggedFloat returns a tagged Float with an explicit width.
func NewTaggedFloat(value float64, width FloatWidth, tag Tag) (*Float, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	switch width {
	case WidthHalf, WidthSingle, WidthDouble:
	default:
		return nil, errors.Errorf("cbor: invalid float width %d", width)
	}
	return &Float{value: value, width: width, tag: tag}, nil
}

// Value returns the value as a float64.
func (f *Float) Value() float64 {
	return f.value
}

// Float32 returns the value narrowed to a float32.
func (f *Float) Float32() float32 {
	return float32(f.value)
}

// Int64 returns the truncated integral value, saturating at the int64
// bounds; NaN maps to zero.
func (f *Float) Int64() int64 {
	return truncInt64(f.value)
}

// Width returns the wire width marker.
func (f *Float) Width() FloatWidth {
	return f.width
}

func (f *Float) Tag() Tag {
	return f.tag
}

func (f *Float) MajorType() MajorType {
	return MajorOther
}

// Copy returns the receiver: Floats are immutable.
func (f *Float) Copy() Item {
	return f
}

func (f *Float) Hash() uint64 {
	return numberHash(f.tag, math.Float64bits(f.value), truncInt64(f.value))
}

func (f *Float) item() {}
