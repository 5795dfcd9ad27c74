package cbor

import (
	"math"

	"github.com/pkg/errors"
)

// Integer is a signed 64-bit integer data item (major types 0 and 1).
//
// An Integer may carry a major-type override recording which wire major
// type produced it. The override only affects re-encoding; equality and
// hashing ignore it.
type Integer struct {
	value    int64
	tag      Tag
	major    MajorType
	hasMajor bool
}

// NewInteger returns an untagged Integer.
func NewInteger(value int64) *Integer {
	return &Integer{value: value, tag: Untagged}
}

// NewTaggedInteger returns a tagged Integer. The tag must be valid.
func NewTaggedInteger(value int64, tag Tag) (*Integer, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	return &Integer{value: value, tag: tag}, nil
}

// NewIntegerWithMajor returns a tagged Integer with an explicit wire major
// type. The major type must be MajorUnsignedInt or MajorNegativeInt and
// must agree with the value's sign.
func NewIntegerWithMajor(value int64, tag Tag, major MajorType) (*Integer, error) {
	it, err := NewTaggedInteger(value, tag)
	if err != nil {
		return nil, err
	}
	switch major {
	case MajorUnsignedInt:
		if value < 0 {
			return nil, errors.Errorf("cbor: negative value %d cannot use the unsigned major type", value)
		}
	case MajorNegativeInt:
		if value >= 0 {
			return nil, errors.Errorf("cbor: non-negative value %d cannot use the negative major type", value)
		}
	default:
		return nil, errors.Errorf("cbor: %s is not an integer major type", major)
	}
	it.major = major
	it.hasMajor = true
	return it, nil
}

// Value returns the integer's value.
func (i *Integer) Value() int64 {
	return i.value
}

// Float64 returns the value converted to a float64.
func (i *Integer) Float64() float64 {
	return float64(i.value)
}

func (i *Integer) Tag() Tag {
	return i.tag
}

func (i *Integer) MajorType() MajorType {
	if i.hasMajor {
		return i.major
	}
	if i.value < 0 {
		return MajorNegativeInt
	}
	return MajorUnsignedInt
}

// Copy returns the receiver: Integers are immutable.
func (i *Integer) Copy() Item {
	return i
}

func (i *Integer) Hash() uint64 {
	return numberHash(i.tag, math.Float64bits(float64(i.value)), i.value)
}

func (i *Integer) item() {}
