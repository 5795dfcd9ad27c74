package cbor

import "math"

// Tag is an integer annotation that changes a data item's semantic
// interpretation. Every item carries exactly one tag slot; Untagged marks
// its absence. If the wire presents stacked tags before a value, only the
// innermost tag is retained.
type Tag int64

// Untagged indicates the absence of a tag. It is not a wire tag value.
const Untagged Tag = -1

// Well-known tag values from RFC 7049 section 2.4.
const (
	TagTimeDateString    Tag = 0
	TagTimestampUnix     Tag = 1
	TagBignumPos         Tag = 2
	TagBignumNeg         Tag = 3
	TagFraction          Tag = 4
	TagBigfloat          Tag = 5
	TagExpectedBase64URL Tag = 21
	TagExpectedBase64    Tag = 22
	TagExpectedBase16    Tag = 23
	TagCBORDataItem      Tag = 24
	TagURI               Tag = 32
	TagBase64URL         Tag = 33
	TagBase64            Tag = 34
	TagRegex             Tag = 35
	TagSelfDescribeCBOR  Tag = 55799
)

// MaxTag is the largest tag value this implementation supports.
const MaxTag Tag = math.MaxInt32

// IsValid reports whether t is Untagged or a supported wire tag value.
func (t Tag) IsValid() bool {
	return t >= Untagged && t <= MaxTag
}
