package cbor

import (
	"strings"

	"github.com/pkg/errors"
)

// TextString is an owned, immutable UTF-8 text data item (major type 3).
//
// Decoding is permissive: invalid UTF-8 sequences are replaced with
// U+FFFD in the string value rather than rejected. The original raw bytes
// are retained and re-encoded verbatim, so a round trip stays byte-exact
// even for malformed input.
type TextString struct {
	value string
	raw   []byte
	tag   Tag
}

// NewTextString returns an untagged TextString.
func NewTextString(value string) *TextString {
	return &TextString{
		value: strings.ToValidUTF8(value, "�"),
		raw:   []byte(value),
		tag:   Untagged,
	}
}

// NewTaggedTextString returns a tagged TextString.
func NewTaggedTextString(value string, tag Tag) (*TextString, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	it := NewTextString(value)
	it.tag = tag
	return it, nil
}

// newDecodedTextString adopts raw without copying.
func newDecodedTextString(raw []byte, tag Tag) *TextString {
	return &TextString{
		value: strings.ToValidUTF8(string(raw), "�"),
		raw:   raw,
		tag:   tag,
	}
}

// Value returns the decoded string value.
func (t *TextString) Value() string {
	return t.value
}

// Len returns the encoded byte length.
func (t *TextString) Len() int {
	return len(t.raw)
}

func (t *TextString) Tag() Tag {
	return t.tag
}

func (t *TextString) MajorType() MajorType {
	return MajorTextString
}

// Copy returns the receiver: TextStrings are immutable.
func (t *TextString) Copy() Item {
	return t
}

func (t *TextString) Hash() uint64 {
	return tagSalt(t.tag) + contentHash([]byte(t.value))
}

func (t *TextString) item() {}
