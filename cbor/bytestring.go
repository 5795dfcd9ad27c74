package cbor

import "github.com/pkg/errors"

// ByteString is an owned, immutable byte sequence data item (major type 2).
type ByteString struct {
	data []byte
	tag  Tag
}

// NewByteString returns an untagged ByteString holding a copy of data.
func NewByteString(data []byte) *ByteString {
	return &ByteString{data: copyBytes(data), tag: Untagged}
}

// NewTaggedByteString returns a tagged ByteString holding a copy of data.
func NewTaggedByteString(data []byte, tag Tag) (*ByteString, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	return &ByteString{data: copyBytes(data), tag: tag}, nil
}

// newDecodedByteString adopts data without copying. The decoder owns the
// buffer it hands over.
func newDecodedByteString(data []byte, tag Tag) *ByteString {
	return &ByteString{data: data, tag: tag}
}

// Bytes returns a copy of the byte sequence.
func (b *ByteString) Bytes() []byte {
	return copyBytes(b.data)
}

// Len returns the byte length.
func (b *ByteString) Len() int {
	return len(b.data)
}

func (b *ByteString) Tag() Tag {
	return b.tag
}

func (b *ByteString) MajorType() MajorType {
	return MajorByteString
}

// Copy returns the receiver: ByteStrings never expose their backing array.
func (b *ByteString) Copy() Item {
	return b
}

func (b *ByteString) Hash() uint64 {
	return tagSalt(b.tag) + contentHash(b.data)
}

func (b *ByteString) item() {}

func copyBytes(p []byte) []byte {
	if len(p) == 0 {
		return nil
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out
}
