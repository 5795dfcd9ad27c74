package cbor

import (
	"sync"

	"github.com/pkg/errors"
)

// Simple is a payload-free data item of major type 7: the named constants
// true/false/null/undefined or a generic simple(n).
//
// Untagged Simple values are interned: for a given value, NewSimple always
// returns the same instance. The intern table is process-lifetime and safe
// for concurrent use. Tagged instances are never interned.
type Simple struct {
	value uint8
	tag   Tag
}

const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
)

var (
	internMu sync.Mutex
	interned = make(map[uint8]*Simple)
)

// The named simple value singletons.
var (
	False     = mustSimple(simpleFalse)
	True      = mustSimple(simpleTrue)
	Null      = mustSimple(simpleNull)
	Undefined = mustSimple(simpleUndefined)
)

func mustSimple(value uint8) *Simple {
	s, err := NewSimple(value)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSimple returns the untagged Simple for value. Values 24 through 31 are
// reserved by RFC 7049 and rejected.
func NewSimple(value uint8) (*Simple, error) {
	if value >= 24 && value <= 31 {
		return nil, errors.Errorf("cbor: reserved simple value %d", value)
	}
	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := interned[value]; ok {
		return s, nil
	}
	s := &Simple{value: value, tag: Untagged}
	interned[value] = s
	return s, nil
}

// NewTaggedSimple returns a tagged Simple. With tag == Untagged it is
// equivalent to NewSimple.
func NewTaggedSimple(value uint8, tag Tag) (*Simple, error) {
	if tag == Untagged {
		return NewSimple(value)
	}
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	if value >= 24 && value <= 31 {
		return nil, errors.Errorf("cbor: reserved simple value %d", value)
	}
	return &Simple{value: value, tag: tag}, nil
}

// Value returns the simple value number.
func (s *Simple) Value() uint8 {
	return s.value
}

func (s *Simple) Tag() Tag {
	return s.tag
}

func (s *Simple) MajorType() MajorType {
	return MajorOther
}

// Copy returns the receiver: Simples are immutable.
func (s *Simple) Copy() Item {
	return s
}

func (s *Simple) Hash() uint64 {
	return uint64(s.tag-Untagged)*257 + uint64(s.value)
}

func (s *Simple) item() {}
