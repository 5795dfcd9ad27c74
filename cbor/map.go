package cbor

import "github.com/pkg/errors"

// Map is an ordered mapping from data item to data item (major type 5).
// Iteration and serialization follow insertion order. Keys are compared by
// full structural equality (Equal); putting an equal key overwrites the
// existing value in place. Maps are not safe for concurrent mutation.
type Map struct {
	entries []mapEntry
	index   map[uint64][]int
	tag     Tag
}

type mapEntry struct {
	key   Item
	value Item
}

// MapEntry is one key/value pair of a Map in iteration order.
type MapEntry struct {
	Key   Item
	Value Item
}

// NewMap returns an empty untagged Map.
func NewMap() *Map {
	return &Map{index: make(map[uint64][]int), tag: Untagged}
}

// NewTaggedMap returns an empty tagged Map.
func NewTaggedMap(tag Tag) (*Map, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	m := NewMap()
	m.tag = tag
	return m, nil
}

func (m *Map) find(key Item) int {
	for _, i := range m.index[key.Hash()] {
		if Equal(m.entries[i].key, key) {
			return i
		}
	}
	return -1
}

// Put associates value with key. A later put with an equal key silently
// overwrites the earlier value; the key's original insertion position is
// kept.
func (m *Map) Put(key, value Item) {
	if i := m.find(key); i >= 0 {
		m.entries[i].value = value
		return
	}
	h := key.Hash()
	m.entries = append(m.entries, mapEntry{key: key, value: value})
	m.index[h] = append(m.index[h], len(m.entries)-1)
}

// Get returns the value associated with key, or nil if absent.
func (m *Map) Get(key Item) Item {
	if i := m.find(key); i >= 0 {
		return m.entries[i].value
	}
	return nil
}

// Contains reports whether key is present.
func (m *Map) Contains(key Item) bool {
	return m.find(key) >= 0
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key Item) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.reindex()
	return true
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.entries = m.entries[:0]
	m.index = make(map[uint64][]int)
}

func (m *Map) reindex() {
	m.index = make(map[uint64][]int, len(m.entries))
	for i, entry := range m.entries {
		h := entry.key.Hash()
		m.index[h] = append(m.index[h], i)
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns the key/value pairs in insertion order. The returned
// slice is fresh; the items are shared.
func (m *Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	for i, entry := range m.entries {
		out[i] = MapEntry{Key: entry.key, Value: entry.value}
	}
	return out
}

// PutText, GetText, ContainsText and DeleteText operate on untagged text
// string keys, for the common case of string-keyed maps. They will not
// match tagged text string keys.

func (m *Map) PutText(key string, value Item) {
	m.Put(NewTextString(key), value)
}

func (m *Map) GetText(key string) Item {
	return m.Get(NewTextString(key))
}

func (m *Map) ContainsText(key string) bool {
	return m.Contains(NewTextString(key))
}

func (m *Map) DeleteText(key string) bool {
	return m.Delete(NewTextString(key))
}

// AllKeysText reports whether every key is an untagged text string, i.e.
// whether StringMap and a faithful JSON object rendering are possible.
func (m *Map) AllKeysText() bool {
	for _, entry := range m.entries {
		if k, ok := entry.key.(*TextString); !ok || k.tag != Untagged {
			return false
		}
	}
	return true
}

func (m *Map) Tag() Tag {
	return m.tag
}

func (m *Map) MajorType() MajorType {
	return MajorMap
}

// Copy returns a deep copy of the map, its keys and its values.
func (m *Map) Copy() Item {
	out := NewMap()
	out.tag = m.tag
	for _, entry := range m.entries {
		out.Put(entry.key.Copy(), entry.value.Copy())
	}
	return out
}

// Hash is insertion-order independent, matching Equal's order-independent
// entry comparison.
func (m *Map) Hash() uint64 {
	h := tagSalt(m.tag)
	for _, entry := range m.entries {
		h += entry.key.Hash() ^ mix(entry.value.Hash())
	}
	return h
}

func (m *Map) item() {}
