package cbor

import "github.com/pkg/errors"

// Array is an ordered, mutable sequence of data items (major type 4).
// Arrays are not safe for concurrent mutation.
type Array struct {
	items []Item
	tag   Tag
}

// NewArray returns an empty untagged Array.
func NewArray() *Array {
	return &Array{tag: Untagged}
}

// NewTaggedArray returns an empty tagged Array.
func NewTaggedArray(tag Tag) (*Array, error) {
	if !tag.IsValid() {
		return nil, errors.Errorf("cbor: invalid tag value %d", tag)
	}
	return &Array{tag: tag}, nil
}

// Add appends an item.
func (a *Array) Add(item Item) {
	a.items = append(a.items, item)
}

// Remove removes the first element structurally equal to item and reports
// whether one was found.
func (a *Array) Remove(item Item) bool {
	for i, it := range a.items {
		if Equal(it, item) {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all elements.
func (a *Array) Clear() {
	a.items = a.items[:0]
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// Get returns the element at index i.
func (a *Array) Get(i int) Item {
	return a.items[i]
}

// Items returns the backing slice for iteration. Callers must not modify
// it directly; use Add/Remove/Clear.
func (a *Array) Items() []Item {
	return a.items
}

func (a *Array) Tag() Tag {
	return a.tag
}

func (a *Array) MajorType() MajorType {
	return MajorArray
}

// Copy returns a deep copy of the array and all of its elements.
func (a *Array) Copy() Item {
	out := &Array{tag: a.tag, items: make([]Item, 0, len(a.items))}
	for _, it := range a.items {
		out.items = append(out.items, it.Copy())
	}
	return out
}

func (a *Array) Hash() uint64 {
	h := tagSalt(a.tag) + 1
	for _, it := range a.items {
		h = h*31 + it.Hash()
	}
	return h
}

func (a *Array) item() {}
