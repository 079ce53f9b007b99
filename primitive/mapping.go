package primitive

import (
	"iter"
)

// Mapping is an insertion-ordered key/value collection.
//
// Keys are identified by their literal rendering, so any two keys that would
// print the same are the same key, whatever their Go types. Setting an
// existing key replaces its value in place and keeps its original position.
//
// The zero value is an empty Mapping ready to use.
type Mapping struct {
	keys   []any
	values []any
	index  map[string]int
}

// NewMapping creates an empty Mapping with room for capacity entries.
func NewMapping(capacity int) *Mapping {
	capacity = max(capacity, 0)

	return &Mapping{
		keys:   make([]any, 0, capacity),
		values: make([]any, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set stores value under key.
func (m *Mapping) Set(key, value any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	id := Literal(key)
	if i, ok := m.index[id]; ok {
		m.values[i] = value
		return
	}

	m.index[id] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key any) (any, bool) {
	if m == nil {
		return nil, false
	}

	i, ok := m.index[Literal(key)]
	if !ok {
		return nil, false
	}

	return m.values[i], true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []any {
	if m == nil {
		return nil
	}

	return append([]any(nil), m.keys...)
}

// All iterates over the entries in insertion order.
func (m *Mapping) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}

		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}
