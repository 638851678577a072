// Package namedlist provides an ordered collection whose entries are looked up both by
// position and by a string key derived from each value.
//
// Keys are unique. Adding a value whose key is already present returns the existing index
// and leaves the list unchanged. Removing an entry shifts every later entry down by one,
// so indices held across a removal are stale.
package namedlist

import (
	"iter"
	"slices"
)

// List is an insertion-ordered set of values keyed by name. The zero value is not usable;
// create lists with New.
type List[V any] struct {
	key    func(V) string
	values []V
	index  map[string]int
}

// New returns an empty list that keys each value with key. Keys are compared exactly;
// callers that want case-insensitive lookup normalize names before adding.
func New[V any](key func(V) string) *List[V] {
	return &List[V]{key: key, index: make(map[string]int)}
}

// Add appends v and returns its index. If an entry with the same key exists, its index is
// returned and v is discarded.
func (l *List[V]) Add(v V) int {
	k := l.key(v)
	if i, ok := l.index[k]; ok {
		return i
	}
	l.values = append(l.values, v)
	l.index[k] = len(l.values) - 1
	return len(l.values) - 1
}

// Get returns the value at index i. ok is false when i is out of bounds.
func (l *List[V]) Get(i int) (v V, ok bool) {
	if i < 0 || i >= len(l.values) {
		return v, false
	}
	return l.values[i], true
}

// GetByKey returns the value keyed k.
func (l *List[V]) GetByKey(k string) (v V, ok bool) {
	i, ok := l.index[k]
	if !ok {
		return v, false
	}
	return l.values[i], true
}

// IndexOf returns the index of the value keyed k, or -1.
func (l *List[V]) IndexOf(k string) int {
	if i, ok := l.index[k]; ok {
		return i
	}
	return -1
}

func (l *List[V]) Contains(k string) bool {
	_, ok := l.index[k]
	return ok
}

// RemoveKey removes the value keyed k and reports whether it was present.
func (l *List[V]) RemoveKey(k string) bool {
	i, ok := l.index[k]
	if !ok {
		return false
	}
	l.removeAt(i)
	return true
}

// RemoveIndex removes and returns the value at index i. ok is false when i is out of bounds.
func (l *List[V]) RemoveIndex(i int) (v V, ok bool) {
	if i < 0 || i >= len(l.values) {
		return v, false
	}
	v = l.values[i]
	l.removeAt(i)
	return v, true
}

func (l *List[V]) removeAt(i int) {
	delete(l.index, l.key(l.values[i]))
	l.values = slices.Delete(l.values, i, i+1)
	for j := i; j < len(l.values); j++ {
		l.index[l.key(l.values[j])] = j
	}
}

func (l *List[V]) Len() int { return len(l.values) }

func (l *List[V]) IsEmpty() bool { return len(l.values) == 0 }

// All yields every entry with its index, in order.
func (l *List[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the entries in order.
func (l *List[V]) Values() []V {
	return slices.Clone(l.values)
}

func (l *List[V]) Clear() {
	l.values = nil
	clear(l.index)
}

// SortFunc reorders the entries by cmp and rebuilds the key index. The sort is stable.
func (l *List[V]) SortFunc(cmp func(a, b V) int) {
	slices.SortStableFunc(l.values, cmp)
	l.reindex()
}

// Move relocates the entry at index from so that it ends up at index to, shifting the
// entries in between by one.
func (l *List[V]) Move(from, to int) bool {
	if from < 0 || from >= len(l.values) || to < 0 || to >= len(l.values) {
		return false
	}
	v := l.values[from]
	l.values = slices.Insert(slices.Delete(l.values, from, from+1), to, v)
	l.reindex()
	return true
}

func (l *List[V]) reindex() {
	clear(l.index)
	for i, v := range l.values {
		l.index[l.key(v)] = i
	}
}
