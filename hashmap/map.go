// Package hashmap is the associative map hashset is built on.
//
// Entries live in a dense slice; a runtime map from 64-bit hash to the head of a
// collision chain indexes them. Keys are compared through a projection func(K) Q, so a
// map keyed by a large K can be probed with a small Q.
package hashmap

import (
	stdhash "hash"
	"slices"

	"github.com/adm87/hashset/hash"
	"github.com/adm87/hashset/pool"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hashset'.
func tracer() tracing.Trace {
	return tracing.Select("hashset")
}

type entry[K, V any] struct {
	Key   K
	Value V
	hash  uint64
	next  int // next slot with the same hash, or -1
}

type Map[K any, Q comparable, V any] struct {
	key     func(K) Q
	builder hash.Builder
	hashers pool.Pool[stdhash.Hash64]
	entries []entry[K, V]
	heads   map[uint64]int
	version uint64 // bumped on every structural change
}

// New creates a map with room for capacity entries.
//
// A nil builder selects hash.Default(). Panics if key is nil or capacity is negative.
func New[K any, Q comparable, V any](key func(K) Q, capacity int, b hash.Builder) *Map[K, Q, V] {
	if key == nil {
		panic("hashmap: nil key projection")
	}
	if capacity < 0 {
		panic("hashmap: negative capacity")
	}
	if b == nil {
		b = hash.Default()
	}
	return &Map[K, Q, V]{
		key:     key,
		builder: b,
		hashers: pool.Pool[stdhash.Hash64]{
			New:   b.Build,
			Reset: func(h stdhash.Hash64) { h.Reset() },
		},
		entries: make([]entry[K, V], 0, capacity),
		heads:   make(map[uint64]int, capacity),
	}
}

func (m *Map[K, Q, V]) sum(q Q) uint64 {
	h := m.hashers.Get()
	hash.Write(h, q)
	s := h.Sum64()
	m.hashers.Put(h)
	return s
}

// find returns the slot holding q, or -1.
func (m *Map[K, Q, V]) find(h uint64, q Q) int {
	i, ok := m.heads[h]
	if !ok {
		return -1
	}
	for ; i >= 0; i = m.entries[i].next {
		if m.key(m.entries[i].Key) == q {
			return i
		}
	}
	return -1
}

func (m *Map[K, Q, V]) push(k K, v V, h uint64) {
	next := -1
	if i, ok := m.heads[h]; ok {
		next = i
	}
	if len(m.entries) == cap(m.entries) && len(m.entries) > 0 {
		tracer().Debugf("hashmap: growing past %d entries", cap(m.entries))
	}
	m.entries = append(m.entries, entry[K, V]{Key: k, Value: v, hash: h, next: next})
	m.heads[h] = len(m.entries) - 1
	m.version++
}

// unlink takes slot i out of its collision chain.
func (m *Map[K, Q, V]) unlink(i int) {
	h, next := m.entries[i].hash, m.entries[i].next
	if m.heads[h] == i {
		if next < 0 {
			delete(m.heads, h)
		} else {
			m.heads[h] = next
		}
		return
	}
	for j := m.heads[h]; ; j = m.entries[j].next {
		if m.entries[j].next == i {
			m.entries[j].next = next
			return
		}
	}
}

// relink redirects the reference to slot from so that it points at slot to.
func (m *Map[K, Q, V]) relink(from, to int) {
	h := m.entries[from].hash
	if m.heads[h] == from {
		m.heads[h] = to
		return
	}
	for j := m.heads[h]; ; j = m.entries[j].next {
		if m.entries[j].next == from {
			m.entries[j].next = to
			return
		}
	}
}

// removeAt deletes slot i, moving the last entry into its place.
func (m *Map[K, Q, V]) removeAt(i int) entry[K, V] {
	e := m.entries[i]
	m.unlink(i)
	last := len(m.entries) - 1
	if i != last {
		m.relink(last, i)
		m.entries[i] = m.entries[last]
	}
	m.entries[last] = entry[K, V]{}
	m.entries = m.entries[:last]
	m.version++
	return e
}

// Insert stores v under k. If an equivalent key is present, its value is replaced and
// returned while the stored key is kept.
func (m *Map[K, Q, V]) Insert(k K, v V) (V, bool) {
	q := m.key(k)
	h := m.sum(q)
	if i := m.find(h, q); i >= 0 {
		old := m.entries[i].Value
		m.entries[i].Value = v
		return old, true
	}
	m.push(k, v, h)
	var zero V
	return zero, false
}

func (m *Map[K, Q, V]) Remove(q Q) (V, bool) {
	i := m.find(m.sum(q), q)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.removeAt(i).Value, true
}

func (m *Map[K, Q, V]) ContainsKey(q Q) bool {
	return m.find(m.sum(q), q) >= 0
}

func (m *Map[K, Q, V]) Get(q Q) (V, bool) {
	if i := m.find(m.sum(q), q); i >= 0 {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under q. It is valid until the next
// structural change of the map.
func (m *Map[K, Q, V]) GetMut(q Q) (*V, bool) {
	if i := m.find(m.sum(q), q); i >= 0 {
		return &m.entries[i].Value, true
	}
	return nil, false
}

// Project maps a key to the value it is compared and hashed by.
func (m *Map[K, Q, V]) Project(k K) Q {
	return m.key(k)
}

func (m *Map[K, Q, V]) Projection() func(K) Q {
	return m.key
}

func (m *Map[K, Q, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, Q, V]) Capacity() int {
	return cap(m.entries)
}

func (m *Map[K, Q, V]) Hasher() hash.Builder {
	return m.builder
}

// Clear removes all entries and keeps the allocated storage.
func (m *Map[K, Q, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	clear(m.heads)
	m.version++
}

// Reserve makes room for at least additional more entries.
func (m *Map[K, Q, V]) Reserve(additional int) {
	if additional <= cap(m.entries)-len(m.entries) {
		return
	}
	tracer().Debugf("hashmap: reserve %d entries beyond %d", additional, len(m.entries))
	m.entries = slices.Grow(m.entries, additional)
	m.reindex(len(m.entries) + additional)
}

// ShrinkToFit releases storage not needed by the current entries.
func (m *Map[K, Q, V]) ShrinkToFit() {
	if cap(m.entries) == len(m.entries) {
		return
	}
	tracer().Debugf("hashmap: shrink from %d to %d entries", cap(m.entries), len(m.entries))
	m.entries = slices.Clone(m.entries)
	m.reindex(len(m.entries))
}

// reindex rebuilds the chain index sized for hint entries. Runtime maps never shrink,
// so this is the only way to return index memory.
func (m *Map[K, Q, V]) reindex(hint int) {
	m.heads = make(map[uint64]int, hint)
	for i := range m.entries {
		e := &m.entries[i]
		e.next = -1
		if j, ok := m.heads[e.hash]; ok {
			e.next = j
		}
		m.heads[e.hash] = i
	}
	m.version++
}
