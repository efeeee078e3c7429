package hashmap

// Recover exposes the stored key itself rather than only whether one is present.
//
// A map used as a set needs it: the key is the element, and a probe only has to be
// equivalent to it, not identical.
type Recover[K any, Q comparable] interface {
	// GetKey returns the stored key equivalent to q.
	GetKey(q Q) (K, bool)
	// ReplaceKey swaps the stored key equivalent to k for k and returns the old one.
	// Without an equivalent key, k is inserted with a zero value.
	ReplaceKey(k K) (K, bool)
	// TakeKey removes and returns the stored key equivalent to q.
	TakeKey(q Q) (K, bool)
}

var _ Recover[string, string] = (*Map[string, string, struct{}])(nil)

func (m *Map[K, Q, V]) GetKey(q Q) (K, bool) {
	if i := m.find(m.sum(q), q); i >= 0 {
		return m.entries[i].Key, true
	}
	var zero K
	return zero, false
}

// ReplaceKey overwrites the key in its slot, so the entry keeps its place in iteration
// order.
func (m *Map[K, Q, V]) ReplaceKey(k K) (K, bool) {
	q := m.key(k)
	h := m.sum(q)
	if i := m.find(h, q); i >= 0 {
		old := m.entries[i].Key
		m.entries[i].Key = k
		return old, true
	}
	var zero V
	m.push(k, zero, h)
	var none K
	return none, false
}

func (m *Map[K, Q, V]) TakeKey(q Q) (K, bool) {
	i := m.find(m.sum(q), q)
	if i < 0 {
		var zero K
		return zero, false
	}
	return m.removeAt(i).Key, true
}
