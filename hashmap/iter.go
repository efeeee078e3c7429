package hashmap

// Keys is a cursor over the keys of a Map.
//
// Structurally modifying the map while the cursor is live makes Next panic.
type Keys[K any, Q comparable, V any] struct {
	m       *Map[K, Q, V]
	pos     int
	version uint64
	done    bool
}

func (m *Map[K, Q, V]) Keys() *Keys[K, Q, V] {
	return &Keys[K, Q, V]{m: m, version: m.version}
}

func (it *Keys[K, Q, V]) Next() (K, bool) {
	var zero K
	if it.done {
		return zero, false
	}
	if it.version != it.m.version {
		panic("hashmap: map modified during iteration")
	}
	if it.pos >= len(it.m.entries) {
		it.done = true
		return zero, false
	}
	k := it.m.entries[it.pos].Key
	it.pos++
	return k, true
}

// SizeHint is exact.
func (it *Keys[K, Q, V]) SizeHint() (int, int) {
	n := it.Len()
	return n, n
}

func (it *Keys[K, Q, V]) Len() int {
	if it.done {
		return 0
	}
	return max(len(it.m.entries)-it.pos, 0)
}

func (it *Keys[K, Q, V]) Clone() *Keys[K, Q, V] {
	c := *it
	return &c
}

// IntoIter yields the entries a Map gave up in Map.IntoIter.
type IntoIter[K, V any] struct {
	entries []entry[K, V]
	pos     int
}

// IntoIter moves every entry out of m into the returned iterator and leaves m empty.
func (m *Map[K, Q, V]) IntoIter() *IntoIter[K, V] {
	tracer().Debugf("hashmap: moving out %d entries", len(m.entries))
	it := &IntoIter[K, V]{entries: m.entries}
	m.entries = nil
	m.heads = make(map[uint64]int)
	m.version++
	return it
}

func (it *IntoIter[K, V]) Next() (K, V, bool) {
	if it.pos >= len(it.entries) {
		var k K
		var v V
		return k, v, false
	}
	e := it.entries[it.pos]
	it.entries[it.pos] = entry[K, V]{}
	it.pos++
	return e.Key, e.Value, true
}

func (it *IntoIter[K, V]) Len() int {
	return len(it.entries) - it.pos
}

// Drain removes one entry from its map per call to Next.
//
// Abandoning a Drain early leaves exactly the entries not yet yielded in the map.
type Drain[K any, Q comparable, V any] struct {
	m    *Map[K, Q, V]
	done bool
}

func (m *Map[K, Q, V]) Drain() *Drain[K, Q, V] {
	tracer().Debugf("hashmap: draining %d entries", len(m.entries))
	return &Drain[K, Q, V]{m: m}
}

func (d *Drain[K, Q, V]) Next() (K, V, bool) {
	if !d.done {
		if n := len(d.m.entries); n > 0 {
			e := d.m.removeAt(n - 1)
			return e.Key, e.Value, true
		}
		d.done = true
	}
	var k K
	var v V
	return k, v, false
}

func (d *Drain[K, Q, V]) Len() int {
	if d.done {
		return 0
	}
	return len(d.m.entries)
}
