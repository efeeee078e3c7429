package pool

// Pool is a free list of reusable values.
//
// hashmap keeps one Pool of hashers per map: every lookup takes a hasher, writes the
// probe key and hands it back. Reset rewinds it to its seed on the way in.
//
// Use sync.Pool from the standard library for concurrent use cases.
type Pool[T any] struct {
	items []T

	New func() T
	// Reset, when set, is applied to every item handed back through Put.
	Reset func(T)
}

// Get returns a pooled item, or a fresh one from New when the pool is empty.
func (p *Pool[T]) Get() T {
	n := len(p.items)
	if n == 0 {
		return p.New()
	}
	item := p.items[n-1]
	var zero T
	p.items[n-1] = zero
	p.items = p.items[:n-1]
	return item
}

func (p *Pool[T]) Put(item T) {
	if p.Reset != nil {
		p.Reset(item)
	}
	p.items = append(p.items, item)
}

func (p *Pool[T]) Len() int {
	return len(p.items)
}
