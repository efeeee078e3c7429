// Package linq composes lazy, single-pass iterators.
package linq

import "iter"

// Iterator yields values one at a time. Once Next reports false it keeps reporting false.
type Iterator[T any] interface {
	Next() (T, bool)
	// SizeHint bounds the number of values left. upper is never an undercount.
	SizeHint() (lower, upper int)
}

// Source is an Iterator that can fork an independent copy of its cursor.
type Source[T any, I any] interface {
	Iterator[T]
	Clone() I
}

// ========== Where ==========

// Filter yields the values of src accepted by keep.
type Filter[T any, I Source[T, I]] struct {
	src  I
	keep func(T) bool
	done bool
}

func Where[T any, I Source[T, I]](src I, keep func(T) bool) *Filter[T, I] {
	return &Filter[T, I]{src: src, keep: keep}
}

func (f *Filter[T, I]) Next() (T, bool) {
	if !f.done {
		for {
			v, ok := f.src.Next()
			if !ok {
				f.done = true
				break
			}
			if f.keep(v) {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

// SizeHint has a lower bound of 0: keep may reject everything that is left.
func (f *Filter[T, I]) SizeHint() (int, int) {
	if f.done {
		return 0, 0
	}
	_, upper := f.src.SizeHint()
	return 0, upper
}

func (f *Filter[T, I]) Clone() *Filter[T, I] {
	return &Filter[T, I]{src: f.src.Clone(), keep: f.keep, done: f.done}
}

// ========== Concat ==========

// Chain yields every value of a, then every value of b.
type Chain[T any, A Source[T, A], B Source[T, B]] struct {
	a     A
	b     B
	aDone bool
	done  bool
}

func Concat[T any, A Source[T, A], B Source[T, B]](a A, b B) *Chain[T, A, B] {
	return &Chain[T, A, B]{a: a, b: b}
}

func (c *Chain[T, A, B]) Next() (T, bool) {
	if !c.done {
		if !c.aDone {
			if v, ok := c.a.Next(); ok {
				return v, true
			}
			c.aDone = true
		}
		if v, ok := c.b.Next(); ok {
			return v, true
		}
		c.done = true
	}
	var zero T
	return zero, false
}

func (c *Chain[T, A, B]) SizeHint() (int, int) {
	if c.done {
		return 0, 0
	}
	var lower, upper int
	if !c.aDone {
		lower, upper = c.a.SizeHint()
	}
	bl, bu := c.b.SizeHint()
	return lower + bl, upper + bu
}

func (c *Chain[T, A, B]) Clone() *Chain[T, A, B] {
	return &Chain[T, A, B]{a: c.a.Clone(), b: c.b.Clone(), aDone: c.aDone, done: c.done}
}

// ========== Adapters ==========

// Seq adapts it for range-over-func. The sequence shares its cursor.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	lower, _ := it.SizeHint()
	out := make([]T, 0, lower)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func Count[T any](it Iterator[T]) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
