package hashset

import (
	"iter"

	"github.com/adm87/hashset/hashmap"
	"github.com/adm87/hashset/linq"
)

// Iter visits the elements of a set in no particular order.
type Iter[T any, Q comparable] struct {
	keys *hashmap.Keys[T, Q, struct{}]
}

func (s *Set[T, Q]) Iter() *Iter[T, Q] {
	return &Iter[T, Q]{keys: s.m.Keys()}
}

func (it *Iter[T, Q]) Next() (T, bool) {
	return it.keys.Next()
}

// SizeHint is exact.
func (it *Iter[T, Q]) SizeHint() (int, int) {
	return it.keys.SizeHint()
}

func (it *Iter[T, Q]) Len() int {
	return it.keys.Len()
}

func (it *Iter[T, Q]) Clone() *Iter[T, Q] {
	return &Iter[T, Q]{keys: it.keys.Clone()}
}

func (it *Iter[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](it)
}

// IntoIter owns the elements moved out of a set.
type IntoIter[T any] struct {
	entries *hashmap.IntoIter[T, struct{}]
}

// IntoIter moves every element out of s, which is left empty.
func (s *Set[T, Q]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{entries: s.m.IntoIter()}
}

func (it *IntoIter[T]) Next() (T, bool) {
	v, _, ok := it.entries.Next()
	return v, ok
}

func (it *IntoIter[T]) SizeHint() (int, int) {
	n := it.entries.Len()
	return n, n
}

func (it *IntoIter[T]) Len() int {
	return it.entries.Len()
}

func (it *IntoIter[T]) All() iter.Seq[T] {
	return linq.Seq[T](it)
}

// Drain removes each element from its set as it is yielded.
//
// Stopping early leaves the set holding exactly the elements not yet yielded.
type Drain[T any, Q comparable] struct {
	entries *hashmap.Drain[T, Q, struct{}]
}

func (s *Set[T, Q]) Drain() *Drain[T, Q] {
	return &Drain[T, Q]{entries: s.m.Drain()}
}

func (d *Drain[T, Q]) Next() (T, bool) {
	v, _, ok := d.entries.Next()
	return v, ok
}

func (d *Drain[T, Q]) SizeHint() (int, int) {
	n := d.entries.Len()
	return n, n
}

func (d *Drain[T, Q]) Len() int {
	return d.entries.Len()
}

func (d *Drain[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](d)
}
