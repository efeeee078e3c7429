package hashset

import (
	"github.com/adm87/hashset/hash"
	"github.com/adm87/hashset/linq"
)

// collect copies everything it yields into a new set keyed like s, using a fresh
// default hasher.
func (s *Set[T, Q]) collect(it linq.Iterator[T]) *Set[T, Q] {
	lower, _ := it.SizeHint()
	out := NewKeyed(s.m.Projection(), lower, hash.Default())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out.m.Insert(v, setEntry)
	}
	return out
}

// Or returns a new set holding the union of s and other.
func (s *Set[T, Q]) Or(other *Set[T, Q]) *Set[T, Q] {
	return s.collect(s.Union(other))
}

// And returns a new set holding the intersection of s and other.
func (s *Set[T, Q]) And(other *Set[T, Q]) *Set[T, Q] {
	return s.collect(s.Intersection(other))
}

// Xor returns a new set holding the symmetric difference of s and other.
func (s *Set[T, Q]) Xor(other *Set[T, Q]) *Set[T, Q] {
	return s.collect(s.SymmetricDifference(other))
}

// Sub returns a new set holding the elements of s not in other.
func (s *Set[T, Q]) Sub(other *Set[T, Q]) *Set[T, Q] {
	return s.collect(s.Difference(other))
}
