package hashset

import (
	"iter"

	"github.com/adm87/hashset/linq"
)

// The lazy set-algebra iterators below read both operands on every call to Next. Their
// size hints have a lower bound of 0 and an upper bound that is the sum of what the
// underlying iterators may still yield.

// Difference yields the elements of one set that are not in another.
type Difference[T any, Q comparable] struct {
	it *linq.Filter[T, *Iter[T, Q]]
}

// Difference iterates over the elements of s not contained in other.
func (s *Set[T, Q]) Difference(other *Set[T, Q]) *Difference[T, Q] {
	return &Difference[T, Q]{
		it: linq.Where(s.Iter(), func(v T) bool { return !other.has(v) }),
	}
}

func (d *Difference[T, Q]) Next() (T, bool)      { return d.it.Next() }
func (d *Difference[T, Q]) SizeHint() (int, int) { return d.it.SizeHint() }

func (d *Difference[T, Q]) Clone() *Difference[T, Q] {
	return &Difference[T, Q]{it: d.it.Clone()}
}

func (d *Difference[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](d)
}

// Intersection yields the elements of one set that are also in another.
type Intersection[T any, Q comparable] struct {
	it *linq.Filter[T, *Iter[T, Q]]
}

// Intersection iterates over the elements of s contained in other.
func (s *Set[T, Q]) Intersection(other *Set[T, Q]) *Intersection[T, Q] {
	return &Intersection[T, Q]{
		it: linq.Where(s.Iter(), other.has),
	}
}

func (n *Intersection[T, Q]) Next() (T, bool)      { return n.it.Next() }
func (n *Intersection[T, Q]) SizeHint() (int, int) { return n.it.SizeHint() }

func (n *Intersection[T, Q]) Clone() *Intersection[T, Q] {
	return &Intersection[T, Q]{it: n.it.Clone()}
}

func (n *Intersection[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](n)
}

// Union yields every element of either set exactly once.
type Union[T any, Q comparable] struct {
	it *linq.Chain[T, *Iter[T, Q], *Difference[T, Q]]
}

// Union iterates over all of s, then over the elements of other missing from s.
func (s *Set[T, Q]) Union(other *Set[T, Q]) *Union[T, Q] {
	return &Union[T, Q]{
		it: linq.Concat[T](s.Iter(), other.Difference(s)),
	}
}

func (u *Union[T, Q]) Next() (T, bool)      { return u.it.Next() }
func (u *Union[T, Q]) SizeHint() (int, int) { return u.it.SizeHint() }

func (u *Union[T, Q]) Clone() *Union[T, Q] {
	return &Union[T, Q]{it: u.it.Clone()}
}

func (u *Union[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](u)
}

// SymmetricDifference yields the elements in exactly one of two sets.
type SymmetricDifference[T any, Q comparable] struct {
	it *linq.Chain[T, *Difference[T, Q], *Difference[T, Q]]
}

// SymmetricDifference iterates over s minus other, then over other minus s.
func (s *Set[T, Q]) SymmetricDifference(other *Set[T, Q]) *SymmetricDifference[T, Q] {
	return &SymmetricDifference[T, Q]{
		it: linq.Concat[T](s.Difference(other), other.Difference(s)),
	}
}

func (x *SymmetricDifference[T, Q]) Next() (T, bool)      { return x.it.Next() }
func (x *SymmetricDifference[T, Q]) SizeHint() (int, int) { return x.it.SizeHint() }

func (x *SymmetricDifference[T, Q]) Clone() *SymmetricDifference[T, Q] {
	return &SymmetricDifference[T, Q]{it: x.it.Clone()}
}

func (x *SymmetricDifference[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](x)
}
