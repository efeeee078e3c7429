// Package hashset implements an unordered set of unique elements on top of hashmap.
//
// A Set[T, Q] compares and hashes elements through a key projection func(T) Q. Plain
// sets of comparable elements use the identity (Set[T, T]); keyed sets let callers probe
// with a lightweight Q and keep non-key payload in T.
//
// Sets are not safe for concurrent use. Structurally modifying a set while one of its
// iterators is live makes the iterator panic.
package hashset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/adm87/hashset/hash"
	"github.com/adm87/hashset/hashmap"
	"github.com/adm87/hashset/linq"
)

var setEntry = struct{}{}

// Set is an unordered collection of elements with distinct keys.
//
// The zero value is not usable; construct sets with New, NewKeyed or one of their
// variants.
type Set[T any, Q comparable] struct {
	m *hashmap.Map[T, Q, struct{}]
}

func identity[T any](v T) T {
	return v
}

func New[T comparable]() *Set[T, T] {
	return WithCapacityAndHasher[T](0, hash.Default())
}

// Default is New.
func Default[T comparable]() *Set[T, T] {
	return New[T]()
}

func WithCapacity[T comparable](capacity int) *Set[T, T] {
	return WithCapacityAndHasher[T](capacity, hash.Default())
}

func WithHasher[T comparable](b hash.Builder) *Set[T, T] {
	return WithCapacityAndHasher[T](0, b)
}

func WithCapacityAndHasher[T comparable](capacity int, b hash.Builder) *Set[T, T] {
	return NewKeyed(identity[T], capacity, b)
}

// NewKeyed creates a set whose elements are compared and hashed by key. Elements with
// equal keys are the same element as far as the set is concerned.
//
// A nil builder selects hash.Default().
func NewKeyed[T any, Q comparable](key func(T) Q, capacity int, b hash.Builder) *Set[T, Q] {
	return &Set[T, Q]{m: hashmap.New[T, Q, struct{}](key, capacity, b)}
}

// From creates a set holding items, dropping duplicates.
func From[T comparable](items ...T) *Set[T, T] {
	s := WithCapacity[T](len(items))
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Collect creates a set from the values of seq.
func Collect[T comparable](seq iter.Seq[T]) *Set[T, T] {
	s := New[T]()
	s.Extend(seq)
	return s
}

func (s *Set[T, Q]) Len() int {
	return s.m.Len()
}

func (s *Set[T, Q]) Capacity() int {
	return s.m.Capacity()
}

func (s *Set[T, Q]) Hasher() hash.Builder {
	return s.m.Hasher()
}

func (s *Set[T, Q]) Reserve(additional int) {
	s.m.Reserve(additional)
}

func (s *Set[T, Q]) ShrinkToFit() {
	s.m.ShrinkToFit()
}

// Clear removes all elements. The set keeps its capacity.
func (s *Set[T, Q]) Clear() {
	s.m.Clear()
}

// Insert adds value. It returns false, leaving the stored element untouched, if an
// equivalent element is already present.
func (s *Set[T, Q]) Insert(value T) bool {
	_, existed := s.m.Insert(value, setEntry)
	return !existed
}

func (s *Set[T, Q]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		s.m.Insert(v, setEntry)
	}
}

// ExtendRefs inserts copies of the values seq points at.
func (s *Set[T, Q]) ExtendRefs(seq iter.Seq[*T]) {
	for p := range seq {
		s.m.Insert(*p, setEntry)
	}
}

func (s *Set[T, Q]) has(v T) bool {
	return s.m.ContainsKey(s.m.Project(v))
}

// IsDisjoint reports whether s and other share no element.
func (s *Set[T, Q]) IsDisjoint(other *Set[T, Q]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	it := small.m.Keys()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if large.has(v) {
			return false
		}
	}
	return true
}

// IsSubset reports whether every element of s is in other.
func (s *Set[T, Q]) IsSubset(other *Set[T, Q]) bool {
	if s.Len() > other.Len() {
		return false
	}
	it := s.m.Keys()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !other.has(v) {
			return false
		}
	}
	return true
}

func (s *Set[T, Q]) IsSuperset(other *Set[T, Q]) bool {
	return other.IsSubset(s)
}

// Equal reports whether s and other hold the same elements. Payload outside the key
// projection is not compared.
func (s *Set[T, Q]) Equal(other *Set[T, Q]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.IsSubset(other)
}

// Clone returns a set with the same elements, projection and hasher. Elements are
// copied by assignment.
func (s *Set[T, Q]) Clone() *Set[T, Q] {
	out := NewKeyed(s.m.Projection(), s.Len(), s.m.Hasher())
	it := s.m.Keys()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out.m.Insert(v, setEntry)
	}
	return out
}

// All returns the elements as a sequence, in no particular order.
func (s *Set[T, Q]) All() iter.Seq[T] {
	return linq.Seq[T](s.Iter())
}

func (s *Set[T, Q]) ToSlice() []T {
	return linq.Collect[T](s.Iter())
}

// String renders the set as {a, b, c} in iteration order.
func (s *Set[T, Q]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := s.m.Keys()
	first := true
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}
