package hashset

import "github.com/adm87/hashset/hashmap"

// stored gives access to the elements themselves rather than to their presence.
func (s *Set[T, Q]) stored() hashmap.Recover[T, Q] {
	return s.m
}

// Contains reports whether an element with key probe is present.
func (s *Set[T, Q]) Contains(probe Q) bool {
	return s.m.ContainsKey(probe)
}

// Get returns the stored element with key probe.
func (s *Set[T, Q]) Get(probe Q) (T, bool) {
	return s.stored().GetKey(probe)
}

// Replace stores value, returning the equivalent element it displaced, if any.
//
// Unlike Insert, Replace overwrites; unlike Remove followed by Insert, the element keeps
// its slot and the set never shrinks in between.
func (s *Set[T, Q]) Replace(value T) (T, bool) {
	return s.stored().ReplaceKey(value)
}

// Take removes and returns the element with key probe.
func (s *Set[T, Q]) Take(probe Q) (T, bool) {
	return s.stored().TakeKey(probe)
}

// Remove deletes the element with key probe and reports whether it was present.
func (s *Set[T, Q]) Remove(probe Q) bool {
	_, ok := s.m.Remove(probe)
	return ok
}
