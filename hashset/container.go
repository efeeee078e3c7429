package hashset

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*Set[int, int])(nil)

func (s *Set[T, Q]) Empty() bool {
	return s.Len() == 0
}

// Size is Len, for containers.Container.
func (s *Set[T, Q]) Size() int {
	return s.Len()
}

func (s *Set[T, Q]) Values() []interface{} {
	values := make([]interface{}, 0, s.Len())
	it := s.m.Keys()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	return values
}

// Sorted returns the elements ordered by cmp, e.g. utils.IntComparator.
func (s *Set[T, Q]) Sorted(cmp utils.Comparator) []T {
	values := containers.GetSortedValues(s, cmp)
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v.(T)
	}
	return out
}
