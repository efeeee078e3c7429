package linq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sliceIter[T any] struct {
	items []T
	pos   int
}

func over[T any](items ...T) *sliceIter[T] {
	return &sliceIter[T]{items: items}
}

func (s *sliceIter[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

func (s *sliceIter[T]) SizeHint() (int, int) {
	n := len(s.items) - s.pos
	return n, n
}

func (s *sliceIter[T]) Clone() *sliceIter[T] {
	c := *s
	return &c
}

func even(v int) bool { return v%2 == 0 }

func TestWhere(t *testing.T) {
	f := Where(over(1, 2, 3, 4, 5, 6), even)

	lower, upper := f.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 6, upper)

	assert.Equal(t, []int{2, 4, 6}, Collect(f))

	lower, upper = f.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
}

func TestWhereIsFused(t *testing.T) {
	src := over(1, 2)
	f := Where(src, even)
	assert.Equal(t, 1, Count(f))

	src.items = append(src.items, 4)
	_, ok := f.Next()
	assert.False(t, ok)
}

func TestWhereClone(t *testing.T) {
	f := Where(over(2, 4, 6, 8), even)
	v, _ := f.Next()
	assert.Equal(t, 2, v)

	c := f.Clone()
	assert.Equal(t, []int{4, 6, 8}, Collect(f))
	assert.Equal(t, []int{4, 6, 8}, Collect(c))
}

func TestConcat(t *testing.T) {
	c := Concat[int](over(1, 2), Where(over(3, 4, 5, 6), even))

	lower, upper := c.SizeHint()
	assert.Equal(t, 2, lower)
	assert.Equal(t, 6, upper)

	v, _ := c.Next()
	assert.Equal(t, 1, v)
	v, _ = c.Next()
	assert.Equal(t, 2, v)

	lower, upper = c.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 4, upper)

	clone := c.Clone()
	assert.Equal(t, []int{4, 6}, Collect(c))
	assert.Equal(t, []int{4, 6}, Collect(clone))

	_, ok := c.Next()
	assert.False(t, ok)
	lower, upper = c.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, 0, upper)
}

func TestSeqStopsEarly(t *testing.T) {
	it := over(1, 2, 3, 4)
	var got []int
	for v := range Seq[int](it) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{3, 4}, Collect[int](it))
}
