package hashset

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario() (*Set[int, int], *Set[int, int]) {
	s1, s2 := New[int](), New[int]()
	for _, v := range []int{1, 2, 3} {
		s1.Insert(v)
	}
	for _, v := range []int{2, 3, 4} {
		s2.Insert(v)
	}
	return s1, s2
}

func sorted(seq iter.Seq[int]) []int {
	out := slices.Collect(seq)
	slices.Sort(out)
	return out
}

func TestLazyAlgebra(t *testing.T) {
	s1, s2 := scenario()

	assert.Equal(t, []int{1}, sorted(s1.Difference(s2).All()))
	assert.Equal(t, []int{4}, sorted(s2.Difference(s1).All()))
	assert.Equal(t, []int{2, 3}, sorted(s1.Intersection(s2).All()))
	assert.Equal(t, []int{1, 2, 3, 4}, sorted(s1.Union(s2).All()))
	assert.Equal(t, []int{1, 4}, sorted(s1.SymmetricDifference(s2).All()))
}

func TestEagerAlgebra(t *testing.T) {
	s1, s2 := scenario()

	assert.True(t, s1.Sub(s2).Equal(From(1)))
	assert.True(t, s2.Sub(s1).Equal(From(4)))
	assert.True(t, s1.And(s2).Equal(From(2, 3)))
	assert.True(t, s1.Or(s2).Equal(From(1, 2, 3, 4)))
	assert.True(t, s1.Xor(s2).Equal(From(1, 4)))

	assert.True(t, s1.Equal(From(1, 2, 3)), "operands untouched")
	assert.True(t, s2.Equal(From(2, 3, 4)), "operands untouched")
}

func TestEagerAlgebraKeepsProjection(t *testing.T) {
	a, b := newItems(), newItems()
	a.Insert(item{"x", "a"})
	a.Insert(item{"y", "a"})
	b.Insert(item{"y", "b"})

	and := a.And(b)
	require.Equal(t, 1, and.Len())
	got, ok := and.Get("y")
	require.True(t, ok)
	assert.Equal(t, "a", got.Payload, "elements come from the left operand")

	assert.True(t, a.Or(b).Contains("x"))
	assert.False(t, a.Sub(b).Contains("y"))
}

func TestSizeHints(t *testing.T) {
	s1, s2 := scenario()

	lo, hi := s1.Difference(s2).SizeHint()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	lo, hi = s1.Intersection(s2).SizeHint()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	lo, hi = s1.Union(s2).SizeHint()
	assert.Equal(t, 3, lo, "all of s1 is always yielded")
	assert.Equal(t, 6, hi)

	lo, hi = s1.SymmetricDifference(s2).SizeHint()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 6, hi)

	u := s1.Union(s2)
	for range 4 {
		_, ok := u.Next()
		require.True(t, ok)
	}
	_, ok := u.Next()
	assert.False(t, ok)
	lo, hi = u.SizeHint()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

// Upper bounds never undercount what is left, at every step.
func TestSizeHintNeverUndercounts(t *testing.T) {
	s1, s2 := scenario()
	iters := map[string]interface {
		Next() (int, bool)
		SizeHint() (int, int)
	}{
		"difference":           s1.Difference(s2),
		"intersection":         s1.Intersection(s2),
		"union":                s1.Union(s2),
		"symmetric difference": s1.SymmetricDifference(s2),
	}
	for name, it := range iters {
		for {
			_, hi := it.SizeHint()
			rest := 0
			switch c := it.(type) {
			case *Difference[int, int]:
				rest = len(slices.Collect(c.Clone().All()))
			case *Intersection[int, int]:
				rest = len(slices.Collect(c.Clone().All()))
			case *Union[int, int]:
				rest = len(slices.Collect(c.Clone().All()))
			case *SymmetricDifference[int, int]:
				rest = len(slices.Collect(c.Clone().All()))
			}
			assert.GreaterOrEqual(t, hi, rest, name)
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func TestAlgebraIteratorsClone(t *testing.T) {
	s1, s2 := scenario()

	u := s1.Union(s2)
	first, _ := u.Next()
	c := u.Clone()
	a := slices.Collect(u.All())
	b := slices.Collect(c.All())
	assert.Equal(t, a, b)
	assert.NotContains(t, a, first)
	assert.Len(t, a, 3)

	x := s1.SymmetricDifference(s2)
	xc := x.Clone()
	assert.Equal(t, slices.Collect(x.All()), slices.Collect(xc.All()))

	n := s1.Intersection(s2)
	nc := n.Clone()
	assert.Equal(t, slices.Collect(n.All()), slices.Collect(nc.All()))
}

func TestAlgebraIteratorsAreFused(t *testing.T) {
	s1, s2 := scenario()

	d := s1.Difference(s2)
	_ = slices.Collect(d.All())
	_, ok := d.Next()
	assert.False(t, ok)

	x := s1.SymmetricDifference(s2)
	_ = slices.Collect(x.All())
	_, ok = x.Next()
	assert.False(t, ok)
}

func TestUnionYieldsSharedElementsOnce(t *testing.T) {
	a := From(1, 2, 3)
	b := From(1, 2, 3)
	assert.Len(t, slices.Collect(a.Union(b).All()), 3)
	assert.Empty(t, slices.Collect(a.SymmetricDifference(b).All()))
	assert.Empty(t, slices.Collect(a.Difference(b).All()))
}

func TestAlgebraProperties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		a, b := New[int](), New[int]()
		na, nb := r.Intn(20), r.Intn(20)
		for i := 0; i < na; i++ {
			a.Insert(r.Intn(30))
		}
		for i := 0; i < nb; i++ {
			b.Insert(r.Intn(30))
		}

		union := a.Or(b)
		inter := a.And(b)
		sym := a.Xor(b)

		assert.Equal(t, a.Len()+b.Len()-inter.Len(), union.Len())
		assert.True(t, inter.IsDisjoint(sym))

		joined := append(slices.Collect(inter.All()), slices.Collect(sym.All())...)
		assert.Len(t, joined, union.Len(), "no duplicates")
		assert.True(t, From(joined...).Equal(union))

		assert.True(t, a.Sub(b).IsDisjoint(b))
		assert.True(t, inter.IsSubset(a) && inter.IsSubset(b))
		assert.True(t, union.IsSuperset(a) && union.IsSuperset(b))
	}
}
