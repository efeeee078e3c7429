package hashset_test

import (
	"fmt"

	"github.com/adm87/hashset/hashset"
	"github.com/emirpasic/gods/utils"
)

func Example() {
	s1 := hashset.From(1, 2, 3)
	s2 := hashset.From(2, 3, 4)

	fmt.Println(s1.Sub(s2).Sorted(utils.IntComparator))
	fmt.Println(s2.Sub(s1).Sorted(utils.IntComparator))
	fmt.Println(s1.And(s2).Sorted(utils.IntComparator))
	fmt.Println(s1.Or(s2).Sorted(utils.IntComparator))
	fmt.Println(s1.Xor(s2).Sorted(utils.IntComparator))
	// Output:
	// [1]
	// [4]
	// [2 3]
	// [1 2 3 4]
	// [1 4]
}

type user struct {
	Name  string
	Email string
}

func ExampleSet_Replace() {
	users := hashset.NewKeyed(func(u user) string { return u.Name }, 0, nil)
	users.Insert(user{Name: "k", Email: "old"})

	prev, _ := users.Replace(user{Name: "k", Email: "new"})
	cur, _ := users.Get("k")
	fmt.Println(prev.Email, cur.Email, users.Len())
	// Output: old new 1
}

func ExampleSet_Drain() {
	s := hashset.From("a")
	for v := range s.Drain().All() {
		fmt.Println(v, s.Len())
	}
	// Output: a 0
}
