// Package bench times set operations for a configured workload.
package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/adm87/hashset/hash"
	"github.com/adm87/hashset/hashset"
	"github.com/adm87/hashset/internal/config"
)

// Result is the mean time of one operation over a workload's rounds.
type Result struct {
	Workload string
	Op       string
	Size     int
	Mean     time.Duration
}

type op struct {
	name string
	run  func(b hash.Builder, size int) int
}

var ops = []op{
	{"insert", insertSet},
	{"insert (map)", insertMap},
	{"contains", containsSet},
	{"union", unionSet},
	{"intersection", intersectionSet},
}

// Run times every operation against w.
func Run(w config.Workload) ([]Result, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload %q: %w", w.Name, err)
	}
	b, err := w.Builder()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(ops))
	for _, o := range ops {
		var total time.Duration
		for r := 0; r < w.Rounds; r++ {
			start := time.Now()
			n := o.run(b, w.Size)
			total += time.Since(start)
			if n != w.Size {
				return nil, fmt.Errorf("%s: expected %d elements, got %d", o.name, w.Size, n)
			}
		}
		res := Result{
			Workload: w.Name,
			Op:       o.name,
			Size:     w.Size,
			Mean:     total / time.Duration(w.Rounds),
		}
		slog.Debug("Benchmark finished", "workload", res.Workload, "op", res.Op, "mean", res.Mean)
		results = append(results, res)
	}
	return results, nil
}

func fill(b hash.Builder, from, to int) *hashset.Set[int, int] {
	s := hashset.WithCapacityAndHasher[int](to-from, b)
	for v := from; v < to; v++ {
		s.Insert(v)
	}
	return s
}

func insertSet(b hash.Builder, size int) int {
	return fill(b, 0, size).Len()
}

func insertMap(_ hash.Builder, size int) int {
	m := make(map[int]struct{}, size)
	for v := 0; v < size; v++ {
		m[v] = struct{}{}
	}
	return len(m)
}

func containsSet(b hash.Builder, size int) int {
	s := fill(b, 0, size)
	n := 0
	for v := 0; v < 2*size; v++ {
		if s.Contains(v) {
			n++
		}
	}
	return n
}

// unionSet joins two overlapping halves of [0, size).
func unionSet(b hash.Builder, size int) int {
	half := size / 2
	return fill(b, 0, half).Or(fill(b, half/2, size)).Len()
}

func intersectionSet(b hash.Builder, size int) int {
	return fill(b, 0, 2*size).And(fill(b, size, 3*size)).Len()
}
