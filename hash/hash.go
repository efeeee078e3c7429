// Package hash provides hasher factories and key hashing for hashmap and hashset.
package hash

import (
	stdhash "hash"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Builder manufactures fresh hash functions.
//
// Every hasher built by the same Builder must produce the same sum for the same input.
type Builder interface {
	Build() stdhash.Hash64
}

// Default returns the Builder used when none is given.
func Default() Builder {
	return NewRandomState()
}

// RandomState builds maphash hashers sharing one randomly chosen seed.
type RandomState struct {
	seed maphash.Seed
}

func NewRandomState() *RandomState {
	return &RandomState{seed: maphash.MakeSeed()}
}

func (s *RandomState) Build() stdhash.Hash64 {
	if s.seed == (maphash.Seed{}) {
		s.seed = maphash.MakeSeed()
	}
	h := new(maphash.Hash)
	h.SetSeed(s.seed)
	return h
}

// FixedState builds xxhash hashers with a fixed seed.
//
// Sums are stable across runs, which makes iteration order reproducible. Prefer
// RandomState for sets filled from untrusted input.
type FixedState struct {
	Seed uint64
}

func (s FixedState) Build() stdhash.Hash64 {
	return &seededDigest{Digest: xxhash.NewWithSeed(s.Seed), seed: s.Seed}
}

// seededDigest keeps its seed across Reset; xxhash resets to seed zero.
type seededDigest struct {
	*xxhash.Digest
	seed uint64
}

func (d *seededDigest) Reset() {
	d.ResetWithSeed(d.seed)
}
