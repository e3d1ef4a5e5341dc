// SPDX-License-Identifier: MIT

package scope

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// NewRandom returns a random source seeded with seed, or DefaultSeed when
// seed is 0. math/rand sources are not safe for concurrent use.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// golden is 2^64 divided by the golden ratio, the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

// splitmix64 is the SplitMix64 output function applied to x.
func splitmix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// DeriveRandom returns a child source for stream, seeded from one draw of
// base (DefaultSeed when base is nil). Children of the same base draw and
// different streams are decorrelated; each call consumes one draw of base.
func DeriveRandom(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	seed := splitmix64(uint64(parent) + golden*(stream+1))

	return rand.New(rand.NewSource(int64(seed)))
}

// OrDefault returns r, or a DefaultSeed source when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return NewRandom(0)
	}

	return r
}
