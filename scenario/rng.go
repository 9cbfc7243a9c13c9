package scenario

import (
	"math/rand"
	"time"
)

// resolveSeed applies the seed policy: 0 selects a clock-based seed, any
// other value is used verbatim. The result is never 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}

	return s
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so per-cardinality streams are
// uncorrelated even for adjacent ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the RNG dedicated to one cardinality. *rand.Rand is not
// goroutine-safe; each worker owns its own.
func streamRNG(seed int64, k int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
}
