// Package builder provides helper functions for configuring edge-weight
// distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Useful for tie-heavy fixtures where every spanning tree is minimal.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Negative bounds are allowed and the range may cover all of int64. Panics if max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	// span is max-min+1 computed in uint64; 0 means the full 2^64 range.
	span := uint64(max) - uint64(min) + 1

	return func(rng *rand.Rand) int64 {
		switch {
		case rng == nil || max == min:
			return min
		case span == 0:
			return int64(rng.Uint64())
		case span <= math.MaxInt64:
			return min + rng.Int63n(int64(span))
		default:
			// Wider than int63: reduce a 64-bit draw; the sum wraps back into [min, max].
			return int64(uint64(min) + rng.Uint64()%span)
		}
	}
}

// SequentialWeightFn returns a WeightFn yielding start, start+1, start+2, ...
// on successive calls, ignoring rng. Every edge gets a distinct weight, so the
// MST is unique. The returned function is stateful; use one per Build call.
func SequentialWeightFn(start int64) WeightFn {
	next := start
	return func(_ *rand.Rand) int64 {
		w := next
		next++

		return w
	}
}
