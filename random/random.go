// Package random provides the uniform and weighted sampling helpers used for
// gameplay randomness.
package random

import (
	"cmp"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/OpticalFlyer/nodeutil/geom"
)

// Rand is a seedable source. It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic source for seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Default is seeded from the runtime's random state.
var Default = New(rand.Uint64())

// Float01 returns a value in [0, 1).
func (r *Rand) Float01() float64 {
	return r.r.Float64()
}

// Range returns a value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return geom.Lerp(min, max, r.Float01())
}

// Uniform returns an int in [0, n). It panics if n <= 0.
func (r *Rand) Uniform(n int) int {
	return r.r.IntN(n)
}

// Choice is a value together with its relative weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Weighted picks one of choices with probability proportional to its
// weight. It returns false when there is nothing to pick from.
func Weighted[T any](r *Rand, choices []Choice[T]) (T, bool) {
	var zero T
	if len(choices) == 0 {
		return zero, false
	}

	var sum float64
	for _, c := range choices {
		sum += c.Weight
	}

	sample := r.Range(0, sum)

	sum = 0
	for _, c := range choices {
		sum += c.Weight
		if sample <= sum {
			return c.Value, true
		}
	}
	return zero, false
}

// WeightedMap is Weighted over a map. Keys are visited in ascending order so
// a seeded source always yields the same sequence.
func WeightedMap[K cmp.Ordered](r *Rand, weights map[K]float64) (K, bool) {
	keys := slices.Sorted(maps.Keys(weights))
	choices := make([]Choice[K], 0, len(keys))
	for _, k := range keys {
		choices = append(choices, Choice[K]{Value: k, Weight: weights[k]})
	}
	return Weighted(r, choices)
}
