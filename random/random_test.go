package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3, 5) = %f out of bounds", v)
		}
	}
}

func TestSeededSourcesAgree(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float01(), b.Float01())
	}
}

func TestWeighted(t *testing.T) {
	r := New(1)

	_, ok := Weighted[string](r, nil)
	assert.False(t, ok)

	only := []Choice[string]{{Value: "never", Weight: 0}, {Value: "always", Weight: 1}}
	for i := 0; i < 100; i++ {
		v, ok := Weighted(r, only)
		assert.True(t, ok)
		assert.Equal(t, "always", v)
	}
}

func TestWeightedDistribution(t *testing.T) {
	r := New(99)
	counts := map[string]int{}
	weights := map[string]float64{"a": 1, "b": 3}

	const n = 20000
	for i := 0; i < n; i++ {
		v, ok := WeightedMap(r, weights)
		if !ok {
			t.Fatal("WeightedMap returned no value")
		}
		counts[v]++
	}

	share := float64(counts["b"]) / n
	assert.InDelta(t, 0.75, share, 0.02)
}
