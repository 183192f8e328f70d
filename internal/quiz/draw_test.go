package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawQueue_CyclesWholePool(t *testing.T) {
	pool := []int{0, 1, 2, 3, 4}
	q := newDrawQueue(pool, rand.New(rand.NewSource(1)))

	seen := make(map[int]int)
	for i := 0; i < len(pool); i++ {
		seen[q.next()]++
	}
	// First pass is a permutation: every index exactly once.
	for _, idx := range pool {
		assert.Equal(t, 1, seen[idx], "index %d", idx)
	}

	// Exhausting the queue reshuffles and keeps going.
	for i := 0; i < len(pool); i++ {
		seen[q.next()]++
	}
	for _, idx := range pool {
		assert.Equal(t, 2, seen[idx], "index %d after refill", idx)
	}
}

func TestDrawQueue_DeterministicUnderSeed(t *testing.T) {
	pool := []int{0, 1, 2, 3, 4, 5, 6, 7}
	a := newDrawQueue(pool, rand.New(rand.NewSource(42)))
	b := newDrawQueue(pool, rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.next(), b.next(), "draw %d", i)
	}
}

func TestDrawQueue_EmptyPool(t *testing.T) {
	q := newDrawQueue(nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, -1, q.next())
}

func TestBuildOptions_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []int{0, 1, 2, 3, 4, 5, 6, 7}

	for target := range pool {
		opts := buildOptions(pool, target, rng)
		require.Len(t, opts, 4)

		seen := make(map[int]struct{})
		targetCount := 0
		for _, idx := range opts {
			_, dup := seen[idx]
			assert.False(t, dup, "duplicate option %d", idx)
			seen[idx] = struct{}{}
			if idx == target {
				targetCount++
			}
		}
		assert.Equal(t, 1, targetCount, "target must appear exactly once")
	}
}

func TestBuildOptions_SmallPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	opts := buildOptions([]int{3, 5, 9}, 5, rng)
	require.Len(t, opts, 3)
	assert.ElementsMatch(t, []int{3, 5, 9}, opts)

	opts = buildOptions([]int{2}, 2, rng)
	require.Len(t, opts, 1)
	assert.Equal(t, 2, opts[0])
}
