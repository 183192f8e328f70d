package quiz

import "math/rand"

// drawQueue cycles through a pool of catalog indices. It pops from a
// pre-shuffled permutation and reshuffles when the permutation runs out, so
// targets repeat only after the whole pool has been seen once per cycle.
type drawQueue struct {
	pool  []int
	queue []int
	rng   *rand.Rand
}

func newDrawQueue(pool []int, rng *rand.Rand) *drawQueue {
	q := &drawQueue{
		pool: append([]int(nil), pool...),
		rng:  rng,
	}
	q.refill()
	return q
}

func (q *drawQueue) refill() {
	q.queue = append(q.queue[:0], q.pool...)
	q.rng.Shuffle(len(q.queue), func(i, j int) {
		q.queue[i], q.queue[j] = q.queue[j], q.queue[i]
	})
}

// next returns the next target index, refilling once the current permutation
// is exhausted. Returns -1 for an empty pool.
func (q *drawQueue) next() int {
	if len(q.pool) == 0 {
		return -1
	}
	if len(q.queue) == 0 {
		q.refill()
	}
	idx := q.queue[0]
	q.queue = q.queue[1:]
	return idx
}

// buildOptions returns the target plus up to three distinct distractors drawn
// without replacement from pool, in randomized order. Pools smaller than four
// yield the whole pool.
func buildOptions(pool []int, target int, rng *rand.Rand) []int {
	others := make([]int, 0, len(pool))
	for _, idx := range pool {
		if idx != target {
			others = append(others, idx)
		}
	}
	rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	n := optionCount - 1
	if len(others) < n {
		n = len(others)
	}
	options := append([]int{target}, others[:n]...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

const optionCount = 4
