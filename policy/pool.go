package policy

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// availableIDs computes the eligible pool for a partition: its ID range
// minus the exclusion set minus already-selected IDs. IDs are returned in
// ascending order so pool construction is deterministic for a given input.
func availableIDs(p types.Partition, excluded, selected types.IDSet) []int {
	pool := make([]int, 0, p.Size())
	for id := p.Min; id <= p.Max; id++ {
		if excluded.Has(id) || selected.Has(id) {
			continue
		}
		pool = append(pool, id)
	}

	return pool
}

// adjacentIDs computes the set of IDs adjacent (±1) to any excluded ID that
// also lie inside the valid space. Candidates in this set are dispreferred
// to reduce clustering near previously used IDs.
func adjacentIDs(space *types.Space, excluded types.IDSet) types.IDSet {
	adjacent := make(types.IDSet, 2*excluded.Len())
	for id := range excluded {
		for _, n := range [2]int{id - 1, id + 1} {
			if space.Contains(n) {
				adjacent.Add(n)
			}
		}
	}

	return adjacent
}

// preferNonAdjacent narrows the pool to candidates outside the adjacent
// set. The preference is soft: when it would eliminate the entire pool the
// original pool is returned unchanged and fellBack is true.
func preferNonAdjacent(pool []int, adjacent types.IDSet) (narrowed []int, fellBack bool) {
	preferred := make([]int, 0, len(pool))
	for _, id := range pool {
		if !adjacent.Has(id) {
			preferred = append(preferred, id)
		}
	}
	if len(preferred) == 0 {
		return pool, true
	}

	return preferred, false
}

// drawFrom picks one ID uniformly from a non-empty pool.
func drawFrom(rng types.Rand, pool []int) int {
	return pool[rng.IntN(len(pool))]
}
