package engine

import (
	"sort"

	"github.com/piwi3910/BoxStack/internal/model"
)

// dpChain computes the maximum-height chain over the full orientation pool
// under strict footprint containment, ignoring the single-use rule. It is
// the classic O(n²) box-stacking dynamic program: sort by footprint area
// descending, then extend the best chain ending at each earlier orientation.
// Ties in area are broken by input order so the seed is reproducible for a
// fixed pool.
func dpChain(pool []model.Orientation) model.Stack {
	if len(pool) == 0 {
		return nil
	}

	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pool[order[a]].FootprintArea() > pool[order[b]].FootprintArea()
	})

	bestHeight := make([]int, len(pool))
	predecessor := make([]int, len(pool))
	for k, idx := range order {
		bestHeight[k] = pool[idx].Height
		predecessor[k] = -1
		for j := 0; j < k; j++ {
			if pool[idx].FitsInside(pool[order[j]]) && bestHeight[j]+pool[idx].Height > bestHeight[k] {
				bestHeight[k] = bestHeight[j] + pool[idx].Height
				predecessor[k] = j
			}
		}
	}

	top := 0
	for k := range bestHeight {
		if bestHeight[k] > bestHeight[top] {
			top = k
		}
	}

	// Backtrack from the chain top down to its base, then reverse into
	// bottom-to-top order.
	var chain model.Stack
	for k := top; k >= 0; k = predecessor[k] {
		chain = append(chain, pool[order[k]])
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// pruneSingleUse walks a stack bottom-to-top and keeps only the first
// orientation seen for each source box. Containment between the survivors is
// not re-verified: removing a duplicate can leave its successor sitting on a
// footprint it was never checked against, so the result is a heuristic seed,
// not necessarily a valid stack. The annealer repairs it before refining.
func pruneSingleUse(stack model.Stack) model.Stack {
	seen := make(map[int]bool, len(stack))
	pruned := make(model.Stack, 0, len(stack))
	for _, o := range stack {
		if seen[o.SourceBox] {
			continue
		}
		seen[o.SourceBox] = true
		pruned = append(pruned, o)
	}
	return pruned
}

// buildSeed produces the initial stack for refinement: the reuse-tolerant DP
// chain pruned down to single use.
func buildSeed(pool []model.Orientation) model.Stack {
	return pruneSingleUse(dpChain(pool))
}
