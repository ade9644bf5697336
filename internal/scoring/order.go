package scoring

import "sort"

// orderScored arranges a scored batch into execution order:
//
//  1. orderable tasks (usable ID, not cyclic), emitted by a score-guided
//     topological elimination over the edges dependency -> dependent,
//     restricted to dependencies that are themselves orderable;
//  2. any orderable leftovers the elimination never reached, by descending
//     score (defensive; a correctly restricted acyclic subgraph leaves none);
//  3. untracked tasks (no usable ID) by descending score;
//  4. cyclic tasks last, by descending score.
//
// Ties everywhere resolve to original input order, so output is
// deterministic. Duplicate IDs are best-effort: the first occurrence takes
// part in the graph, later ones join the untracked group.
func orderScored(scored []ScoredTask, cycles map[string]bool) []ScoredTask {
	idxByID := make(map[string]int, len(scored))
	var orderableIDs []string
	var cyclicIdx, untrackedIdx []int

	for i, st := range scored {
		if st.ID == "" {
			untrackedIdx = append(untrackedIdx, i)
			continue
		}
		if _, dup := idxByID[st.ID]; dup {
			untrackedIdx = append(untrackedIdx, i)
			continue
		}
		idxByID[st.ID] = i
		if cycles[st.ID] {
			cyclicIdx = append(cyclicIdx, i)
		} else {
			orderableIDs = append(orderableIDs, st.ID)
		}
	}

	// Restricted graph over orderable tasks: dependency -> dependent.
	indegree := make(map[string]int, len(orderableIDs))
	adjacent := make(map[string][]string)
	for _, id := range orderableIDs {
		indegree[id] = 0
	}
	for _, id := range orderableIDs {
		for _, dep := range scored[idxByID[id]].Dependencies {
			if _, ok := indegree[dep]; !ok {
				continue // external, missing or cyclic reference
			}
			indegree[id]++
			adjacent[dep] = append(adjacent[dep], id)
		}
	}

	var available []string
	for _, id := range orderableIDs {
		if indegree[id] == 0 {
			available = append(available, id)
		}
	}

	emitted := make([]int, 0, len(orderableIDs))
	emittedSet := make(map[string]bool, len(orderableIDs))
	for len(available) > 0 {
		// Highest score wins; a strict comparison keeps the earliest of
		// equal-score tasks, so ties follow input order.
		best := 0
		for i := 1; i < len(available); i++ {
			if scored[idxByID[available[i]]].Score > scored[idxByID[available[best]]].Score {
				best = i
			}
		}
		id := available[best]
		available = append(available[:best], available[best+1:]...)
		emitted = append(emitted, idxByID[id])
		emittedSet[id] = true

		for _, next := range adjacent[id] {
			indegree[next]--
			if indegree[next] == 0 {
				available = append(available, next)
			}
		}
	}

	var leftoverIdx []int
	for _, id := range orderableIDs {
		if !emittedSet[id] {
			leftoverIdx = append(leftoverIdx, idxByID[id])
		}
	}
	sortByScoreDesc(scored, leftoverIdx)
	sortByScoreDesc(scored, untrackedIdx)
	sortByScoreDesc(scored, cyclicIdx)

	out := make([]ScoredTask, 0, len(scored))
	for _, i := range emitted {
		out = append(out, scored[i])
	}
	for _, i := range leftoverIdx {
		out = append(out, scored[i])
	}
	for _, i := range untrackedIdx {
		out = append(out, scored[i])
	}
	for _, i := range cyclicIdx {
		out = append(out, scored[i])
	}
	return out
}

func sortByScoreDesc(scored []ScoredTask, idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return scored[idx[a]].Score > scored[idx[b]].Score
	})
}
