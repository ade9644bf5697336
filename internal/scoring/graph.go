package scoring

type nodeColor uint8

const (
	colorWhite nodeColor = iota // unvisited
	colorGray                   // on the current traversal path
	colorBlack                  // fully explored
)

type dfsFrame struct {
	id   string
	next int // index of the next dependency edge to follow
}

// DetectCycles returns the set of task identifiers that participate in a
// circular dependency. Edges run task -> dependency. It is a three-color
// depth-first traversal with an explicit stack; when a gray node is reached
// again, every node on the path from that node's first occurrence onward is
// marked, so transitively involved tasks are included too.
//
// Dependency IDs absent from the batch are traversed as leaf nodes; they
// have no outgoing edges and can never close a cycle.
func DetectCycles(tasks []Task) map[string]bool {
	graph := make(map[string][]string, len(tasks))
	roots := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		if _, seen := graph[t.ID]; !seen {
			roots = append(roots, t.ID)
		}
		graph[t.ID] = t.Dependencies
	}

	colors := make(map[string]nodeColor, len(graph))
	inCycle := make(map[string]bool)

	for _, root := range roots {
		if colors[root] != colorWhite {
			continue
		}
		colors[root] = colorGray
		path := []string{root}
		stack := []dfsFrame{{id: root}}

		for len(stack) > 0 {
			frame := &stack[len(stack)-1]
			deps := graph[frame.id]
			if frame.next < len(deps) {
				dep := deps[frame.next]
				frame.next++
				switch colors[dep] {
				case colorWhite:
					colors[dep] = colorGray
					path = append(path, dep)
					stack = append(stack, dfsFrame{id: dep})
				case colorGray:
					// Cycle: mark the path suffix from dep's first occurrence.
					for i := range path {
						if path[i] == dep {
							for _, id := range path[i:] {
								inCycle[id] = true
							}
							break
						}
					}
				}
				continue
			}
			colors[frame.id] = colorBlack
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return inCycle
}

// DependencyBonus rewards tasks that unblock others: for every task it
// counts how many tasks in the batch list it as a dependency and maps the
// count to a bonus level. Cycle membership is irrelevant here.
func DependencyBonus(tasks []Task) map[string]float64 {
	dependents := make(map[string]int)
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			dependents[dep]++
		}
	}

	bonus := make(map[string]float64, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		switch n := dependents[t.ID]; {
		case n == 0:
			bonus[t.ID] = 0.0
		case n == 1:
			bonus[t.ID] = 0.3
		case n <= 3:
			bonus[t.ID] = 0.6
		default:
			bonus[t.ID] = 1.0
		}
	}
	return bonus
}
