package domain

import "slices"

// Traversal colors for cycle detection.
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

// DetectCycles finds every circular reference chain in the graph's edges.
// Each cycle is reported as the path from the repeated node back to itself,
// in discovery order. Detection does not stop at the first cycle.
//
// The traversal is an explicit-stack depth-first search with three-coloring
// rather than native recursion, so stack depth stays bounded on deep
// dependency chains. The outer loop walks nodes in insertion order and edge
// lists in provider order, making the report deterministic.
//
// Edges to names without a node are skipped here; they surface through the
// unresolved partition instead.
func (g *DependencyGraph) DetectCycles() [][]InternedString {
	colors := make(map[InternedString]int, len(g.nodes))
	var cycles [][]InternedString

	type frame struct {
		name InternedString
		next int
	}

	for _, root := range g.order {
		if colors[root] != colorUnvisited {
			continue
		}

		stack := []frame{{name: root}}
		path := []InternedString{root}
		colors[root] = colorInProgress

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g.edges[top.name]

			descended := false
			for top.next < len(edges) {
				dep := edges[top.next]
				top.next++

				if _, exists := g.nodes[dep]; !exists {
					continue
				}

				switch colors[dep] {
				case colorInProgress:
					// Back-edge: the path from dep to here closes a cycle.
					cycles = append(cycles, closeCycle(path, dep))
				case colorUnvisited:
					colors[dep] = colorInProgress
					stack = append(stack, frame{name: dep})
					path = append(path, dep)
					descended = true
				}
				if descended {
					break
				}
			}

			if !descended && top.next >= len(edges) {
				colors[top.name] = colorDone
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
			}
		}
	}

	return cycles
}

// closeCycle extracts the cycle from the current DFS path, starting and
// ending at the repeated node.
func closeCycle(path []InternedString, repeated InternedString) []InternedString {
	start := slices.Index(path, repeated)
	cycle := make([]InternedString, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	return append(cycle, repeated)
}
