package mst

import (
	"golang.org/x/exp/slices"
)

// Kruskal computes a minimum spanning forest of the undirected graph with vertices
// [0, n) and the given edges. The caller's slice is never reordered.
//
// Error Conditions:
//   - dsu.ErrInvalidSize     : if n < 0.
//   - ErrVertexOutOfRange    : if any endpoint is outside [0, n).
//   - ErrInvalidWeight       : if any weight is NaN.
//
// Steps:
//  1. Validate n and every edge; build a DisjointSet over n vertices.
//  2. n == 0 → empty, connected result.
//  3. Copy edges and stable-sort them by ascending weight (ties keep input order).
//  4. Walk sorted edges: accept (u,v) iff Union(u, v) merges two components,
//     i.e. Find(u) != Find(v). Self-loops never merge and are never accepted.
//  5. Stop once n−1 edges have been accepted.
//  6. Connected = exactly one component remains.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal[W Weight](n int, edges []Edge[W]) (Result[W], error) {
	// 1. Boundary validation; nothing is returned on failure.
	forest, err := newForest(n, edges)
	if err != nil {
		return Result[W]{}, err
	}

	// 2. No vertices: the empty forest is trivially connected.
	if n == 0 {
		return Result[W]{Edges: []Edge[W]{}, Connected: true}, nil
	}

	// 3. Sort a private copy so the caller's order survives.
	sorted := slices.Clone(edges) // shallow copy; Edge is a plain value
	slices.SortStableFunc(sorted, func(a, b Edge[W]) int {
		switch {
		case a.Weight < b.Weight:
			return -1 // lighter edge first
		case a.Weight > b.Weight:
			return 1
		default:
			return 0 // tie: stable sort keeps input order
		}
	})

	// 4. Greedy pass over edges in ascending weight.
	var (
		tree  = make([]Edge[W], 0, n-1) // accepted edges, at most |V|-1
		total W                         // sum of accepted weights
	)
	for _, e := range sorted {
		// Union fails iff u and v already share a component: the edge would close a cycle.
		if !forest.Union(e.U, e.V) {
			continue
		}
		tree = append(tree, e) // keep the edge in acceptance order
		total += e.Weight      // accumulate weight

		// 5. Spanning tree complete: remaining edges can only close cycles.
		if len(tree) == n-1 {
			break
		}
	}

	// 6. Report connectivity from the component count.
	components := forest.Count() // one per tree of the forest
	return Result[W]{
		Edges:      tree,
		Total:      total,
		Connected:  components == 1,
		Components: components,
	}, nil
}
