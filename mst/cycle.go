package mst

// CycleEdges walks edges in input order, merging endpoints as it goes, and returns
// the indices of edges whose endpoints were already connected when reached. Each
// such edge closes a cycle with earlier edges; a self-loop always does.
// A nil slice means the edge list is a forest.
//
// Errors match Kruskal: dsu.ErrInvalidSize, ErrVertexOutOfRange, ErrInvalidWeight.
//
// Complexity: O(E·α(V)). Memory: O(V).
func CycleEdges[W Weight](n int, edges []Edge[W]) ([]int, error) {
	forest, err := newForest(n, edges)
	if err != nil {
		return nil, err
	}

	var closing []int
	for i, e := range edges {
		if !forest.Union(e.U, e.V) {
			closing = append(closing, i)
		}
	}

	return closing, nil
}
