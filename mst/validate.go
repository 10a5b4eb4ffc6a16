package mst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/dsu"
)

// newForest validates n and every edge against [0, n), then returns a fresh
// DisjointSet over n vertices. Priority: size -> endpoints -> weight, first
// offending edge wins.
func newForest[W Weight](n int, edges []Edge[W]) (*dsu.DisjointSet, error) {
	d, err := dsu.New(n)
	if err != nil {
		return nil, fmt.Errorf("mst: %w", err)
	}

	for i, e := range edges {
		if !d.Contains(e.U) || !d.Contains(e.V) {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
		if isNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) has NaN weight", ErrInvalidWeight, i, e.U, e.V)
		}
	}

	return d, nil
}

// isNaN reports whether w is a floating-point NaN; always false for integers.
func isNaN[W Weight](w W) bool {
	return math.IsNaN(float64(w))
}
