package mst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrVertexOutOfRange indicates that an edge references a vertex outside [0, n).
var ErrVertexOutOfRange = errors.New("mst: vertex out of range")

// ErrInvalidWeight indicates a NaN edge weight, which has no place in a total order.
var ErrInvalidWeight = errors.New("mst: invalid edge weight")

// Weight is the set of numeric types usable as edge weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is an undirected weighted edge between vertices U and V.
type Edge[W Weight] struct {
	U, V   int
	Weight W
}

// Result holds the outcome of Kruskal.
type Result[W Weight] struct {
	// Edges are the accepted edges in acceptance order (ascending weight).
	Edges []Edge[W]

	// Total is the sum of Edges' weights.
	Total W

	// Connected reports whether Edges span every vertex as a single tree.
	Connected bool

	// Components is the number of trees in the spanning forest.
	Components int
}

// TotalWeight returns the sum of the weights of edges.
func TotalWeight[W Weight](edges []Edge[W]) W {
	var total W
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
