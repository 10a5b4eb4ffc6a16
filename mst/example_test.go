package mst_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/mst"
)

// ExampleKruskal builds the MST of a square 0-1-2-3 with two heavier chords.
// The three lightest edges already span the square: total weight 6.
func ExampleKruskal() {
	edges := []mst.Edge[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 4},
		{U: 0, V: 2, Weight: 5},
	}

	res, err := mst.Kruskal(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Connected: %t, Edges:", res.Total, res.Connected)
	for _, e := range res.Edges {
		fmt.Printf(" %d-%d(%d)", e.U, e.V, e.Weight)
	}
	fmt.Println()
	// Output: Total: 6, Connected: true, Edges: 0-1(1) 1-2(2) 2-3(3)
}

// ExampleKruskal_forest shows the spanning forest of a disconnected graph.
func ExampleKruskal_forest() {
	edges := []mst.Edge[float64]{
		{U: 0, V: 1, Weight: 0.5},
		{U: 2, V: 3, Weight: 1.5},
	}

	res, _ := mst.Kruskal(5, edges)
	fmt.Printf("Total: %.1f, Edges: %d, Connected: %t, Components: %d\n",
		res.Total, len(res.Edges), res.Connected, res.Components)
	// Output: Total: 2.0, Edges: 2, Connected: false, Components: 3
}

func ExampleKruskal_errVertexOutOfRange() {
	_, err := mst.Kruskal(3, []mst.Edge[int]{{U: 0, V: 3, Weight: 1}})
	fmt.Println(err)
	// Output: mst: vertex out of range: edge 0 (0,3) with n=3
}

// ExampleCycleEdges finds the edge closing the triangle 0-1-2.
func ExampleCycleEdges() {
	edges := []mst.Edge[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 0, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	}

	closing, _ := mst.CycleEdges(4, edges)
	fmt.Println(closing)
	// Output: [2]
}
