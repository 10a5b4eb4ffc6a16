// Package mst computes a Minimum Spanning Tree (or forest) of an undirected, weighted graph
// given as a vertex count n and a list of edges over vertices [0, n), using Kruskal's algorithm
// on top of the dsu.DisjointSet structure.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and whose total weight is minimal. On a disconnected graph the
//     same procedure yields a minimum spanning forest: one tree per connected component.
//
//   - Why MST matters:
//
//   - Network Design: cheapest set of links that still connects every site.
//
//   - Clustering: cut the heaviest MST edges to split points into clusters.
//
//   - Subroutines: MST bounds appear inside TSP approximations and Steiner-tree heuristics.
//
// Algorithm
//
//   - Kruskal[W](n int, edges []Edge[W]) (Result[W], error)
//
//   - Strategy: stable-sort a copy of the edges by ascending weight, then walk them in order.
//     An edge (u,v) is accepted iff u and v are still in different components; accepting it
//     merges the two components. Stop once n−1 edges have been accepted.
//
//   - Cut property: the lightest edge crossing any cut of the current components belongs to
//     some MST, so each accepted edge keeps the result optimal; a rejected edge would close a cycle.
//
//   - Complexity: Time O(E log E + E·α(V)), sorting dominates. Space O(V + E).
//
//   - Determinism: ties in weight keep their input order, so identical inputs always give
//     identical edge sequences.
//
//   - CycleEdges[W](n int, edges []Edge[W]) ([]int, error)
//     Walks edges in input order and reports the indices of those that close a cycle.
//
// Inputs & edge cases
//
//   - Weights are any integer or floating-point type (see Weight). NaN weights are rejected.
//   - Self-loops are legal input and never accepted.
//   - Parallel edges are legal; only the lightest can be accepted.
//   - n == 0 gives an empty result that reports Connected == true.
//   - A disconnected graph is NOT an error: Result.Connected is false and Result.Edges holds
//     n−k edges for k components.
//
// Error Conditions
//
//   - dsu.ErrInvalidSize      : n < 0.
//   - ErrVertexOutOfRange     : some edge endpoint lies outside [0, n).
//   - ErrInvalidWeight        : some edge weight is NaN.
//
// Validation runs once, before any union; on error no partial result is returned.
//
// For examples of usage, see example_test.go in this package.
package mst
