// Package dsu provides a Disjoint-Set (Union-Find) structure over a fixed universe
// of integer elements [0, n), using both path compression and union by rank.
//
// What & Why
//
//   - What is a Disjoint-Set?
//     A structure that maintains a partition of n elements into disjoint sets and answers
//     "which set is x in?" (Find) and "merge the sets of x and y" (Union) in amortized
//     near-constant time.
//
//   - Why it matters:
//
//   - Kruskal's MST: decide in O(α(V)) whether an edge would close a cycle (see package mst).
//
//   - Connectivity: count connected components of a graph incrementally as edges arrive.
//
//   - Cycle detection: an undirected edge (u,v) closes a cycle iff Connected(u, v) already holds.
//
// Representation
//
//   - parent[x]: the parent of x in its tree; parent[x] == x marks x as a root (set representative).
//   - rank[x]:   an upper bound on the height of the tree rooted at x (meaningful only for roots).
//   - size[x]:   number of elements in the set rooted at x (meaningful only for roots).
//   - count:     number of disjoint sets; starts at n and drops by exactly 1 per successful Union.
//
// Operations
//
//   - New(n int) (*DisjointSet, error)
//     n singleton sets. Returns ErrInvalidSize when n < 0.
//
//   - Find(x int) int
//     Iterative, two-pass: walk to the root, then rewire every visited node to point at it.
//     Mutates topology but never membership or Count.
//
//   - Union(x, y int) bool
//     Attach the lower-rank root under the higher-rank one. On a tie, y's root goes under
//     x's root and x's root rank grows by exactly 1. Returns false (and changes nothing)
//     if x and y already share a set.
//
//   - Connected(x, y int) bool, Count() int, Len() int, Size(x int) int, Sets() [][]int.
//
// Complexity
//
//   - Any sequence of m Find/Union calls on n elements costs O(m·α(n)), α = inverse Ackermann (≤ 4
//     for every realistic n). Dropping either optimization degrades this bound.
//   - Memory: O(n) for the three arrays.
//
// Index policy
//
//	Core operations (Find, Union, Connected, Size) trust their arguments: an index outside
//	[0, Len()) panics like any slice access. Callers accepting untrusted indices check them
//	once at their boundary with Validate, which returns an error wrapping ErrOutOfRange.
//
// Concurrency
//
//	A DisjointSet is NOT safe for concurrent use. Find mutates parent pointers, so even
//	read-looking calls require external synchronization.
package dsu
