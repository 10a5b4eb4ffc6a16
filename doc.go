// Package spanforest is a small, dependency-light toolkit for connectivity and
// minimum spanning trees over integer-labelled vertices.
//
// What is inside?
//
//	dsu/        — Disjoint-Set (Union-Find) with path compression and union by rank
//	mst/        — Kruskal's minimum spanning tree / forest on top of dsu
//	converters/ — Graphviz DOT import/export for mst edge lists
//
// Quick ASCII example:
//
//	    0───1        edges: 0-1(1) 1-2(2) 2-3(3) 0-3(4) 0-2(5)
//	    │ ╲ │
//	    3───2        MST:   0-1 1-2 2-3, total weight 6
//
// Every package is single-threaded by contract: a dsu.DisjointSet mutates its
// parent pointers even on Find, so share one only under external locking.
//
//	go get github.com/katalvlaran/spanforest
package spanforest
