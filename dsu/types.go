package dsu

import "errors"

var (
	// ErrInvalidSize indicates a negative element count passed to New.
	ErrInvalidSize = errors.New("dsu: invalid size")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	// Returned by Validate; core operations never return it.
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// DisjointSet partitions the elements [0, n) into disjoint sets.
// The zero value is an empty structure with no elements; use New to build one.
type DisjointSet struct {
	parent []int // parent[x] == x iff x is a root
	rank   []int // upper bound on tree height, roots only
	size   []int // number of elements in the set, roots only
	count  int   // number of roots
}
