package dsu

import "fmt"

// New returns a DisjointSet of n singleton sets {0}, {1}, ..., {n-1}.
//
// Error Conditions:
//   - ErrInvalidSize : if n < 0.
//
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("dsu: New(%d): %w", n, ErrInvalidSize)
	}

	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n), // all zero
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i // every element is its own root
		d.size[i] = 1   // singleton set
	}

	return d, nil
}

// Len returns the number of elements n fixed at construction.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the current number of disjoint sets. O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Contains reports whether x is a valid element index.
func (d *DisjointSet) Contains(x int) bool {
	return x >= 0 && x < len(d.parent)
}

// Validate returns an error wrapping ErrOutOfRange if x is not in [0, Len()).
func (d *DisjointSet) Validate(x int) error {
	if !d.Contains(x) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(d.parent))
	}

	return nil
}

// Find returns the representative (root) of the set containing x.
//
// Steps:
//  1. Walk parent pointers from x until a self-loop (the root) is reached.
//  2. Walk the same path again, pointing every visited node directly at the root.
//
// The loop form keeps the call stack flat even on a chain of length n.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	// 1. Locate the root: the only node that is its own parent.
	root := x
	for d.parent[root] != root {
		root = d.parent[root] // climb one level
	}

	// 2. Path compression: repoint every node on the path at the root.
	for x != root {
		next := d.parent[x] // remember the next hop before overwriting
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y.
// Returns false when x and y are already in the same set; nothing changes then.
//
// The root with strictly smaller rank is attached under the other root. On equal
// ranks y's root is attached under x's root, whose rank then grows by exactly 1.
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		// Already in the same set; no action needed.
		return false
	}

	// Make rx the surviving root: the higher rank, or x's root on a tie.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx        // attach the shorter tree under the taller one
	d.size[rx] += d.size[ry] // surviving root now counts both sets
	if d.rank[rx] == d.rank[ry] {
		// Equal heights: the merged tree may be one level taller.
		d.rank[rx]++
	}
	d.count-- // exactly one set disappears

	return true
}

// Connected reports whether x and y belong to the same set.
// Only the path compression inherent in Find mutates the structure.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}

// Sets returns the current partition. Elements inside each set are ascending and
// sets are ordered by their smallest element, so the output is deterministic.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (d *DisjointSet) Sets() [][]int {
	out := make([][]int, 0, d.count)
	slot := make(map[int]int, d.count) // root -> index into out

	// Ascending scan: the first member seen of each set is its smallest one.
	for i := range d.parent {
		r := d.Find(i)
		k, ok := slot[r]
		if !ok {
			// First member of a new set: open a slot sized for the whole set.
			k = len(out)
			slot[r] = k
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[k] = append(out[k], i)
	}

	return out
}
