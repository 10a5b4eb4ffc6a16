package dsu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depth returns the number of parent hops from x to its root, without compressing.
func depth(d *DisjointSet, x int) int {
	h := 0
	for d.parent[x] != x {
		x = d.parent[x]
		h++
	}
	return h
}

// TestRankInvariants checks, after random unions, that ranks strictly increase
// toward the root, bound the tree height, and that the root count matches Count.
func TestRankInvariants(t *testing.T) {
	const n = 500
	d, err := New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 400; i++ {
		d.Union(r.Intn(n), r.Intn(n))
	}

	roots, total := 0, 0
	for x := 0; x < n; x++ {
		p := d.parent[x]
		if p == x {
			roots++
			total += d.size[x]
			continue
		}
		assert.Less(t, d.rank[x], d.rank[p], "rank must grow from %d to parent %d", x, p)
		assert.LessOrEqual(t, depth(d, x), d.rank[d.Find(x)])
	}
	assert.Equal(t, d.count, roots)
	assert.Equal(t, n, total, "root sizes must cover every element once")
}

// TestUnion_TieIncrementsRank verifies that only an equal-rank merge grows the rank.
func TestUnion_TieIncrementsRank(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)

	require.True(t, d.Union(0, 1)) // tie: 0 survives, rank 1
	assert.Equal(t, 0, d.Find(1))
	assert.Equal(t, 1, d.rank[0])

	require.True(t, d.Union(2, 0)) // 2 has rank 0 < 1: goes under 0, no growth
	assert.Equal(t, 0, d.Find(2))
	assert.Equal(t, 1, d.rank[0])

	require.True(t, d.Union(3, 0))
	assert.Equal(t, 1, d.rank[0])
	assert.Equal(t, 4, d.size[0])
	assert.Equal(t, 1, d.count)
}

// TestFind_CompressesLongChain builds an adversarial chain by hand and checks that
// Find walks it without recursion and leaves every node pointing at the root.
func TestFind_CompressesLongChain(t *testing.T) {
	const n = 1 << 20
	d, err := New(n)
	require.NoError(t, err)

	// n-1 -> n-2 -> ... -> 0
	for x := 1; x < n; x++ {
		d.parent[x] = x - 1
	}
	d.rank[0] = n
	d.size[0] = n
	d.count = 1

	assert.Equal(t, 0, d.Find(n-1))
	for x := 0; x < n; x++ {
		if d.parent[x] != 0 {
			t.Fatalf("parent[%d] = %d after compression; want 0", x, d.parent[x])
		}
	}
	assert.Equal(t, 1, d.count, "Find must not change Count")
}
