package converters

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/spanforest/mst"
)

// defaultGraphName is used by ToDOT when no name is given.
const defaultGraphName = "G"

// MaxNodeID is the largest node id FromDOT accepts. It bounds the vertex count
// handed to mst.Kruskal, which allocates O(n) memory.
const MaxNodeID = 1<<24 - 1

// ToDOT renders an undirected DOT graph named name with nodes 0..n-1 and one edge
// per element of edges, in order. Endpoints are validated against [0, n).
//
// Error Conditions:
//   - mst.ErrVertexOutOfRange : an edge endpoint lies outside [0, n).
//   - any gographviz error while assembling the graph (wrapped).
//
// Complexity: O(V + E).
func ToDOT[W mst.Weight](name string, n int, edges []mst.Edge[W]) (string, error) {
	if name == "" {
		name = defaultGraphName
	}

	g := gographviz.NewEscape()
	if err := g.SetName(name); err != nil {
		return "", fmt.Errorf("converters: ToDOT: %w", err)
	}
	if err := g.SetDir(false); err != nil {
		return "", fmt.Errorf("converters: ToDOT: %w", err)
	}

	// 1. Nodes, so isolated vertices survive the round trip.
	for v := 0; v < n; v++ {
		if err := g.AddNode(name, strconv.Itoa(v), nil); err != nil {
			return "", fmt.Errorf("converters: ToDOT: node %d: %w", v, err)
		}
	}

	// 2. Edges with their weight as both weight and label.
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return "", fmt.Errorf("converters: ToDOT: %w: edge %d (%d,%d) with n=%d",
				mst.ErrVertexOutOfRange, i, e.U, e.V, n)
		}
		w := fmt.Sprint(e.Weight)
		attrs := map[string]string{"weight": w, "label": w}
		if err := g.AddEdge(strconv.Itoa(e.U), strconv.Itoa(e.V), false, attrs); err != nil {
			return "", fmt.Errorf("converters: ToDOT: edge %d: %w", i, err)
		}
	}

	return g.String(), nil
}

// FromDOT parses src as an undirected DOT graph. Node names must be integers in
// [0, MaxNodeID]; n is the largest node id plus one (0 for a graph without nodes).
// Edge weights come from the `weight` attribute, defaulting to 1 when absent.
// Edges keep their declaration order.
//
// Error Conditions:
//   - DOT syntax or semantic errors from gographviz (wrapped).
//   - ErrDirectedGraph : src declares a digraph.
//   - ErrBadNodeID     : a node name is not an integer in [0, MaxNodeID].
//   - ErrBadWeight     : a weight attribute does not parse as a float.
func FromDOT(src string) (int, []mst.Edge[float64], error) {
	// 1. Parse and analyse, as gographviz separates syntax from semantics.
	tree, err := gographviz.ParseString(src)
	if err != nil {
		return 0, nil, fmt.Errorf("converters: FromDOT: %w", err)
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(tree, g); err != nil {
		return 0, nil, fmt.Errorf("converters: FromDOT: %w", err)
	}
	if g.Directed {
		return 0, nil, ErrDirectedGraph
	}

	// 2. Vertex count from the largest id.
	n := 0
	for _, node := range g.Nodes.Nodes {
		id, err := nodeID(node.Name)
		if err != nil {
			return 0, nil, err
		}
		// id <= MaxNodeID, so id+1 cannot overflow.
		if id+1 > n {
			n = id + 1
		}
	}

	// 3. Edges.
	edges := make([]mst.Edge[float64], 0, len(g.Edges.Edges))
	for _, de := range g.Edges.Edges {
		u, err := nodeID(de.Src)
		if err != nil {
			return 0, nil, err
		}
		v, err := nodeID(de.Dst)
		if err != nil {
			return 0, nil, err
		}
		w := 1.0
		if raw, ok := de.Attrs["weight"]; ok {
			w, err = strconv.ParseFloat(unquote(raw), 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: edge %s--%s weight %s", ErrBadWeight, de.Src, de.Dst, raw)
			}
		}
		edges = append(edges, mst.Edge[float64]{U: u, V: v, Weight: w})
	}

	return n, edges, nil
}

// nodeID converts a DOT node name to a vertex index in [0, MaxNodeID].
func nodeID(name string) (int, error) {
	id, err := strconv.Atoi(unquote(name))
	if err != nil || id < 0 || id > MaxNodeID {
		return 0, fmt.Errorf("%w: %q", ErrBadNodeID, name)
	}

	return id, nil
}

// unquote removes one surrounding pair of double quotes, as DOT allows around IDs
// and attribute values, resolving escapes inside. Unquoted input is returned as is.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}

	// DOT escapes such as \l are not Go escapes: drop the quotes only.
	return s[1 : len(s)-1]
}
