// Package converters provides two-way adapters between mst edge lists and
// Graphviz DOT, built on github.com/awalterschulze/gographviz.
//
//   - ToDOT renders vertices [0, n) and a list of weighted edges as an undirected
//     DOT graph. Each edge carries `weight` and `label` attributes, so a spanning
//     forest returned by mst.Kruskal can be visualized directly with `dot -Tsvg`.
//   - FromDOT parses an undirected DOT graph whose node names are non-negative
//     integers back into (n, []mst.Edge[float64]), ready for mst.Kruskal.
//
// Both directions work on in-memory strings only.
package converters
