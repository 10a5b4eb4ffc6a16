package converters

import "errors"

var (
	// ErrDirectedGraph indicates a `digraph` where an undirected graph is required.
	ErrDirectedGraph = errors.New("converters: directed DOT graph not supported")

	// ErrBadNodeID indicates a DOT node name that is not a non-negative integer.
	ErrBadNodeID = errors.New("converters: node id must be a non-negative integer")

	// ErrBadWeight indicates an edge `weight` attribute that is not a number.
	ErrBadWeight = errors.New("converters: edge weight is not a number")
)
