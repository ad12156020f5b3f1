// Package roadgraph implements the canonical, directed multi-layer graph
// (spec §3/§4.3, component C3) that importers (roadgraph/osm, roadgraph/overture)
// produce and the search engine consumes.
//
// A Graph is a set of Vertices plus one EdgeList per travel mode; edges
// within an EdgeList are densely indexed by EdgeID. Internally the graph is
// stored as parallel arrays indexed by dense ids (spec §9, "Cyclic graphs &
// mutation") rather than a pointer graph, so that adding edges during
// import stays local and cheap. Graph itself only grows (SetVertex,
// AddEdgeList, AddEdge); it has no remove or disconnect operation - node
// removal, disconnection and way rewiring happen on roadgraph/osm's working
// graph before it is frozen. Once handed to the search engine the Graph is
// safely read-only-shared.
package roadgraph

import "errors"

var (
	// ErrVertexNotFound is returned when a referenced vertex id is out of range.
	ErrVertexNotFound = errors.New("roadgraph: vertex not found")
	// ErrEdgeListNotFound is returned when a referenced edge-list id is out of range.
	ErrEdgeListNotFound = errors.New("roadgraph: edge-list not found")
)

// Direction selects which adjacency side to query.
type Direction int

const (
	// Forward walks outgoing edges (u -> v).
	Forward Direction = iota
	// Reverse walks incoming edges (v -> u), i.e. predecessors.
	Reverse
)
