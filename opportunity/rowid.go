package opportunity

import (
	"fmt"
	"strconv"
)

// Orientation selects which side of an edge (or which vertex role) an
// opportunity model's rows are keyed by (spec §3).
type Orientation int

const (
	// OriginVertex keys rows by the vertex an opportunity is attached to as
	// a trip origin.
	OriginVertex Orientation = iota
	// DestinationVertex keys rows by the vertex an opportunity is reached at.
	DestinationVertex
	// Edge keys rows by (edge-list id, edge id) — opportunities attached to
	// a road segment rather than a single vertex.
	Edge
)

// RowID identifies one row of an opportunity model's counts, disambiguated
// by Orientation per spec §4.11.
type RowID struct {
	Orientation Orientation
	VertexLabel int // meaningful for OriginVertex / DestinationVertex
	EdgeListID  int // meaningful for Edge
	EdgeID      int // meaningful for Edge
}

// NewOriginVertexRowID builds a RowID for an origin-oriented model.
func NewOriginVertexRowID(vertex int) RowID {
	return RowID{Orientation: OriginVertex, VertexLabel: vertex}
}

// NewDestinationVertexRowID builds a RowID for a destination-oriented model.
func NewDestinationVertexRowID(vertex int) RowID {
	return RowID{Orientation: DestinationVertex, VertexLabel: vertex}
}

// NewEdgeRowID builds a RowID for an edge-oriented model.
func NewEdgeRowID(edgeListID, edgeID int) RowID {
	return RowID{Orientation: Edge, EdgeListID: edgeListID, EdgeID: edgeID}
}

// String renders the disaggregate opportunity id format from spec §6:
// "<edge_list_id>-<edge_id>" for edge-oriented rows, the decimal vertex id
// otherwise.
func (r RowID) String() string {
	if r.Orientation == Edge {
		return fmt.Sprintf("%d-%d", r.EdgeListID, r.EdgeID)
	}
	return strconv.Itoa(r.VertexLabel)
}
