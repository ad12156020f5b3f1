package osm

import "errors"

var (
	// ErrSimplificationFailed is returned when a forward walk from an
	// endpoint finds more than one unique successor, which R3 should have
	// ruled out for any non-endpoint node on the path.
	ErrSimplificationFailed = errors.New("osm: simplification failed: ambiguous successor")
	// ErrConsolidationMismatch is returned when a spatial cluster's
	// connected sub-clusters don't partition it exactly.
	ErrConsolidationMismatch = errors.New("osm: consolidation failed: sub-cluster sizes do not sum to cluster size")
)
