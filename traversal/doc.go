// Package traversal implements the per-edge state update (spec §4.7,
// component C7): given the state arriving at an edge and the edge's
// edge-list mode, it performs the leg-switch/accumulate/route-id steps that
// turn edge_distance/edge_time scratch inputs into leg and mode
// accumulators on the outgoing state.
//
// Traversal never estimates (the A*-style heuristic hook is a no-op per
// spec §4.7); it only ever supplies true incremental costs. A failed
// traversal (ErrMaxLegsExceeded) is a transaction: Apply leaves the state
// as it was on entry, and callers discard the cloned state rather than
// continue the path with it (spec §9, Open Questions).
package traversal
