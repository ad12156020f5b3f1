// Package routesearch is a small Dijkstra shortest-path helper over a
// frozen roadgraph.Graph edge-list, used only by tests.
//
// Production code never imports this package: spec §1/§2 place the
// multimodal search engine itself out of scope as an external collaborator,
// and a real deployment plugs traversal.Apply and constraint.Constraint into
// whatever search loop the caller already runs. Tests that need to drive a
// full path through that pipeline - from a chosen source vertex to a
// destination, applying per-edge state transitions along the way - use
// routesearch to get a real, non-trivial path instead of hand-listing edges.
package routesearch
