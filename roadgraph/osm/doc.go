// Package osm imports an OpenStreetMap road extract into a roadgraph.Graph
// (spec §4.4, component C4): a mutable working graph of Nodes and Ways is
// built from a PBF stream, then simplified (collapsing interstitial nodes
// into compound ways) and consolidated (merging geometrically close nodes
// that form the same intersection) before being frozen into the canonical
// multigraph.
//
// PBF decoding follows github.com/paulmach/osm/osmpbf's two-pass scan: ways
// first (to learn which node ids matter and which travel modes they admit),
// then nodes (to fetch only the coordinates actually referenced).
package osm
