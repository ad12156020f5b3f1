// Package overture imports OvertureMaps Transportation theme data
// (segments and connectors) into a roadgraph.Graph (spec §4.5, component
// C5): per-mode access filtering over access_restrictions, linear-reference
// segment splitting into edges, and island detection to drop disconnected
// slivers before the graph is handed to the search engine.
package overture
