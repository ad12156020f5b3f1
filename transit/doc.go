// Package transit implements the GTFS schedule engine (spec §4.6, component
// C6): converting a parsed GTFS archive into per-edge, skip-list-indexed
// timetables and answering "next departure after t" queries with support
// for date remapping across calendar gaps (spec §4.6.1-§4.6.3).
//
// Parsing itself is delegated to github.com/geops/gtfsparser; this package
// adapts its Feed into the minimal shape ImportGTFS consumes (see
// gtfsparser_adapter.go) so the scheduling logic stays independent of that
// library's own type surface.
package transit
