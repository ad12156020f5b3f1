// Package constraint implements the frontier predicate (spec §4.8,
// component C8): given an edge, its incoming state and its edge-list mode,
// decide whether the search may cross that edge at all.
//
// Every constraint simulates the leg-switch that traversal would perform
// before testing itself, so that e.g. "continuing the active mode does not
// increase its count" holds without constraint needing its own copy of the
// leg-switch rule. A Constraint conjunction (All) rejects as soon as any
// member rejects.
package constraint
