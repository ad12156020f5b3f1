// Package label implements the projection from a search state onto a
// hashable label (spec §4.9, component C9) used by the search engine's
// closed-set/dominance rules: two states at the same vertex collapse onto
// the same label iff they would be indistinguishable for any admissible
// continuation.
package label
