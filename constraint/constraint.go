package constraint

import (
	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/state"
)

// Frontier is the (edge, incoming_state, edge_mode) tuple a Constraint is
// evaluated against, before traversal would actually mutate the state.
type Frontier struct {
	State *state.State
	Mode  string
}

// Constraint is one predicate in the conjunction the search frontier must
// satisfy to cross an edge.
type Constraint interface {
	Allow(f Frontier, modeMapping *categorical.Mapping) (bool, error)
}

// All combines constraints into a single conjunction, short-circuiting and
// rejecting as soon as any member rejects.
type All []Constraint

// Allow implements Constraint.
func (a All) Allow(f Frontier, modeMapping *categorical.Mapping) (bool, error) {
	for _, c := range a {
		ok, err := c.Allow(f, modeMapping)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// simulatedSequence returns the mode sequence that would result from
// crossing an edge of mode f.Mode starting from f.State, without mutating
// f.State: if the active leg already carries f.Mode, the sequence is
// unchanged (continuation); otherwise f.Mode is appended (switch).
func simulatedSequence(f Frontier, modeMapping *categorical.Mapping) ([]string, error) {
	seq, err := state.GetModeSequence(f.State, modeMapping)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 || seq[len(seq)-1] != f.Mode {
		seq = append(append([]string(nil), seq...), f.Mode)
	}
	return seq, nil
}

// AllowedModes rejects any edge whose mode is outside the whitelist.
type AllowedModes map[string]struct{}

// NewAllowedModes builds an AllowedModes whitelist from the given mode names.
func NewAllowedModes(modes ...string) AllowedModes {
	s := make(AllowedModes, len(modes))
	for _, m := range modes {
		s[m] = struct{}{}
	}
	return s
}

// Allow implements Constraint.
func (a AllowedModes) Allow(f Frontier, _ *categorical.Mapping) (bool, error) {
	_, ok := a[f.Mode]
	return ok, nil
}

// ModeCounts rejects an edge if crossing it would push any mode's simulated
// distinct-leg count past its configured limit. Continuing the active mode
// never increases that mode's count.
type ModeCounts map[string]int

// Allow implements Constraint.
func (m ModeCounts) Allow(f Frontier, modeMapping *categorical.Mapping) (bool, error) {
	seq, err := simulatedSequence(f, modeMapping)
	if err != nil {
		return false, err
	}
	counts := make(map[string]int, len(seq))
	for _, mode := range seq {
		counts[mode]++
	}
	for mode, limit := range m {
		if counts[mode] > limit {
			return false, nil
		}
	}
	return true, nil
}

// MaxTripLegs rejects an edge if crossing it would push the simulated leg
// count past K. Continuing the active mode never increases the leg count
// (the always-counting-0-on-continuation bug named in spec §4.8 is not
// reproduced here).
type MaxTripLegs int

// Allow implements Constraint.
func (k MaxTripLegs) Allow(f Frontier, modeMapping *categorical.Mapping) (bool, error) {
	seq, err := simulatedSequence(f, modeMapping)
	if err != nil {
		return false, err
	}
	return len(seq) <= int(k), nil
}

// ExactSequences rejects an edge unless the simulated mode sequence is a
// subsequence of at least one sequence stored in Trie.
type ExactSequences struct {
	Trie *SubSequenceTrie
}

// Allow implements Constraint.
func (e ExactSequences) Allow(f Frontier, modeMapping *categorical.Mapping) (bool, error) {
	seq, err := simulatedSequence(f, modeMapping)
	if err != nil {
		return false, err
	}
	return e.Trie.ContainsSubsequence(seq), nil
}
