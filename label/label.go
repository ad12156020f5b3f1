package label

import (
	"strings"

	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/state"
)

// Label is the minimum projection of a search state required for the
// search engine's closed-set/dominance comparisons: the current vertex, the
// active leg's mode label (categorical.Unset if no leg is open yet), and
// the leg count. Every field is comparable, so Label can be used directly
// as a map key for the closed set.
type Label struct {
	VertexID     int
	ActiveMode   int64
	LegCount     int
	SequenceHash string // empty unless Config.IncludeSequence was set
}

// Config selects which optional fields Project folds into the label.
type Config struct {
	// IncludeSequence adds a hash of the full mode sequence walked so far.
	// Required whenever an ExactSequences constraint is active: two states
	// sharing vertex, active mode and leg count can still differ in which
	// stored sequences remain satisfiable for their continuations.
	IncludeSequence bool
}

// Project builds the Label for state s, currently located at vertexID.
func Project(vertexID int, s *state.State, modeMapping *categorical.Mapping, cfg Config) (Label, error) {
	l := Label{VertexID: vertexID, ActiveMode: categorical.Unset, LegCount: state.GetNLegs(s)}

	if idx, ok := state.GetActiveLeg(s); ok {
		modeLabel, hasMode, err := state.GetLegMode(s, idx)
		if err != nil {
			return Label{}, err
		}
		if hasMode {
			l.ActiveMode = modeLabel
		}
	}

	if cfg.IncludeSequence {
		seq, err := state.GetModeSequence(s, modeMapping)
		if err != nil {
			return Label{}, err
		}
		l.SequenceHash = strings.Join(seq, "\x1f")
	}

	return l, nil
}
