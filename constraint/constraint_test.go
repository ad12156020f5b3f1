package constraint_test

import (
	"testing"

	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/constraint"
	"github.com/bambam/bambam/state"
	"github.com/bambam/bambam/traversal"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, maxLegs int) (*state.State, *categorical.Mapping) {
	t.Helper()
	modes, err := categorical.New([]string{"walk", "bike", "drive", "transit"})
	require.NoError(t, err)
	schema, err := state.NewSchema(maxLegs, modes.Categories())
	require.NoError(t, err)
	return state.New(schema), modes
}

// Scenario 6 (spec §8): MaxTripLegs(1) with an existing walk leg rejects a
// bike edge but accepts another walk edge.
func TestMaxTripLegs_RejectsSwitchAcceptsContinuation(t *testing.T) {
	s, modes := fixture(t, 5)
	s.SetEdgeInputs(100, 60)
	require.NoError(t, traversal.Apply(s, modes, "walk", "", nil))

	limit := constraint.MaxTripLegs(1)

	ok, err := limit.Allow(constraint.Frontier{State: s, Mode: "bike"}, modes)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = limit.Allow(constraint.Frontier{State: s, Mode: "walk"}, modes)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllowedModes(t *testing.T) {
	s, modes := fixture(t, 3)
	allowed := constraint.NewAllowedModes("walk", "transit")

	ok, err := allowed.Allow(constraint.Frontier{State: s, Mode: "walk"}, modes)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = allowed.Allow(constraint.Frontier{State: s, Mode: "drive"}, modes)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestModeCounts_ContinuationDoesNotIncreaseCount(t *testing.T) {
	s, modes := fixture(t, 5)
	s.SetEdgeInputs(100, 60)
	require.NoError(t, traversal.Apply(s, modes, "walk", "", nil))

	limits := constraint.ModeCounts{"walk": 1, "transit": 2}

	ok, err := limits.Allow(constraint.Frontier{State: s, Mode: "walk"}, modes)
	require.NoError(t, err)
	require.True(t, ok, "continuing walk must not count as a second walk leg")

	require.NoError(t, traversal.Apply(s, modes, "transit", "", nil))
	ok, err = limits.Allow(constraint.Frontier{State: s, Mode: "walk"}, modes)
	require.NoError(t, err)
	require.False(t, ok, "switching back to walk would be a second distinct walk leg")
}

func TestExactSequences(t *testing.T) {
	s, modes := fixture(t, 5)
	trie := constraint.NewSubSequenceTrie()
	trie.Insert([]string{"walk", "transit", "walk"})
	c := constraint.ExactSequences{Trie: trie}

	ok, err := c.Allow(constraint.Frontier{State: s, Mode: "walk"}, modes)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Allow(constraint.Frontier{State: s, Mode: "drive"}, modes)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAll_ShortCircuitsOnFirstRejection(t *testing.T) {
	s, modes := fixture(t, 5)
	all := constraint.All{
		constraint.NewAllowedModes("walk"),
		constraint.MaxTripLegs(1),
	}
	ok, err := all.Allow(constraint.Frontier{State: s, Mode: "drive"}, modes)
	require.NoError(t, err)
	require.False(t, ok)
}
