package bin_test

import (
	"testing"

	"github.com/bambam/bambam/bin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	floats map[string]float64
	bools  map[string]bool
}

func (f fakeState) Float(name string) (float64, bool) { v, ok := f.floats[name]; return v, ok }
func (f fakeState) Bool(name string) (bool, bool)      { v, ok := f.bools[name]; return v, ok }

// Universal invariant 1 (spec §8): within_bin(min,max,x) iff min <= x < max.
func TestWithinBin_HalfOpenRange(t *testing.T) {
	b := bin.Bin{Kind: bin.Time, Feature: "t", Min: 10, Max: 20}
	cases := []struct {
		x    float64
		want bool
	}{
		{9.999, false},
		{10, true},
		{15, true},
		{19.999, true},
		{20, false},
	}
	for _, c := range cases {
		got, err := b.WithinBin(fakeState{floats: map[string]float64{"t": c.x}}, nil)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "x=%v", c.x)
	}
}

func TestWithinBin_BooleanFeature(t *testing.T) {
	b := bin.Bin{Kind: bin.Boolean, Feature: "accessible"}
	got, err := b.WithinBin(fakeState{bools: map[string]bool{"accessible": true}}, nil)
	require.NoError(t, err)
	assert.True(t, got)

	negated := bin.Bin{Kind: bin.Boolean, Feature: "accessible", Negate: true}
	got, err = negated.WithinBin(fakeState{bools: map[string]bool{"accessible": true}}, nil)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestWithinBin_CustomRangeOverBool(t *testing.T) {
	b := bin.Bin{Kind: bin.CustomRange, Feature: "hasElevator", Unit: "bool", Min: 1, Max: 2}
	got, err := b.WithinBin(fakeState{bools: map[string]bool{"hasElevator": true}}, nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWithinBin_MissingFeature(t *testing.T) {
	b := bin.Bin{Kind: bin.Distance, Feature: "d", Min: 0, Max: 1}
	_, err := b.WithinBin(fakeState{}, nil)
	require.ErrorIs(t, err, bin.ErrMissingFeature)
}

func TestGenerateBins_PairwiseWindows(t *testing.T) {
	bins := bin.GenerateBins(bin.Config{Kind: bin.Time, Feature: "t", Values: []float64{0, 15, 30, 45}})
	require.Len(t, bins, 3)
	assert.Equal(t, bin.Bin{Kind: bin.Time, Feature: "t", Min: 0, Max: 15}, bins[0])
	assert.Equal(t, bin.Bin{Kind: bin.Time, Feature: "t", Min: 15, Max: 30}, bins[1])
	assert.Equal(t, bin.Bin{Kind: bin.Time, Feature: "t", Min: 30, Max: 45}, bins[2])
}

func TestGenerateBins_TooFewValues(t *testing.T) {
	assert.Nil(t, bin.GenerateBins(bin.Config{Values: []float64{5}}))
	assert.Nil(t, bin.GenerateBins(bin.Config{}))
}
