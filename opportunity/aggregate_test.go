package opportunity_test

import (
	"testing"

	"github.com/bambam/bambam/opportunity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectTripOpportunities_DedupKeepsLastWritten(t *testing.T) {
	tab := opportunity.NewTabular([]string{"jobs"}, opportunity.DestinationVertex, 1)
	require.NoError(t, tab.Set(0, []float64{10}))

	destinations := []opportunity.Destination{
		{Row: opportunity.NewDestinationVertexRowID(0), ReachTime: 500},
		{Row: opportunity.NewDestinationVertexRowID(0), ReachTime: 300}, // reached again, faster
		{Row: opportunity.NewDestinationVertexRowID(1), ReachTime: 100}, // not covered by tab
	}

	got := opportunity.CollectTripOpportunities(destinations, tab)
	require.Len(t, got, 1)
	assert.Equal(t, 300.0, got[0].ReachTime)
}

func TestAggregateBin_HalfOpenRangeAndSum(t *testing.T) {
	rows := []opportunity.RowOpportunity{
		{Counts: []float64{1, 2}, ReachTime: 599},
		{Counts: []float64{10, 20}, ReachTime: 600}, // excluded, at upper bound
		{Counts: []float64{3, 4}, ReachTime: 0},
	}
	totals := opportunity.AggregateBin(rows, []string{"jobs", "schools"}, 0, 600)
	assert.Equal(t, map[string]float64{"jobs": 4, "schools": 6}, totals)
}
