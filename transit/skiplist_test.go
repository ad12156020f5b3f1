package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_LowerBound_FindsEarliestAtOrAfter(t *testing.T) {
	s := NewSchedule(7)
	s.Insert(Departure{SrcDeparture: 1000, DstArrival: 1100})
	s.Insert(Departure{SrcDeparture: 2000, DstArrival: 2100})
	s.Insert(Departure{SrcDeparture: 3000, DstArrival: 3100})

	got, ok := s.LowerBound(1500)
	require.True(t, ok)
	assert.EqualValues(t, 2000, got.SrcDeparture)

	got, ok = s.LowerBound(2000)
	require.True(t, ok)
	assert.EqualValues(t, 2000, got.SrcDeparture)

	_, ok = s.LowerBound(3001)
	assert.False(t, ok)
}

func TestSchedule_Walk_IsSortedBySrcDeparture(t *testing.T) {
	s := NewSchedule(3)
	order := []Timestamp{500, 100, 900, 300, 700}
	for _, ts := range order {
		s.Insert(Departure{SrcDeparture: ts, DstArrival: ts + 10})
	}

	walked := s.Walk()
	require.Len(t, walked, len(order))
	for i := 1; i < len(walked); i++ {
		assert.LessOrEqual(t, walked[i-1].SrcDeparture, walked[i].SrcDeparture)
	}
}

func TestSchedule_LowerBound_EmptySchedule(t *testing.T) {
	s := NewSchedule(1)
	_, ok := s.LowerBound(0)
	assert.False(t, ok)
}

func TestInfiniteDeparture_IsSaturatedAtBothEnds(t *testing.T) {
	inf := InfiniteDeparture()
	assert.Equal(t, Infinity(), inf.SrcDeparture)
	assert.Equal(t, Infinity(), inf.DstArrival)
}
