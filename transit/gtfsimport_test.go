package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambam/bambam/roadgraph"
)

type fixedLocator struct {
	byCoord map[[2]float64]int
}

func (f fixedLocator) Locate(lat, lon float64) (int, bool) {
	vid, ok := f.byCoord[[2]float64{lat, lon}]
	return vid, ok
}

func sampleFeed() *Feed {
	return &Feed{
		Stops: []Stop{
			{ID: "s1", Lat: 1, Lon: 1, HasLocation: true},
			{ID: "s2", Lat: 2, Lon: 2, HasLocation: true},
		},
		Routes: []Route{{ID: "r1", AgencyID: "a1"}},
		Trips:  []Trip{{ID: "t1", RouteID: "r1", ServiceID: "svc1"}},
		StopTimes: map[string][]StopTime{
			"t1": {
				{TripID: "t1", StopID: "s1", Sequence: 0, DepartureSeconds: 1000},
				{TripID: "t1", StopID: "s2", Sequence: 1, ArrivalSeconds: 1500},
			},
		},
		Calendars: map[string]*ServiceCalendar{},
	}
}

func TestBuildRouteMapping_AssignsStableSortedLabels(t *testing.T) {
	feed := sampleFeed()
	feed.Routes = append(feed.Routes, Route{ID: "r0", AgencyID: "a1"})

	m, err := BuildRouteMapping(feed)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	l0, ok := m.Label("a1:r0")
	require.True(t, ok)
	l1, ok := m.Label("a1:r1")
	require.True(t, ok)
	assert.Less(t, l0, l1) // sorted order: "a1:r0" < "a1:r1"
}

func TestImportGTFS_CreatesEdgeAndSchedule(t *testing.T) {
	feed := sampleFeed()
	routeMapping, err := BuildRouteMapping(feed)
	require.NoError(t, err)

	graph := roadgraph.NewGraph(2)
	graph.SetVertex(0, 1, 1)
	graph.SetVertex(1, 2, 2)
	locator := fixedLocator{byCoord: map[[2]float64]int{{1, 1}: 0, {2, 2}: 1}}

	engine, meta, err := ImportGTFS(feed, graph, locator, routeMapping, FailOnMissingStop, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.NumEdgesCreated)

	routeLabel, ok := routeMapping.Label("a1:r1")
	require.True(t, ok)
	dep, err := engine.GetNextDeparture(EdgeKey{RouteID: routeLabel, Src: 0, Dst: 1}, 0, Date{2025, 1, 1}, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, dep.SrcDeparture)
	assert.EqualValues(t, 1500, dep.DstArrival)
}

func TestImportGTFS_MissingStopLocation_FailsUnderFailPolicy(t *testing.T) {
	feed := sampleFeed()
	routeMapping, err := BuildRouteMapping(feed)
	require.NoError(t, err)

	graph := roadgraph.NewGraph(2)
	locator := fixedLocator{byCoord: map[[2]float64]int{}} // resolves nothing

	_, _, err = ImportGTFS(feed, graph, locator, routeMapping, FailOnMissingStop, 1)
	assert.ErrorIs(t, err, ErrMissingStopLocation)
}

func TestImportGTFS_MissingStopLocation_SkipsUnderSkipPolicy(t *testing.T) {
	feed := sampleFeed()
	routeMapping, err := BuildRouteMapping(feed)
	require.NoError(t, err)

	graph := roadgraph.NewGraph(2)
	locator := fixedLocator{byCoord: map[[2]float64]int{}}

	_, meta, err := ImportGTFS(feed, graph, locator, routeMapping, SkipTripOnMissingStop, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, meta.SkippedTripIDs)
	assert.Zero(t, meta.NumEdgesCreated)
}

func TestImportGTFS_ParentStationFallback(t *testing.T) {
	feed := sampleFeed()
	feed.Stops = []Stop{
		{ID: "s1", HasLocation: false, ParentStation: "hub"},
		{ID: "hub", Lat: 9, Lon: 9, HasLocation: true},
		{ID: "s2", Lat: 2, Lon: 2, HasLocation: true},
	}
	routeMapping, err := BuildRouteMapping(feed)
	require.NoError(t, err)

	graph := roadgraph.NewGraph(2)
	graph.SetVertex(0, 9, 9)
	graph.SetVertex(1, 2, 2)
	locator := fixedLocator{byCoord: map[[2]float64]int{{9, 9}: 0, {2, 2}: 1}}

	_, meta, err := ImportGTFS(feed, graph, locator, routeMapping, FailOnMissingStop, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.NumEdgesCreated)
}
