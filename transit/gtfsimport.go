package transit

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/roadgraph"
)

// MissingStopLocationPolicy controls what ImportGTFS does when a stop (and
// its parent-station fallback) has no usable location (spec §4.6.2).
type MissingStopLocationPolicy int

const (
	// FailOnMissingStop aborts the import with ErrMissingStopLocation.
	FailOnMissingStop MissingStopLocationPolicy = iota
	// SkipTripOnMissingStop drops only the trips touching the unlocated
	// stop, keeping the rest of the feed.
	SkipTripOnMissingStop
)

// VertexLocator resolves a GTFS stop to (or creates) a road-graph vertex.
// Importers of the road network supply the concrete implementation;
// ImportGTFS only depends on this interface so it never needs its own
// spatial index.
type VertexLocator interface {
	// Locate returns the vertex id nearest lat/lon, or ok=false if none
	// exists within whatever tolerance the implementation enforces.
	Locate(lat, lon float64) (vertexID int, ok bool)
}

// FullyQualifiedRouteID composes a GTFS route_id with its owning agency_id
// (spec SUPPLEMENTAL FEATURES, "fully-qualified route ids"): feeds that
// merge multiple agencies' data can reuse route_id across agencies, so the
// pair is what uniquely identifies a route.
type FullyQualifiedRouteID struct {
	AgencyID string
	RouteID  string
}

// BundleMetadata summarizes one ImportGTFS run for diagnostics: counts
// plus the ids of any trips skipped under SkipTripOnMissingStop.
type BundleMetadata struct {
	NumRoutes        int
	NumTrips         int
	NumEdgesCreated  int
	SkippedTripIDs   []string
}

// ImportGTFS builds a TimetableEngine and a transit edge-list on graph
// from a normalized Feed, mapping route identity through routeMapping
// (so labels stay stable across re-imports of the same agency set) and
// resolving stops to vertices via locator (spec §4.6.2-§4.6.3).
func ImportGTFS(
	feed *Feed,
	graph *roadgraph.Graph,
	locator VertexLocator,
	routeMapping *categorical.Mapping,
	policy MissingStopLocationPolicy,
	dateScanSeed int64,
) (*TimetableEngine, BundleMetadata, error) {
	meta := BundleMetadata{NumRoutes: len(feed.Routes), NumTrips: len(feed.Trips)}

	stopsByID := make(map[string]Stop, len(feed.Stops))
	for _, s := range feed.Stops {
		stopsByID[s.ID] = s
	}

	edgeListID := graph.AddEdgeList("transit")
	engine := NewTimetableEngine(dateScanSeed)

	routeByID := make(map[string]Route, len(feed.Routes))
	for _, r := range feed.Routes {
		routeByID[r.ID] = r
	}

	tripsSorted := append([]Trip(nil), feed.Trips...)
	sort.Slice(tripsSorted, func(i, j int) bool { return tripsSorted[i].ID < tripsSorted[j].ID })

	for _, trip := range tripsSorted {
		route, hasRoute := routeByID[trip.RouteID]
		if !hasRoute {
			continue
		}
		fq := route.AgencyID + ":" + route.ID
		routeLabel, known := routeMapping.Label(fq)
		if !known {
			continue // route outside the pre-built mapping's category space
		}

		cal, hasCal := feed.Calendars[trip.ServiceID]
		if hasCal {
			engine.SetDateMapping(routeLabel, cal, DatePolicy{Kind: BestCase, Tolerance: 1})
		}

		stopTimes := feed.StopTimes[trip.ID]
		ok, skipReason := resolveAndLink(stopTimes, stopsByID, locator, graph, edgeListID, routeLabel, engine, policy)
		if !ok {
			if policy == FailOnMissingStop {
				return nil, meta, skipReason
			}
			meta.SkippedTripIDs = append(meta.SkippedTripIDs, trip.ID)
			continue
		}
		meta.NumEdgesCreated += len(stopTimes) - 1
	}

	return engine, meta, nil
}

func resolveAndLink(
	stopTimes []StopTime,
	stopsByID map[string]Stop,
	locator VertexLocator,
	graph *roadgraph.Graph,
	edgeListID int,
	routeLabel int64,
	engine *TimetableEngine,
	policy MissingStopLocationPolicy,
) (bool, error) {
	if len(stopTimes) < 2 {
		return true, nil
	}
	vertices := make([]int, len(stopTimes))
	for i, st := range stopTimes {
		vid, ok := resolveStopVertex(st.StopID, stopsByID, locator)
		if !ok {
			return false, ErrMissingStopLocation
		}
		vertices[i] = vid
	}

	for i := 0; i+1 < len(stopTimes); i++ {
		src, dst := vertices[i], vertices[i+1]
		distance := haversineApprox(graph, src, dst)
		if _, err := graph.AddEdge(edgeListID, src, dst, distance); err != nil {
			return false, err
		}
		edge := EdgeKey{RouteID: routeLabel, Src: src, Dst: dst}
		engine.AddDeparture(edge, Departure{
			SrcDeparture: Timestamp(stopTimes[i].DepartureSeconds),
			DstArrival:   Timestamp(stopTimes[i+1].ArrivalSeconds),
		})
	}
	return true, nil
}

func resolveStopVertex(stopID string, stopsByID map[string]Stop, locator VertexLocator) (int, bool) {
	stop, ok := stopsByID[stopID]
	if !ok {
		return 0, false
	}
	if stop.HasLocation {
		if vid, ok := locator.Locate(stop.Lat, stop.Lon); ok {
			return vid, true
		}
	}
	if stop.ParentStation != "" {
		return resolveStopVertex(stop.ParentStation, stopsByID, locator)
	}
	return 0, false
}

// BuildRouteMapping collects every fully-qualified route id across feed
// (sorted for determinism) into the categorical.Mapping ImportGTFS
// expects, a required first pass since Mapping is immutable once built.
func BuildRouteMapping(feed *Feed) (*categorical.Mapping, error) {
	seen := make(map[string]struct{}, len(feed.Routes))
	fqIDs := make([]string, 0, len(feed.Routes))
	for _, r := range feed.Routes {
		fq := r.AgencyID + ":" + r.ID
		if _, ok := seen[fq]; ok {
			continue
		}
		seen[fq] = struct{}{}
		fqIDs = append(fqIDs, fq)
	}
	sort.Strings(fqIDs)
	return categorical.New(fqIDs)
}

// haversineApprox returns the haversine distance in meters between the two
// vertices, reading each vertex's X/Y as lon/lat (0 if either vertex is
// missing); transit edges are weighted by schedule, not geometry, so
// Distance is advisory here (spec §4.6, transit edges carry no
// travel-time-by-distance model).
func haversineApprox(graph *roadgraph.Graph, src, dst int) float64 {
	sv, sok := graph.Vertex(src)
	dv, dok := graph.Vertex(dst)
	if !sok || !dok {
		return 0
	}
	return geo.Distance(orb.Point{sv.X, sv.Y}, orb.Point{dv.X, dv.Y})
}
