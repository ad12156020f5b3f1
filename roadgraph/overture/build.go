package overture

import (
	"context"
	"sort"

	"github.com/bambam/bambam/roadgraph"
)

// BuildResult is what Build hands back: the frozen graph plus the side
// tables island masking and downstream lookups need, keyed by the same
// edgeKey island detection and ApplyIslandMask use.
type BuildResult struct {
	Graph      *roadgraph.Graph
	EdgeListID int
	Geometries map[edgeKey][][2]float64
	Speeds     map[edgeKey]float64
	Types      map[edgeKey]FullType
}

// Build assembles segments and connectors into a roadgraph.Graph for one
// travel mode (spec §4.5.2-§4.5.3): a shared vertex table is built from
// every referenced connector, with any connector id a split references
// but that the connector parquet dataset never shipped appended as a
// synthetic vertex at the segment's own coordinate; every segment is then
// split into edges, and edges flagged as islands below threshold have their
// geometry/speed/type entries dropped from the returned side tables. The
// flagged edges themselves stay in the graph's edge-list.
func Build(ctx context.Context, segments []Segment, connectors []Connector, mode string, access func(AccessQuery) bool, islandThreshold float64, useParallelIslands bool) (*BuildResult, error) {
	sortedSegments := append([]Segment(nil), segments...)
	sort.Slice(sortedSegments, func(i, j int) bool { return sortedSegments[i].ID < sortedSegments[j].ID })

	var allEdgesForMeans []Edge
	for _, seg := range sortedSegments {
		allEdgesForMeans = append(allEdgesForMeans, Split(seg, access, mode, nil, 0)...)
	}
	classMeans, globalMean := ComputeMeans(allEdgesForMeans)

	vertexOf := make(map[string]int, len(connectors))
	coordOf := make(map[string][2]float64, len(connectors))
	for _, c := range connectors {
		coordOf[c.ID] = [2]float64{c.Lon, c.Lat}
	}
	for _, seg := range sortedSegments {
		for _, sc := range seg.Connectors {
			if _, known := coordOf[sc.ConnectorID]; !known {
				coordOf[sc.ConnectorID] = nearestGeometryPoint(seg, sc.At)
			}
		}
	}

	ids := make([]string, 0, len(coordOf))
	for id := range coordOf {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := roadgraph.NewGraph(len(ids))
	for i, id := range ids {
		xy := coordOf[id]
		g.SetVertex(i, xy[0], xy[1])
		vertexOf[id] = i
	}

	edgeListID := g.AddEdgeList(mode)
	geometries := make(map[edgeKey][][2]float64)
	speeds := make(map[edgeKey]float64)
	types := make(map[edgeKey]FullType)

	for _, seg := range sortedSegments {
		for _, e := range Split(seg, access, mode, classMeans, globalMean) {
			fromV, fromOK := vertexOf[e.FromConn]
			toV, toOK := vertexOf[e.ToConn]
			if !fromOK || !toOK {
				continue
			}
			edgeID, err := g.AddEdge(edgeListID, fromV, toV, e.Distance)
			if err != nil {
				continue
			}
			k := edgeKey{edgeListID, edgeID}
			geometries[k] = e.Geometry
			speeds[k] = e.Speed
			types[k] = e.Type
		}
	}

	var flagged map[edgeKey]bool
	if useParallelIslands {
		var err error
		flagged, err = DetectIslandsParallel(ctx, g, edgeListID, islandThreshold)
		if err != nil {
			return nil, err
		}
	} else {
		flagged = DetectIslandsSequential(g, edgeListID, islandThreshold)
	}
	ApplyIslandMask(geometries, speeds, types, flagged)

	return &BuildResult{Graph: g, EdgeListID: edgeListID, Geometries: geometries, Speeds: speeds, Types: types}, nil
}

// nearestGeometryPoint approximates the coordinate of a connector that
// has no entry in the connector dataset by proportional index selection
// into the segment's own polyline, the same approximation Split's
// subPolyline uses.
func nearestGeometryPoint(seg Segment, at float64) [2]float64 {
	if len(seg.Geometry) == 0 {
		return [2]float64{0, 0}
	}
	idx := int(at * float64(len(seg.Geometry)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(seg.Geometry) {
		idx = len(seg.Geometry) - 1
	}
	return seg.Geometry[idx]
}
