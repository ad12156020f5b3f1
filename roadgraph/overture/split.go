package overture

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Split partitions segment into one Edge per (consecutive-connector pair,
// valid heading), per spec §4.5.2. classMeans/globalMean are consulted
// for speed fallback and should come from ComputeMeans over the
// whole edge-list being built.
func Split(segment Segment, access func(AccessQuery) bool, mode string, classMeans map[string]float64, globalMean float64) []Edge {
	if len(segment.Connectors) < 2 {
		return nil
	}
	ordered := append([]SegmentConnector(nil), segment.Connectors...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].At < ordered[j].At })

	var edges []Edge
	for i := 0; i+1 < len(ordered); i++ {
		from, to := ordered[i], ordered[i+1]
		forwardOK := access(AccessQuery{Heading: HeadingForward, Mode: mode})
		backwardOK := access(AccessQuery{Heading: HeadingBackward, Mode: mode})
		if !forwardOK && !backwardOK {
			continue
		}

		geomSlice := subPolyline(segment.Geometry, from.At, to.At)
		distance := haversineLength(geomSlice)
		speed := resolveSpeed(segment, from.At, to.At, classMeans, globalMean)
		fullType := resolveFullType(segment, from.At, to.At)

		if forwardOK {
			edges = append(edges, Edge{
				SegmentID: segment.ID, FromConn: from.ConnectorID, ToConn: to.ConnectorID,
				Distance: distance, Geometry: geomSlice, Speed: speed, Type: fullType,
			})
		}
		if backwardOK {
			edges = append(edges, Edge{
				SegmentID: segment.ID, FromConn: to.ConnectorID, ToConn: from.ConnectorID,
				Backward: true, Distance: distance, Geometry: reversed(geomSlice), Speed: speed, Type: fullType,
			})
		}
	}
	return edges
}

// subPolyline returns the portion of geometry strictly spanning the
// linear-reference range [fromAt,toAt], approximating interior vertex
// placement by proportional index selection (exact interpolation would
// require per-segment length tables this package does not retain).
func subPolyline(geometry [][2]float64, fromAt, toAt float64) [][2]float64 {
	if len(geometry) < 2 {
		return geometry
	}
	n := len(geometry) - 1
	fromIdx := int(fromAt * float64(n))
	toIdx := int(toAt * float64(n))
	if fromIdx < 0 {
		fromIdx = 0
	}
	if toIdx > n {
		toIdx = n
	}
	if fromIdx > toIdx {
		fromIdx, toIdx = toIdx, fromIdx
	}
	return geometry[fromIdx : toIdx+1]
}

func reversed(points [][2]float64) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func haversineLength(points [][2]float64) float64 {
	var total float64
	for i := 0; i+1 < len(points); i++ {
		a := orb.Point{points[i][0], points[i][1]}
		b := orb.Point{points[i+1][0], points[i+1][1]}
		total += geo.Distance(a, b)
	}
	return total
}

// resolveSpeed implements spec §4.5.2's speed fallback chain:
// area-weighted mean of SpeedLimits overlapping [fromAt,toAt], else the
// segment class's mean, else the global mean.
func resolveSpeed(segment Segment, fromAt, toAt float64, classMeans map[string]float64, globalMean float64) float64 {
	var weighted, totalWeight float64
	for _, sl := range segment.SpeedLimits {
		overlap := intervalOverlap(sl.Between, [2]float64{fromAt, toAt})
		if overlap <= 0 || sl.MaxSpeed == nil {
			continue
		}
		weighted += *sl.MaxSpeed * overlap
		totalWeight += overlap
	}
	if totalWeight > 0 {
		return weighted / totalWeight
	}
	if mean, ok := classMeans[segment.Class]; ok {
		return mean
	}
	return globalMean
}

func intervalOverlap(a, b [2]float64) float64 {
	lo := a[0]
	if b[0] > lo {
		lo = b[0]
	}
	hi := a[1]
	if b[1] < hi {
		hi = b[1]
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// resolveFullType implements spec §4.5.2's subclass resolution: the
// segment's own Subclass field if set, else the first SubclassRule whose
// Between interval strictly overlaps [fromAt,toAt].
func resolveFullType(segment Segment, fromAt, toAt float64) FullType {
	if segment.Subclass != "" {
		return FullType{Subtype: segment.Subtype, Class: segment.Class, Subclass: segment.Subclass}
	}
	for _, rule := range segment.SubclassRules {
		if intervalOverlap(rule.Between, [2]float64{fromAt, toAt}) > 0 {
			return FullType{Subtype: segment.Subtype, Class: segment.Class, Subclass: rule.Subclass}
		}
	}
	return FullType{Subtype: segment.Subtype, Class: segment.Class}
}

// ComputeMeans computes the per-class mean and the length-weighted global
// mean of speed_limit.max_speed across edges, the inputs Split's
// classMeans/globalMean parameters expect (spec §4.5.2).
func ComputeMeans(edges []Edge) (classMeans map[string]float64, globalMean float64) {
	classSum := make(map[string]float64)
	classCount := make(map[string]int)
	var weightedSum, totalLength float64

	for _, e := range edges {
		if e.Speed <= 0 {
			continue
		}
		classSum[e.Type.Class] += e.Speed
		classCount[e.Type.Class]++
		weightedSum += e.Speed * e.Distance
		totalLength += e.Distance
	}

	classMeans = make(map[string]float64, len(classSum))
	for class, sum := range classSum {
		classMeans[class] = sum / float64(classCount[class])
	}
	if totalLength > 0 {
		globalMean = weightedSum / totalLength
	}
	return classMeans, globalMean
}
