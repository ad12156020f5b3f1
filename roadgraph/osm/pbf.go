package osm

import (
	"context"
	"fmt"
	"io"

	paulmachosm "github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// ModeAccess evaluates whether a way is usable by one travel mode, and in
// which directions (spec §4.4's road-graph building shares the idea of a
// per-mode allow-list with C5's §4.5.1, restated here over OSM tags rather
// than OvertureMaps access_restrictions).
type ModeAccess func(tags paulmachosm.Tags) (usable bool, forward, backward bool)

// HighwayClass is the side table §4.4 SUPPLEMENTAL FEATURES calls
// "highway classification": a coarse functional class derived from the
// OSM highway tag, carried alongside each way for downstream weighting
// without re-parsing tags at query time.
type HighwayClass string

const (
	ClassMotorway HighwayClass = "motorway"
	ClassTrunk    HighwayClass = "trunk"
	ClassPrimary  HighwayClass = "primary"
	ClassLocal    HighwayClass = "local"
	ClassPath     HighwayClass = "path"
	ClassUnknown  HighwayClass = "unknown"
)

var highwayClassTable = map[string]HighwayClass{
	"motorway": ClassMotorway, "motorway_link": ClassMotorway,
	"trunk": ClassTrunk, "trunk_link": ClassTrunk,
	"primary": ClassPrimary, "primary_link": ClassPrimary,
	"secondary": ClassLocal, "secondary_link": ClassLocal,
	"tertiary": ClassLocal, "tertiary_link": ClassLocal,
	"unclassified": ClassLocal, "residential": ClassLocal, "living_street": ClassLocal, "service": ClassLocal,
	"footway": ClassPath, "path": ClassPath, "pedestrian": ClassPath, "cycleway": ClassPath, "steps": ClassPath,
}

// ClassifyHighway returns the coarse functional class for an OSM highway
// tag value, or ClassUnknown if unrecognized.
func ClassifyHighway(highwayTag string) HighwayClass {
	if c, ok := highwayClassTable[highwayTag]; ok {
		return c
	}
	return ClassUnknown
}

// ParseOptions configures Parse.
type ParseOptions struct {
	Access ModeAccess
}

// Parse performs the two-pass PBF scan (ways then node coordinates, as
// github.com/paulmach/osm/osmpbf streams objects without random access)
// and returns a working Graph ready for Simplify/Consolidate, plus a
// highway-class side table keyed by every directed consecutive node id pair
// (u, v) the way contributes.
func Parse(ctx context.Context, rs io.ReadSeeker, opts ParseOptions) (*Graph, map[[2]int64]HighwayClass, error) {
	type wayInfo struct {
		nodeIDs            []int64
		forward, backward  bool
		class              HighwayClass
	}

	referenced := make(map[int64]struct{})
	var ways []wayInfo

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		w, ok := scanner.Object().(*paulmachosm.Way)
		if !ok {
			continue
		}
		usable, fwd, bwd := opts.Access(w.Tags)
		if !usable || len(w.Nodes) < 2 || (!fwd && !bwd) {
			continue
		}
		nodeIDs := make([]int64, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = int64(wn.ID)
			referenced[int64(wn.ID)] = struct{}{}
		}
		ways = append(ways, wayInfo{
			nodeIDs:  nodeIDs,
			forward:  fwd,
			backward: bwd,
			class:    ClassifyHighway(w.Tags.Find("highway")),
		})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osm: pass 1 (ways): %w", err)
	}
	scanner.Close()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("osm: seek for pass 2: %w", err)
	}

	g := NewGraph()
	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		n, ok := scanner.Object().(*paulmachosm.Node)
		if !ok {
			continue
		}
		id := int64(n.ID)
		if _, needed := referenced[id]; !needed {
			continue
		}
		g.CreateIsolatedNode(Node{ID: id, Lat: n.Lat, Lon: n.Lon})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osm: pass 2 (nodes): %w", err)
	}
	scanner.Close()

	classTable := make(map[[2]int64]HighwayClass, len(ways))
	for _, w := range ways {
		for i := 0; i+1 < len(w.nodeIDs); i++ {
			u, v := w.nodeIDs[i], w.nodeIDs[i+1]
			if _, uOK := g.nodes[u]; !uOK {
				continue
			}
			if _, vOK := g.nodes[v]; !vOK {
				continue
			}
			if w.forward {
				g.AddAdjacency(u, v, Way{Nodes: []int64{u, v}})
				classTable[[2]int64{u, v}] = w.class
			}
			if w.backward {
				g.AddAdjacency(v, u, Way{Nodes: []int64{v, u}})
				classTable[[2]int64{v, u}] = w.class
			}
		}
	}

	return g, classTable, nil
}

// DefaultCarAccess is the car mode-access predicate, grounded on the
// carHighways allow-list and oneway handling convention used by the
// reference OSM importer this package follows.
func DefaultCarAccess(tags paulmachosm.Tags) (usable, forward, backward bool) {
	hw := tags.Find("highway")
	if !carHighways[hw] {
		return false, false, false
	}
	if tags.Find("area") == "yes" {
		return false, false, false
	}
	access := tags.Find("access")
	if access == "no" || access == "private" {
		return false, false, false
	}
	if tags.Find("motor_vehicle") == "no" {
		return false, false, false
	}

	forward, backward = true, true
	if hw == "motorway" || hw == "motorway_link" || tags.Find("junction") == "roundabout" {
		backward = false
	}
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		forward, backward = true, false
	case "-1", "reverse":
		forward, backward = false, true
	case "no":
		forward, backward = true, true
	case "reversible":
		forward, backward = false, false
	}
	return true, forward, backward
}

var carHighways = map[string]bool{
	"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "unclassified": true, "residential": true,
	"living_street": true, "service": true,
}

// DefaultWalkAccess allows any highway value listed in the classification
// table except motorway/motorway_link (highway values outside the table are
// rejected), unless foot=no, always bidirectional (sidewalks carry no
// meaningful oneway semantics for accessibility routing).
func DefaultWalkAccess(tags paulmachosm.Tags) (usable, forward, backward bool) {
	hw := tags.Find("highway")
	if hw == "motorway" || hw == "motorway_link" {
		return false, false, false
	}
	if tags.Find("foot") == "no" {
		return false, false, false
	}
	if _, known := highwayClassTable[hw]; !known {
		return false, false, false
	}
	return true, true, true
}
