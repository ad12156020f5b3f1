package osm

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/bambam/bambam/roadgraph"
)

// Freeze converts the working Graph into a roadgraph.Graph with a single
// edge-list for mode, after simplification/consolidation have already run.
// Node ids are remapped to the dense [0, n) range roadgraph.Graph expects;
// the returned map lets callers translate OSM node ids used elsewhere
// (e.g. GTFS stop map-matching) into the frozen graph's vertex ids.
func Freeze(g *Graph, mode string) (*roadgraph.Graph, map[int64]int) {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	vertexOf := make(map[int64]int, len(ids))
	out := roadgraph.NewGraph(len(ids))
	for i, id := range ids {
		n := g.nodes[id]
		out.SetVertex(i, n.Lon, n.Lat)
		vertexOf[id] = i
	}

	edgeListID := out.AddEdgeList(mode)
	for u, succ := range g.forward {
		for _, v := range succ {
			distance := geo.Distance(orbPoint(g, u), orbPoint(g, v))
			if _, err := out.AddEdge(edgeListID, vertexOf[u], vertexOf[v], distance); err != nil {
				continue // endpoints pruned by consolidation/simplification bookkeeping drift
			}
		}
	}
	return out, vertexOf
}

func orbPoint(g *Graph, id int64) orb.Point {
	n := g.nodes[id]
	return orb.Point{n.Lon, n.Lat}
}

// ConnectedComponents runs an undirected BFS over the working graph and
// returns each component as a sorted slice of node ids, used as a
// diagnostic pre-check (spec SUPPLEMENTAL FEATURES) before consolidation
// to flag extracts that are unexpectedly fragmented.
func ConnectedComponents(g *Graph) [][]int64 {
	visited := make(map[int64]bool, len(g.nodes))
	var components [][]int64
	ids := g.ConnectedNodeIterator()

	for _, seed := range ids {
		if visited[seed] {
			continue
		}
		comp := []int64{}
		queue := []int64{seed}
		visited[seed] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			comp = append(comp, id)
			for _, v := range append(append([]int64(nil), g.forward[id]...), g.reverse[id]...) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}
		return components[i][0] < components[j][0]
	})
	return components
}
