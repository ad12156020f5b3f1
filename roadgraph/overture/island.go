package overture

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/bambam/bambam/roadgraph"
	"github.com/bambam/bambam/workpool"
)

// midpoint returns an edge's geometric midpoint, the reference point
// island detection measures distance-from-start against.
func midpoint(g *roadgraph.Graph, e roadgraph.Edge) orb.Point {
	src, _ := g.Vertex(e.Src)
	dst, _ := g.Vertex(e.Dst)
	return orb.Point{(src.X + dst.X) / 2, (src.Y + dst.Y) / 2}
}

func adjacentEdges(g *roadgraph.Graph, node int) []roadgraph.Edge {
	var out []roadgraph.Edge
	for _, v := range g.Neighbours(node, roadgraph.Forward) {
		out = append(out, g.Edges(node, v)...)
	}
	for _, v := range g.Neighbours(node, roadgraph.Reverse) {
		out = append(out, g.Edges(v, node)...)
	}
	return out
}

// edgeKey identifies one edge within one edge-list for visited-set tracking.
type edgeKey struct{ edgeListID, edgeID int }

func keyOf(e roadgraph.Edge) edgeKey { return edgeKey{e.EdgeListID, e.EdgeID} }

// DetectIslandsSequential implements spec §4.5.3's sequential variant: one
// BFS per unvisited edge, tracking the running max distance from the
// start edge's midpoint; if that maximum stays below threshold for the
// whole component, every edge in it is flagged.
func DetectIslandsSequential(g *roadgraph.Graph, edgeListID int, threshold float64) map[edgeKey]bool {
	el, ok := g.EdgeList(edgeListID)
	if !ok {
		return nil
	}
	visited := make(map[edgeKey]bool, el.Len())
	flagged := make(map[edgeKey]bool)

	for i := 0; i < el.Len(); i++ {
		start, _ := el.Edge(i)
		startKey := keyOf(start)
		if visited[startKey] {
			continue
		}

		startMid := midpoint(g, start)
		component := []roadgraph.Edge{}
		maxDist := 0.0
		queue := []roadgraph.Edge{start}
		visited[startKey] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)
			d := geo.Distance(startMid, midpoint(g, cur))
			if d > maxDist {
				maxDist = d
			}
			for _, next := range adjacentEdges(g, cur.Src) {
				if !visited[keyOf(next)] {
					visited[keyOf(next)] = true
					queue = append(queue, next)
				}
			}
			for _, next := range adjacentEdges(g, cur.Dst) {
				if !visited[keyOf(next)] {
					visited[keyOf(next)] = true
					queue = append(queue, next)
				}
			}
		}

		if maxDist < threshold {
			for _, e := range component {
				flagged[keyOf(e)] = true
			}
		}
	}
	return flagged
}

// DetectIslandsParallel implements spec §4.5.3's parallel variant: each
// edge independently BFSes outward and is flagged if its own search never
// escapes threshold before the queue is exhausted. Each BFS only ever
// reads adjacency, so results are deterministic regardless of scheduling
// (spec §9 "Parallel BFS determinism").
func DetectIslandsParallel(ctx context.Context, g *roadgraph.Graph, edgeListID int, threshold float64) (map[edgeKey]bool, error) {
	el, ok := g.EdgeList(edgeListID)
	if !ok {
		return nil, nil
	}
	all := make([]roadgraph.Edge, 0, el.Len())
	for i := 0; i < el.Len(); i++ {
		e, _ := el.Edge(i)
		all = append(all, e)
	}

	results, err := workpool.Map(ctx, all, func(_ context.Context, start roadgraph.Edge) (bool, error) {
		return bfsStaysWithinThreshold(g, start, threshold), nil
	})
	if err != nil {
		return nil, err
	}

	flagged := make(map[edgeKey]bool)
	for i, isIsland := range results {
		if isIsland {
			flagged[keyOf(all[i])] = true
		}
	}
	return flagged, nil
}

func bfsStaysWithinThreshold(g *roadgraph.Graph, start roadgraph.Edge, threshold float64) bool {
	startMid := midpoint(g, start)
	visited := map[edgeKey]bool{keyOf(start): true}
	queue := []roadgraph.Edge{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if geo.Distance(startMid, midpoint(g, cur)) >= threshold {
			return false
		}
		for _, next := range append(adjacentEdges(g, cur.Src), adjacentEdges(g, cur.Dst)...) {
			if !visited[keyOf(next)] {
				visited[keyOf(next)] = true
				queue = append(queue, next)
			}
		}
	}
	return true
}

// ApplyIslandMask removes every edge in flagged from the geometry, speed
// and class side tables, which it mutates in place; the caller supplies
// them since EdgeList itself carries no such metadata. There is no bearing
// side table, and the graph's edge-list is left unchanged.
func ApplyIslandMask(geometries map[edgeKey][][2]float64, speeds map[edgeKey]float64, classes map[edgeKey]FullType, flagged map[edgeKey]bool) {
	for k := range flagged {
		delete(geometries, k)
		delete(speeds, k)
		delete(classes, k)
	}
}
