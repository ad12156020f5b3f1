package osm

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"
)

// metersPerDegreeLat approximates a degree of latitude in meters, used
// only to size the R-tree's broad-phase bounding boxes; the exact overlap
// test below is geodesic (geo.Distance), so this approximation can only
// ever produce false positives that the exact test then rejects.
const metersPerDegreeLat = 111_320.0

// Consolidate merges nodes within r meters of each other that also form a
// connected sub-cluster in the graph (spec §4.4.2). It mutates g in place
// and returns the set of consolidated-node ids that replaced a cluster.
func Consolidate(g *Graph, r float64) (map[int64]struct{}, error) {
	connected := g.ConnectedNodeIterator()
	if len(connected) == 0 {
		return nil, nil
	}

	var tr rtree.RTreeG[int64]
	for _, id := range connected {
		n := g.nodes[id]
		degLat := r / metersPerDegreeLat
		degLon := degLat / cosLatSafe(n.Lat)
		min := [2]float64{n.Lon - degLon, n.Lat - degLat}
		max := [2]float64{n.Lon + degLon, n.Lat + degLat}
		tr.Insert(min, max, id)
	}

	spatialClusters := buildSpatialClusters(g, &tr, connected, r)

	merged := make(map[int64]struct{})
	for _, cluster := range spatialClusters {
		subClusters := connectedSubClusters(g, cluster)

		total := 0
		for _, sc := range subClusters {
			total += len(sc)
		}
		if total != len(cluster) {
			return nil, ErrConsolidationMismatch
		}

		for _, sc := range subClusters {
			if len(sc) < 2 {
				continue
			}
			newID := mergeSubCluster(g, sc)
			merged[newID] = struct{}{}
		}
	}
	return merged, nil
}

// cosLatSafe converts a latitude in degrees to a radians cosine, clamped
// away from zero so degrees-per-longitude sizing near the poles stays
// finite.
func cosLatSafe(latDeg float64) float64 {
	v := math.Cos(latDeg * math.Pi / 180)
	if v < 0.01 {
		return 0.01
	}
	return v
}

// buildSpatialClusters extracts maximal sets of buffers that transitively
// overlap (spec §4.4.2 step 2), iterated in ascending minimum-node-id
// order for determinism (spec §9).
func buildSpatialClusters(g *Graph, tr *rtree.RTreeG[int64], connected []int64, r float64) [][]int64 {
	visited := make(map[int64]bool, len(connected))
	var clusters [][]int64

	for _, seed := range connected {
		if visited[seed] {
			continue
		}
		cluster := []int64{}
		queue := []int64{seed}
		visited[seed] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			cluster = append(cluster, id)

			n := g.nodes[id]
			degLat := (2 * r) / metersPerDegreeLat
			degLon := degLat / cosLatSafe(n.Lat)
			min := [2]float64{n.Lon - degLon, n.Lat - degLat}
			max := [2]float64{n.Lon + degLon, n.Lat + degLat}

			tr.Search(min, max, func(_, _ [2]float64, other int64) bool {
				if visited[other] || other == id {
					return true
				}
				o := g.nodes[other]
				dist := geo.Distance(orb.Point{n.Lon, n.Lat}, orb.Point{o.Lon, o.Lat})
				if dist <= 2*r {
					visited[other] = true
					queue = append(queue, other)
				}
				return true
			})
		}
		sort.Slice(cluster, func(i, j int) bool { return cluster[i] < cluster[j] })
		clusters = append(clusters, cluster)
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })
	return clusters
}

// connectedSubClusters restricts BFS to the graph's own adjacency, within
// the given node set, to avoid merging geometrically close but otherwise
// unrelated nodes (spec §4.4.2 step 3).
func connectedSubClusters(g *Graph, cluster []int64) [][]int64 {
	members := make(map[int64]struct{}, len(cluster))
	for _, id := range cluster {
		members[id] = struct{}{}
	}
	visited := make(map[int64]bool, len(cluster))
	var subClusters [][]int64

	for _, seed := range cluster {
		if visited[seed] {
			continue
		}
		sub := []int64{}
		queue := []int64{seed}
		visited[seed] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			sub = append(sub, id)
			for _, v := range append(append([]int64(nil), g.forward[id]...), g.reverse[id]...) {
				if _, inCluster := members[v]; !inCluster || visited[v] {
					continue
				}
				visited[v] = true
				queue = append(queue, v)
			}
		}
		sort.Slice(sub, func(i, j int) bool { return sub[i] < sub[j] })
		subClusters = append(subClusters, sub)
	}
	return subClusters
}

// mergeSubCluster merges sc into a single node (the smallest id, reused
// per spec §4.4.2 step 4), rewiring external ways and dropping internal
// ones.
func mergeSubCluster(g *Graph, sc []int64) int64 {
	sort.Slice(sc, func(i, j int) bool { return sc[i] < sc[j] })
	survivor := sc[0]
	members := make(map[int64]struct{}, len(sc))
	for _, id := range sc {
		members[id] = struct{}{}
	}

	for _, id := range sc[1:] {
		rewireExternalWays(g, id, survivor, members)
		g.RemoveNode(id)
	}
	return survivor
}

func rewireExternalWays(g *Graph, oldID, newID int64, members map[int64]struct{}) {
	for _, v := range append([]int64(nil), g.forward[oldID]...) {
		if _, internal := members[v]; internal {
			continue // interior way: dropped, not rewired
		}
		for _, way := range g.WaysBetween(oldID, v) {
			rewired := rewireEndpoint(way, oldID, newID, true)
			g.AddAdjacency(newID, v, rewired)
		}
	}
	for _, u := range append([]int64(nil), g.reverse[oldID]...) {
		if _, internal := members[u]; internal {
			continue
		}
		for _, way := range g.WaysBetween(u, oldID) {
			rewired := rewireEndpoint(way, oldID, newID, false)
			g.AddAdjacency(u, newID, rewired)
		}
	}
}

// rewireEndpoint replaces oldID with newID at the appropriate end of
// way's node sequence (first node when atStart, last node otherwise), preserving the
// way's direction (spec §4.4.2 step 4).
func rewireEndpoint(way Way, oldID, newID int64, atStart bool) Way {
	nodes := append([]int64(nil), way.Nodes...)
	if atStart {
		if len(nodes) > 0 && nodes[0] == oldID {
			nodes[0] = newID
		}
	} else {
		if n := len(nodes); n > 0 && nodes[n-1] == oldID {
			nodes[n-1] = newID
		}
	}
	return Way{Nodes: nodes}
}
