package osm

import (
	"sort"

	"go.uber.org/zap"
)

// isEndpoint classifies id per spec §4.4.1's R1/R2/R3.
func isEndpoint(g *Graph, id int64) bool {
	// R1: self-loop.
	for _, v := range g.forward[id] {
		if v == id {
			return true
		}
	}

	// R2: zero in-degree or zero out-degree.
	in, out := g.InDegree(id), g.OutDegree(id)
	if in == 0 || out == 0 {
		return true
	}

	// R3: not exactly two unique neighbours, or total degree not in {2,4}.
	neighbours := make(map[int64]struct{}, in+out)
	for _, v := range g.forward[id] {
		neighbours[v] = struct{}{}
	}
	for _, u := range g.reverse[id] {
		neighbours[u] = struct{}{}
	}
	total := in + out
	if len(neighbours) != 2 || (total != 2 && total != 4) {
		return true
	}
	return false
}

// Simplify collapses every interstitial node (a node that is not an
// endpoint) into the compound way of its surrounding endpoints, returning
// the simplified Graph in place and the set of endpoint ids. sugar may be
// nil; when non-nil it receives a warning for every path that dead-ends
// before reaching a second endpoint.
func Simplify(g *Graph, sugar *zap.SugaredLogger) (endpoints map[int64]struct{}, err error) {
	endpoints = make(map[int64]struct{})
	for id := range g.nodes {
		if isEndpoint(g, id) {
			endpoints[id] = struct{}{}
		}
	}

	endpointIDs := make([]int64, 0, len(endpoints))
	for id := range endpoints {
		endpointIDs = append(endpointIDs, id)
	}
	sort.Slice(endpointIDs, func(i, j int) bool { return endpointIDs[i] < endpointIDs[j] })

	for _, endpoint := range endpointIDs {
		for _, successor := range append([]int64(nil), g.forward[endpoint]...) {
			if _, isEP := endpoints[successor]; isEP {
				continue // adjacent endpoints need no walk
			}
			path, walkErr := walkPath(g, endpoint, successor, endpoints, sugar)
			if walkErr != nil {
				return nil, walkErr
			}
			collapsePath(g, path)
		}
	}
	return endpoints, nil
}

// walkPath follows the unique forward successor from start (always taking
// the one neighbour not already in the path) until it reaches a node in
// endpoints, implementing spec §4.4.1's edge cases.
func walkPath(g *Graph, endpoint, start int64, endpoints map[int64]struct{}, sugar *zap.SugaredLogger) ([]int64, error) {
	path := []int64{endpoint, start}
	current := start
	for {
		if _, isEP := endpoints[current]; isEP {
			return path, nil
		}
		next := uniqueUnvisitedSuccessor(g, current, path)
		if next == nil {
			if containsSuccessor(g, current, endpoint) {
				return append(path, endpoint), nil
			}
			if sugar != nil {
				sugar.Warnf("osm: simplification stopped early at node %d (dead end)", current)
			}
			return path, nil
		}
		if len(next) > 1 {
			return nil, ErrSimplificationFailed
		}
		path = append(path, next[0])
		current = next[0]
	}
}

func uniqueUnvisitedSuccessor(g *Graph, node int64, visited []int64) []int64 {
	seen := make(map[int64]struct{}, len(visited))
	for _, v := range visited {
		seen[v] = struct{}{}
	}
	var out []int64
	for _, v := range g.forward[node] {
		if _, already := seen[v]; !already {
			out = appendUnique(out, v)
		}
	}
	return out
}

func containsSuccessor(g *Graph, node, target int64) bool {
	for _, v := range g.forward[node] {
		if v == target {
			return true
		}
	}
	return false
}

// collapsePath rewires path[0]->path[len-1] to a single compound way and
// removes the interstitial nodes from the working graph.
func collapsePath(g *Graph, path []int64) {
	if len(path) < 2 {
		return
	}
	start, end := path[0], path[len(path)-1]
	g.AddAdjacency(start, end, Way{Nodes: append([]int64(nil), path...)})
	for _, interior := range path[1 : len(path)-1] {
		g.RemoveNode(interior)
	}
}
