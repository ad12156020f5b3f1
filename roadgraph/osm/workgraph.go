package osm

import "sort"

// Node is a working-graph vertex, identified by its OSM node id.
type Node struct {
	ID       int64
	Lat, Lon float64
}

// Way is a sequence of node ids forming one directed traversal (spec
// §4.3/§4.4: a simplified way aggregates what were originally several
// consecutive OSM ways between interstitial nodes).
type Way struct {
	Nodes []int64
}

// Graph is the mutable working graph simplification and consolidation
// operate on (spec §4.3 public surface, restated over OSM node ids rather
// than the canonical Graph's dense vertex indices). It is converted to a
// roadgraph.Graph only after both passes complete.
type Graph struct {
	nodes    map[int64]Node
	forward  map[int64][]int64 // node -> successor node ids (one entry per distinct successor)
	reverse  map[int64][]int64
	ways     map[[2]int64][]Way // (u,v) -> ways whose first/last node pair is (u,v), direction u->v
}

// NewGraph returns an empty working graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[int64]Node),
		forward: make(map[int64][]int64),
		reverse: make(map[int64][]int64),
		ways:    make(map[[2]int64][]Way),
	}
}

// CreateIsolatedNode adds n with no adjacency, or replaces its coordinates
// if already present.
func (g *Graph) CreateIsolatedNode(n Node) {
	g.nodes[n.ID] = n
	if _, ok := g.forward[n.ID]; !ok {
		g.forward[n.ID] = nil
		g.reverse[n.ID] = nil
	}
}

// AddAdjacency records a directed u->v traversal carried by way, keeping
// forward/reverse symmetric (spec §4.3 invariant).
func (g *Graph) AddAdjacency(u, v int64, way Way) {
	g.forward[u] = appendUnique(g.forward[u], v)
	g.reverse[v] = appendUnique(g.reverse[v], u)
	key := [2]int64{u, v}
	g.ways[key] = append(g.ways[key], way)
}

// ReplaceWays replaces every way currently stored between (u,v) with ways,
// used when consolidation rewires an endpoint onto a new node id.
func (g *Graph) ReplaceWays(u, v int64, ways []Way) {
	g.ways[[2]int64{u, v}] = ways
}

// WaysBetween returns every way stored for the directed pair (u,v).
func (g *Graph) WaysBetween(u, v int64) []Way {
	return g.ways[[2]int64{u, v}]
}

// Neighbours returns node ids adjacent to id in the given direction.
func (g *Graph) Neighbours(id int64, forward bool) []int64 {
	if forward {
		return g.forward[id]
	}
	return g.reverse[id]
}

// InDegree and OutDegree count distinct neighbours (spec §4.4.1 uses
// total in+out degree to classify endpoints).
func (g *Graph) InDegree(id int64) int  { return len(g.reverse[id]) }
func (g *Graph) OutDegree(id int64) int { return len(g.forward[id]) }

// DisconnectNode removes every adjacency touching id, optionally also
// deleting the node itself.
func (g *Graph) DisconnectNode(id int64, remove bool) {
	for _, v := range g.forward[id] {
		g.reverse[v] = removeValue(g.reverse[v], id)
		delete(g.ways, [2]int64{id, v})
	}
	for _, u := range g.reverse[id] {
		g.forward[u] = removeValue(g.forward[u], id)
		delete(g.ways, [2]int64{u, id})
	}
	g.forward[id] = nil
	g.reverse[id] = nil
	if remove {
		delete(g.nodes, id)
		delete(g.forward, id)
		delete(g.reverse, id)
	}
}

// RemoveNode is DisconnectNode(id, true).
func (g *Graph) RemoveNode(id int64) { g.DisconnectNode(id, true) }

// Node returns the node with id, if present.
func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// ConnectedNodeIterator returns node ids with at least one incident edge,
// in ascending id order (spec §3 "connected_node_iterator", and §9
// "sort order by minimum node id" for deterministic cluster iteration).
func (g *Graph) ConnectedNodeIterator() []int64 {
	out := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		if len(g.forward[id]) > 0 || len(g.reverse[id]) > 0 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func appendUnique(list []int64, v int64) []int64 {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func removeValue(list []int64, v int64) []int64 {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
