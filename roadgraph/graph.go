package roadgraph

// Graph is the canonical directed multigraph produced by an importer
// (roadgraph/osm or roadgraph/overture): a vertex store plus one EdgeList
// per travel mode, with symmetric forward/reverse adjacency.
//
// Lifecycle: constructed once by an importer, then frozen and handed to the
// search engine read-only (spec §5, "Shared-resource policy").
type Graph struct {
	vertices  []Vertex
	edgeLists []*EdgeList

	forward [][]adjEntry // forward[v] = entries for edges v -> *
	reverse [][]adjEntry // reverse[v] = entries for edges * -> v
}

// NewGraph constructs an empty Graph over nVertices vertices (ids
// [0, nVertices)) and no edge-lists yet.
func NewGraph(nVertices int) *Graph {
	return &Graph{
		vertices: make([]Vertex, nVertices),
		forward:  make([][]adjEntry, nVertices),
		reverse:  make([][]adjEntry, nVertices),
	}
}

// SetVertex assigns coordinates to vertex id. id must be within
// [0, NumVertices()).
func (g *Graph) SetVertex(id int, x, y float64) {
	g.vertices[id].ID = id
	g.vertices[id].X = x
	g.vertices[id].Y = y
}

// Vertex returns vertex id, or (Vertex{}, false) if out of range.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	if id < 0 || id >= len(g.vertices) {
		return Vertex{}, false
	}
	return g.vertices[id], true
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// AddEdgeList creates a new, empty EdgeList for the given mode and returns
// its id.
func (g *Graph) AddEdgeList(mode string) int {
	id := len(g.edgeLists)
	g.edgeLists = append(g.edgeLists, &EdgeList{Mode: mode, id: id})
	return id
}

// EdgeList returns the edge-list with id edgeListID.
func (g *Graph) EdgeList(edgeListID int) (*EdgeList, bool) {
	if edgeListID < 0 || edgeListID >= len(g.edgeLists) {
		return nil, false
	}
	return g.edgeLists[edgeListID], true
}

// EdgeLists returns all edge-lists, in id order.
func (g *Graph) EdgeLists() []*EdgeList { return g.edgeLists }

// AddEdge appends a new directed edge src->dst to edge-list edgeListID,
// maintaining symmetric forward/reverse adjacency (spec §4.3 invariant).
// Returns the new edge's dense EdgeID within its edge-list.
func (g *Graph) AddEdge(edgeListID, src, dst int, distance float64) (int, error) {
	el, ok := g.EdgeList(edgeListID)
	if !ok {
		return 0, ErrEdgeListNotFound
	}
	if src < 0 || src >= len(g.vertices) || dst < 0 || dst >= len(g.vertices) {
		return 0, ErrVertexNotFound
	}

	edgeID := len(el.edges)
	el.edges = append(el.edges, Edge{EdgeListID: edgeListID, EdgeID: edgeID, Src: src, Dst: dst, Distance: distance})

	g.forward[src] = append(g.forward[src], adjEntry{neighbor: dst, edgeListID: edgeListID, edgeID: edgeID})
	g.reverse[dst] = append(g.reverse[dst], adjEntry{neighbor: src, edgeListID: edgeListID, edgeID: edgeID})
	return edgeID, nil
}

// Neighbours returns the distinct neighbour vertex ids reachable from node
// in the given direction.
func (g *Graph) Neighbours(node int, dir Direction) []int {
	entries := g.adjSide(dir)[node]
	seen := make(map[int]struct{}, len(entries))
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.neighbor]; ok {
			continue
		}
		seen[e.neighbor] = struct{}{}
		out = append(out, e.neighbor)
	}
	return out
}

// HasNeighbour reports whether there is at least one edge between u and v
// in the given direction (u -> v for Forward, v -> u for Reverse).
func (g *Graph) HasNeighbour(u, v int, dir Direction) bool {
	for _, e := range g.adjSide(dir)[u] {
		if e.neighbor == v {
			return true
		}
	}
	return false
}

// Edges returns every Edge between ordered pair (u, v) in the Forward
// direction, across all edge-lists (a multigraph may hold several).
func (g *Graph) Edges(u, v int) []Edge {
	var out []Edge
	for _, e := range g.forward[u] {
		if e.neighbor == v {
			el := g.edgeLists[e.edgeListID]
			edge, _ := el.Edge(e.edgeID)
			out = append(out, edge)
		}
	}
	return out
}

// MultiEdgeCount returns the number of incident edges at node in the given
// direction (counting parallel edges separately, unlike Neighbours).
func (g *Graph) MultiEdgeCount(node int, dir Direction) int {
	return len(g.adjSide(dir)[node])
}

func (g *Graph) adjSide(dir Direction) [][]adjEntry {
	if dir == Reverse {
		return g.reverse
	}
	return g.forward
}

// ConnectedVertexIterator returns vertex ids that have at least one incident
// edge (forward or reverse), in ascending id order. When includeUnconnected
// is true, every vertex id is returned instead.
func (g *Graph) ConnectedVertexIterator(includeUnconnected bool) []int {
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		if includeUnconnected || len(g.forward[id]) > 0 || len(g.reverse[id]) > 0 {
			out = append(out, id)
		}
	}
	return out
}
