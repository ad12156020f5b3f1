package routesearch

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/bambam/bambam/roadgraph"
)

// pqItem is one frontier entry in the min-heap priority queue.
type pqItem struct {
	vertex int
	dist   float64
}

// priorityQueue is a container/heap min-heap ordered by dist, grounded on
// the corpus's own container/heap-based Dijkstra frontier.
type priorityQueue []pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath computes the minimum-distance path from src to dst within
// one roadgraph.Graph edge-list, using Edge.Distance as a non-negative edge
// weight. ok is false when dst is unreachable from src.
func ShortestPath(g *roadgraph.Graph, edgeListID, src, dst int) (path []int, distance int64, ok bool, err error) {
	el, found := g.EdgeList(edgeListID)
	if !found {
		return nil, 0, false, fmt.Errorf("routesearch: unknown edge list %d", edgeListID)
	}
	if src < 0 || src >= g.NumVertices() || dst < 0 || dst >= g.NumVertices() {
		return nil, 0, false, fmt.Errorf("routesearch: vertex out of range [0,%d)", g.NumVertices())
	}

	adjacency := make(map[int][]roadgraph.Edge, g.NumVertices())
	for i := 0; i < el.Len(); i++ {
		e, _ := el.Edge(i)
		if e.Distance < 0 {
			return nil, 0, false, fmt.Errorf("routesearch: negative edge weight %d->%d", e.Src, e.Dst)
		}
		adjacency[e.Src] = append(adjacency[e.Src], e)
	}

	dist := make([]float64, g.NumVertices())
	prev := make([]int, g.NumVertices())
	visited := make([]bool, g.NumVertices())
	for v := range dist {
		dist[v] = math.Inf(1)
		prev[v] = -1
	}
	dist[src] = 0

	pq := &priorityQueue{{vertex: src, dist: 0}}
	for pq.Len() > 0 {
		u := heap.Pop(pq).(pqItem).vertex
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}
		for _, e := range adjacency[u] {
			if alt := dist[u] + e.Distance; alt < dist[e.Dst] {
				dist[e.Dst] = alt
				prev[e.Dst] = u
				heap.Push(pq, pqItem{vertex: e.Dst, dist: alt})
			}
		}
	}

	if math.IsInf(dist[dst], 1) {
		return nil, 0, false, nil
	}

	var rev []int
	for v := dst; v != -1; v = prev[v] {
		rev = append(rev, v)
		if v == src {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, int64(math.Round(dist[dst])), true, nil
}
