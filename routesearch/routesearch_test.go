package routesearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambam/bambam/categorical"
	"github.com/bambam/bambam/roadgraph"
	"github.com/bambam/bambam/routesearch"
	"github.com/bambam/bambam/state"
	"github.com/bambam/bambam/traversal"
)

// chainGraph builds a 4-vertex walk mode chain: 0 -10- 1 -20- 2 -5- 3, plus a
// disconnected vertex 4, so ShortestPath has both a real path to find and an
// unreachable target to reject.
func chainGraph() (*roadgraph.Graph, int) {
	g := roadgraph.NewGraph(5)
	for i := 0; i < 5; i++ {
		g.SetVertex(i, float64(i), 0)
	}
	el := g.AddEdgeList("walk")
	mustEdge(g, el, 0, 1, 10)
	mustEdge(g, el, 1, 2, 20)
	mustEdge(g, el, 2, 3, 5)
	mustEdge(g, el, 0, 2, 100) // longer alternative, should lose to 0->1->2
	return g, el
}

func mustEdge(g *roadgraph.Graph, el, src, dst int, dist float64) {
	if _, err := g.AddEdge(el, src, dst, dist); err != nil {
		panic(err)
	}
}

func TestShortestPath_PrefersCheaperRoute(t *testing.T) {
	g, el := chainGraph()

	path, dist, ok, err := routesearch.ShortestPath(g, el, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.Equal(t, int64(35), dist)
}

func TestShortestPath_UnreachableTargetReportsNotOK(t *testing.T) {
	g, el := chainGraph()

	_, _, ok, err := routesearch.ShortestPath(g, el, 0, 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestShortestPath_DrivesTraversalAccumulation walks the discovered path
// through traversal.Apply edge by edge, confirming the state accumulators
// end up matching the route distance routesearch reported independently.
func TestShortestPath_DrivesTraversalAccumulation(t *testing.T) {
	g, el := chainGraph()

	path, totalDist, ok, err := routesearch.ShortestPath(g, el, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)

	modeMapping, err := categorical.New([]string{"walk"})
	require.NoError(t, err)

	schema, err := state.NewSchema(4, []string{"walk"})
	require.NoError(t, err)
	s := state.New(schema)

	var walked float64
	for i := 0; i+1 < len(path); i++ {
		edges := g.Edges(path[i], path[i+1])
		require.Len(t, edges, 1)
		d := edges[0].Distance
		walked += d

		s.SetEdgeInputs(d, d) // walk mode: time tracks distance 1:1 for this test
		require.NoError(t, traversal.Apply(s, modeMapping, "walk", "", nil))
	}

	assert.Equal(t, float64(totalDist), walked)
	assert.Equal(t, walked, state.GetModeDistance(s, "walk"))

	nLegs := state.GetNLegs(s)
	require.Equal(t, 1, nLegs) // single continuous walk leg, never switched mode
}
