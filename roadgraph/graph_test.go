package roadgraph_test

import (
	"testing"

	"github.com/bambam/bambam/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_SymmetricAdjacency(t *testing.T) {
	g := roadgraph.NewGraph(3)
	walk := g.AddEdgeList("walk")

	edgeID, err := g.AddEdge(walk, 0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, edgeID)

	assert.True(t, g.HasNeighbour(0, 1, roadgraph.Forward))
	assert.True(t, g.HasNeighbour(1, 0, roadgraph.Reverse))
	assert.False(t, g.HasNeighbour(1, 0, roadgraph.Forward))

	assert.ElementsMatch(t, []int{1}, g.Neighbours(0, roadgraph.Forward))
	assert.ElementsMatch(t, []int{0}, g.Neighbours(1, roadgraph.Reverse))
}

func TestAddEdge_DenseEdgeIDsPerEdgeList(t *testing.T) {
	g := roadgraph.NewGraph(4)
	walk := g.AddEdgeList("walk")
	bike := g.AddEdgeList("bike")

	id0, err := g.AddEdge(walk, 0, 1, 5)
	require.NoError(t, err)
	id1, err := g.AddEdge(walk, 1, 2, 5)
	require.NoError(t, err)
	idBike0, err := g.AddEdge(bike, 0, 2, 8)
	require.NoError(t, err)

	assert.Equal(t, 0, id0)
	assert.Equal(t, 1, id1)
	assert.Equal(t, 0, idBike0) // dense per-edge-list, independent counters
}

func TestMultiEdgeCount_CountsParallelEdgesSeparately(t *testing.T) {
	g := roadgraph.NewGraph(2)
	walk := g.AddEdgeList("walk")
	_, err := g.AddEdge(walk, 0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(walk, 0, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, g.MultiEdgeCount(0, roadgraph.Forward))
	assert.Len(t, g.Neighbours(0, roadgraph.Forward), 1) // unique neighbours only
	assert.Len(t, g.Edges(0, 1), 2)
}

func TestConnectedVertexIterator(t *testing.T) {
	g := roadgraph.NewGraph(3) // vertex 2 stays isolated
	walk := g.AddEdgeList("walk")
	_, err := g.AddEdge(walk, 0, 1, 1)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1}, g.ConnectedVertexIterator(false))
	assert.ElementsMatch(t, []int{0, 1, 2}, g.ConnectedVertexIterator(true))
}

func TestAddEdge_UnknownEdgeListOrVertex(t *testing.T) {
	g := roadgraph.NewGraph(2)
	_, err := g.AddEdge(7, 0, 1, 1)
	assert.ErrorIs(t, err, roadgraph.ErrEdgeListNotFound)

	walk := g.AddEdgeList("walk")
	_, err = g.AddEdge(walk, 0, 9, 1)
	assert.ErrorIs(t, err, roadgraph.ErrVertexNotFound)
}
