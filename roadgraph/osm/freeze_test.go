package osm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambam/bambam/roadgraph"
)

func TestFreeze_PreservesReachability(t *testing.T) {
	g := NewGraph()
	g.CreateIsolatedNode(Node{ID: 1, Lat: 0, Lon: 0})
	g.CreateIsolatedNode(Node{ID: 2, Lat: 0, Lon: 1})
	g.CreateIsolatedNode(Node{ID: 3, Lat: 0, Lon: 2})
	g.AddAdjacency(1, 2, Way{Nodes: []int64{1, 2}})
	g.AddAdjacency(2, 3, Way{Nodes: []int64{2, 3}})

	frozen, vertexOf := Freeze(g, "drive")
	require.Equal(t, 3, frozen.NumVertices())

	v1, v2, v3 := vertexOf[1], vertexOf[2], vertexOf[3]
	assert.True(t, frozen.HasNeighbour(v1, v2, roadgraph.Forward))
	assert.True(t, frozen.HasNeighbour(v2, v3, roadgraph.Forward))
	assert.False(t, frozen.HasNeighbour(v1, v3, roadgraph.Forward)) // no direct edge
}

func TestFreeze_SymmetricAdjacency(t *testing.T) {
	g := NewGraph()
	g.CreateIsolatedNode(Node{ID: 1, Lat: 0, Lon: 0})
	g.CreateIsolatedNode(Node{ID: 2, Lat: 0, Lon: 1})
	g.AddAdjacency(1, 2, Way{Nodes: []int64{1, 2}})

	frozen, vertexOf := Freeze(g, "drive")
	assert.True(t, frozen.HasNeighbour(vertexOf[1], vertexOf[2], roadgraph.Forward))
	assert.True(t, frozen.HasNeighbour(vertexOf[2], vertexOf[1], roadgraph.Reverse))
}

func TestConnectedComponents_SeparatesDisjointSubgraphs(t *testing.T) {
	g := NewGraph()
	g.CreateIsolatedNode(Node{ID: 1})
	g.CreateIsolatedNode(Node{ID: 2})
	g.CreateIsolatedNode(Node{ID: 10})
	g.CreateIsolatedNode(Node{ID: 11})
	g.AddAdjacency(1, 2, Way{Nodes: []int64{1, 2}})
	g.AddAdjacency(10, 11, Way{Nodes: []int64{10, 11}})

	comps := ConnectedComponents(g)
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []int64{1, 2}, comps[0])
	assert.ElementsMatch(t, []int64{10, 11}, comps[1])
}
