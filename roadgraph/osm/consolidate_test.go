package osm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidate_MergesCloseConnectedNodes(t *testing.T) {
	g := NewGraph()
	// Two nodes ~5m apart (well within a 50m tolerance), connected by an edge.
	g.CreateIsolatedNode(Node{ID: 1, Lat: 0, Lon: 0})
	g.CreateIsolatedNode(Node{ID: 2, Lat: 0.00004, Lon: 0}) // ~4.4m north
	g.CreateIsolatedNode(Node{ID: 3, Lat: 0, Lon: 1})       // far away, untouched
	g.AddAdjacency(1, 2, Way{Nodes: []int64{1, 2}})
	g.AddAdjacency(3, 1, Way{Nodes: []int64{3, 1}})
	g.AddAdjacency(2, 3, Way{Nodes: []int64{2, 3}})

	merged, err := Consolidate(g, 50)
	require.NoError(t, err)
	assert.Contains(t, merged, int64(1)) // survivor is the smaller id

	_, stillThere := g.Node(2)
	assert.False(t, stillThere)
}

func TestConsolidate_DoesNotMergeGeometricallyCloseButDisconnectedNodes(t *testing.T) {
	g := NewGraph()
	g.CreateIsolatedNode(Node{ID: 1, Lat: 0, Lon: 0})
	g.CreateIsolatedNode(Node{ID: 2, Lat: 0.00004, Lon: 0})
	g.CreateIsolatedNode(Node{ID: 10, Lat: 5, Lon: 5})
	g.CreateIsolatedNode(Node{ID: 20, Lat: 6, Lon: 6})
	// 1 and 2 are spatially close but belong to unrelated edges, so the
	// spatial cluster {1,2} splits into two singleton sub-clusters.
	g.AddAdjacency(1, 10, Way{Nodes: []int64{1, 10}})
	g.AddAdjacency(2, 20, Way{Nodes: []int64{2, 20}})

	merged, err := Consolidate(g, 50)
	require.NoError(t, err)
	assert.Empty(t, merged)

	_, ok1 := g.Node(1)
	_, ok2 := g.Node(2)
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestConsolidate_EmptyGraphIsNoOp(t *testing.T) {
	g := NewGraph()
	merged, err := Consolidate(g, 50)
	require.NoError(t, err)
	assert.Nil(t, merged)
}
