// SPDX-License-Identifier: MIT

package bipartite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biogeo/bipartite"
	"github.com/katalvlaran/biogeo/core"
)

func tagged(t *testing.T, g *core.Graph, id string, p core.Partition) {
	t.Helper()
	require.NoError(t, g.AddVertex(id, core.WithPartition(p)))
}

func edges(t *testing.T, g *core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
}

func TestVerify_AcceptsBuiltGraph(t *testing.T) {
	b, err := bipartite.Build(worked())
	require.NoError(t, err)

	v, err := bipartite.Verify(b.Core())
	require.NoError(t, err)
	assert.Equal(t, b.Taxa(), v.Taxa())
	assert.Equal(t, b.Localities(), v.Localities())
}

func TestVerify_InfersUntaggedFromColouring(t *testing.T) {
	g := core.NewGraph()
	tagged(t, g, "a", core.PartitionTaxon)
	edges(t, g, [2]string{"a", "x"}, [2]string{"x", "b"}, [2]string{"b", "y"})

	v, err := bipartite.Verify(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Taxa())
	assert.Equal(t, []string{"x", "y"}, v.Localities())

	// Input left untouched.
	x, err := g.Vertex("x")
	require.NoError(t, err)
	assert.Equal(t, core.PartitionNone, x.Partition)
	assert.False(t, g.Frozen())
	assert.True(t, v.Core().Frozen())
}

func TestVerify_Rejects(t *testing.T) {
	tests := map[string]func(t *testing.T) *core.Graph{
		"odd cycle": func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			tagged(t, g, "a", core.PartitionTaxon)
			edges(t, g, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
			return g
		},
		"same partition edge": func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			tagged(t, g, "a", core.PartitionTaxon)
			tagged(t, g, "b", core.PartitionTaxon)
			edges(t, g, [2]string{"a", "b"})
			return g
		},
		"tags against colouring": func(t *testing.T) *core.Graph {
			// a - x - b is a valid path, but a and b sit on the same colour
			// while carrying different tags.
			g := core.NewGraph()
			tagged(t, g, "a", core.PartitionTaxon)
			tagged(t, g, "b", core.PartitionLocality)
			edges(t, g, [2]string{"a", "x"}, [2]string{"x", "b"})
			return g
		},
		"untagged component": func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			tagged(t, g, "a", core.PartitionTaxon)
			tagged(t, g, "x", core.PartitionLocality)
			edges(t, g, [2]string{"a", "x"}, [2]string{"p", "q"})
			return g
		},
	}
	for name, mk := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := bipartite.Verify(mk(t))
			require.ErrorIs(t, err, bipartite.ErrNotBipartite)
		})
	}
}

func TestVerify_StopsAtFirstOddCycle(t *testing.T) {
	g := core.NewGraph()
	tagged(t, g, "a", core.PartitionTaxon)
	edges(t, g, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}, [2]string{"c", "d"})

	_, err := bipartite.Verify(g)
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)
	assert.Contains(t, err.Error(), "odd cycle through b-c")
}

func TestVerify_NilAndEmpty(t *testing.T) {
	_, err := bipartite.Verify(nil)
	require.ErrorIs(t, err, bipartite.ErrGraphNil)

	v, err := bipartite.Verify(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, v.TaxonCount())
	assert.Zero(t, v.LocalityCount())
}

func TestVerify_IsolatedTaggedVertex(t *testing.T) {
	g := core.NewGraph()
	tagged(t, g, "lonely", core.PartitionLocality)

	v, err := bipartite.Verify(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"lonely"}, v.Localities())
	assert.Empty(t, v.Taxa())
}
