// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biogeo/core"
)

// triangle returns a frozen weighted triangle A-B-C plus a pendant D on C.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

func TestClone_IsIndependentAndMutable(t *testing.T) {
	g := triangle(t)

	c := g.Clone()
	require.False(t, c.Frozen())
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())

	eid, err := c.AddEdge("A", "D", 1)
	require.NoError(t, err)
	assert.Equal(t, "e5", eid, "clone continues the edge ID sequence")
	assert.False(t, g.HasEdge("A", "D"))

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())
	assert.True(t, empty.Weighted())
}

func TestInducedSubgraph(t *testing.T) {
	g := triangle(t)

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "C": true, "D": true})
	assert.Equal(t, []string{"A", "C", "D"}, sub.Vertices())
	require.Len(t, sub.Edges(), 2)
	assert.True(t, sub.HasEdge("A", "C"))
	assert.True(t, sub.HasEdge("C", "D"))
	assert.False(t, sub.HasVertex("B"))

	// Source untouched.
	assert.Equal(t, 4, g.EdgeCount())
}

func TestFrozenGraph_ConcurrentReads(t *testing.T) {
	g := triangle(t)

	var wg sync.WaitGroup
	degrees := make([]int, 50)
	for i := range degrees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := g.Degree("C")
			if err == nil {
				degrees[i] = d
			}
		}(i)
	}
	wg.Wait()

	for _, d := range degrees {
		assert.Equal(t, 3, d)
	}
}
