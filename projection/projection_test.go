// SPDX-License-Identifier: MIT

package projection_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biogeo/bipartite"
	"github.com/katalvlaran/biogeo/core"
	"github.com/katalvlaran/biogeo/ingest"
	"github.com/katalvlaran/biogeo/projection"
)

func taxon(n string) string    { return core.NodeID(core.PartitionTaxon, n) }
func locality(n string) string { return core.NodeID(core.PartitionLocality, n) }

func build(t *testing.T, recs ...ingest.Record) *bipartite.Graph {
	t.Helper()
	b, err := bipartite.Build(recs)
	require.NoError(t, err)
	return b
}

func worked(t *testing.T) *bipartite.Graph {
	return build(t,
		ingest.Record{Taxon: "A", Locality: "X"},
		ingest.Record{Taxon: "B", Locality: "X"},
		ingest.Record{Taxon: "B", Locality: "Y"},
		ingest.Record{Taxon: "C", Locality: "Y"},
	)
}

func TestProject_WorkedExample(t *testing.T) {
	b := worked(t)

	taxa, err := projection.Taxa(b)
	require.NoError(t, err)
	assert.Equal(t, []string{taxon("A"), taxon("B"), taxon("C")}, taxa.Vertices())
	assert.Equal(t, 2, taxa.EdgeCount())

	w, ok := taxa.Weight(taxon("A"), taxon("B"))
	require.True(t, ok)
	assert.EqualValues(t, 1, w)
	w, ok = taxa.Weight(taxon("B"), taxon("C"))
	require.True(t, ok)
	assert.EqualValues(t, 1, w)
	assert.False(t, taxa.HasEdge(taxon("A"), taxon("C")))

	locs, err := projection.Localities(b)
	require.NoError(t, err)
	assert.Equal(t, []string{locality("X"), locality("Y")}, locs.Vertices())
	w, ok = locs.Weight(locality("X"), locality("Y"))
	require.True(t, ok)
	assert.EqualValues(t, 1, w)
}

func TestProject_OutputShape(t *testing.T) {
	taxa, err := projection.Taxa(worked(t))
	require.NoError(t, err)

	assert.True(t, taxa.Weighted())
	assert.True(t, taxa.Frozen())
	v, err := taxa.Vertex(taxon("B"))
	require.NoError(t, err)
	assert.Equal(t, "B", v.Name)
	assert.Equal(t, core.PartitionTaxon, v.Partition)
	assert.Empty(t, taxa.VerticesIn(core.PartitionLocality))
}

func TestProject_NoSharingLeavesIsolatedVertices(t *testing.T) {
	b := build(t,
		ingest.Record{Taxon: "A", Locality: "X"},
		ingest.Record{Taxon: "B", Locality: "Y"},
		ingest.Record{Taxon: "C", Locality: "Z"},
	)
	taxa, err := projection.Taxa(b)
	require.NoError(t, err)
	assert.Equal(t, 3, taxa.VertexCount())
	assert.Zero(t, taxa.EdgeCount())
}

// TestProject_MatchesBruteForce recomputes every weight as the size of the
// neighbor-set intersection.
func TestProject_MatchesBruteForce(t *testing.T) {
	var recs []ingest.Record
	for i := 0; i < 12; i++ {
		for j := 0; j < 9; j++ {
			if (i*7+j*3)%5 < 2 {
				recs = append(recs, ingest.Record{Taxon: fmt.Sprintf("T%02d", i), Locality: fmt.Sprintf("L%02d", j)})
			}
		}
	}
	b := build(t, recs...)

	for _, onto := range []core.Partition{core.PartitionTaxon, core.PartitionLocality} {
		p, err := projection.Project(b, onto)
		require.NoError(t, err)

		side := b.Side(onto)
		require.Equal(t, side, p.Vertices())
		for i := 0; i < len(side); i++ {
			for j := i + 1; j < len(side); j++ {
				shared := sharedNeighbors(t, b, side[i], side[j])
				w, ok := p.Weight(side[i], side[j])
				if shared == 0 {
					assert.False(t, ok, "%s-%s", side[i], side[j])
					continue
				}
				require.True(t, ok, "%s-%s", side[i], side[j])
				assert.EqualValues(t, shared, w, "%s-%s", side[i], side[j])
			}
		}
	}
}

func sharedNeighbors(t *testing.T, b *bipartite.Graph, u, v string) int {
	t.Helper()
	nu, err := b.Neighbors(u)
	require.NoError(t, err)
	nv, err := b.Neighbors(v)
	require.NoError(t, err)
	set := make(map[string]bool, len(nu))
	for _, id := range nu {
		set[id] = true
	}
	n := 0
	for _, id := range nv {
		if set[id] {
			n++
		}
	}
	return n
}

func TestProject_InputUnchanged(t *testing.T) {
	b := worked(t)
	vBefore, eBefore := b.Core().Vertices(), b.Core().Edges()

	_, _, err := projection.Both(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, vBefore, b.Core().Vertices())
	assert.Equal(t, eBefore, b.Core().Edges())
}

func TestProject_Errors(t *testing.T) {
	_, err := projection.Project(worked(t), core.PartitionNone)
	require.ErrorIs(t, err, projection.ErrBadPartition)

	_, err = projection.Taxa(nil)
	require.ErrorIs(t, err, projection.ErrGraphNil)
}

func TestBoth(t *testing.T) {
	b := worked(t)
	taxa, locs, err := projection.Both(context.Background(), b)
	require.NoError(t, err)

	want, err := projection.Taxa(b)
	require.NoError(t, err)
	assert.Equal(t, want.Edges(), taxa.Edges())
	assert.Equal(t, 2, locs.VertexCount())
}

func TestBoth_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	taxa, locs, err := projection.Both(ctx, worked(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, taxa)
	assert.Nil(t, locs)
}

func TestProject_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := projection.Taxa(worked(t), projection.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, g)

	// Live context: same result as without the option.
	g, err = projection.Localities(worked(t), projection.WithContext(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestProject_CancelledWithNoOppositeSideStillSucceeds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No localities: the pair-counting loop never runs.
	b, err := bipartite.Build(nil)
	require.NoError(t, err)
	g, err := projection.Taxa(b, projection.WithContext(ctx))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}
