// SPDX-License-Identifier: MIT

package bipartite

import "github.com/katalvlaran/biogeo/core"

// Graph is a verified, frozen taxon–locality graph. Every edge joins a
// PartitionTaxon vertex to a PartitionLocality vertex.
type Graph struct {
	g          *core.Graph
	taxa       []string
	localities []string
}

// wrap freezes g and caches its partitions. g must already be verified.
func wrap(g *core.Graph) *Graph {
	g.Freeze()

	return &Graph{
		g:          g,
		taxa:       g.VerticesIn(core.PartitionTaxon),
		localities: g.VerticesIn(core.PartitionLocality),
	}
}

// Core returns the underlying frozen graph.
func (b *Graph) Core() *core.Graph { return b.g }

// Taxa returns the taxon vertex IDs, sorted.
func (b *Graph) Taxa() []string { return append([]string(nil), b.taxa...) }

// Localities returns the locality vertex IDs, sorted.
func (b *Graph) Localities() []string { return append([]string(nil), b.localities...) }

// Side returns the vertex IDs of partition p, sorted; nil for PartitionNone.
func (b *Graph) Side(p core.Partition) []string {
	switch p {
	case core.PartitionTaxon:
		return b.Taxa()
	case core.PartitionLocality:
		return b.Localities()
	default:
		return nil
	}
}

// TaxonCount returns N, the number of taxon vertices.
func (b *Graph) TaxonCount() int { return len(b.taxa) }

// LocalityCount returns L, the number of locality vertices.
func (b *Graph) LocalityCount() int { return len(b.localities) }

// OccurrenceCount returns O, the number of taxon–locality edges.
func (b *Graph) OccurrenceCount() int { return b.g.EdgeCount() }

// Neighbors returns the sorted opposite-partition neighbors of id.
func (b *Graph) Neighbors(id string) ([]string, error) { return b.g.NeighborIDs(id) }
