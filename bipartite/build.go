// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/biogeo/core"
	"github.com/katalvlaran/biogeo/ingest"
)

// Build constructs the occurrence graph from cleaned records.
//
// Records are expected to be de-duplicated; a repeated (taxon, locality) pair
// is still collapsed onto one edge since presence is boolean. An empty taxon
// or locality fails with core.ErrEmptyVertexID and no graph is returned.
// Edge IDs follow record order, so equal input yields identical graphs.
func Build(records []ingest.Record, opts ...Option) (*Graph, error) {
	o := newOptions(opts)
	g := core.NewGraph()

	for i, r := range records {
		if r.Taxon == "" || r.Locality == "" {
			return nil, fmt.Errorf("%s: record %d (%q, %q): %w",
				methodBuild, i, r.Taxon, r.Locality, core.ErrEmptyVertexID)
		}
		t := core.NodeID(core.PartitionTaxon, r.Taxon)
		l := core.NodeID(core.PartitionLocality, r.Locality)

		if err := g.AddVertex(t, core.WithName(r.Taxon), core.WithPartition(core.PartitionTaxon)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodBuild, t, err)
		}
		if err := g.AddVertex(l, core.WithName(r.Locality), core.WithPartition(core.PartitionLocality)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodBuild, l, err)
		}
		if g.HasEdge(t, l) {
			continue
		}
		if _, err := g.AddEdge(t, l, 0); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s, %s): %w", methodBuild, t, l, err)
		}
	}

	b := wrap(g)
	o.logger.Debug("bipartite graph built",
		zap.Int("taxa", b.TaxonCount()),
		zap.Int("localities", b.LocalityCount()),
		zap.Int("occurrences", b.OccurrenceCount()))

	return b, nil
}
