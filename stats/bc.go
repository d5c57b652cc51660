// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"github.com/katalvlaran/biogeo/bipartite"
	"github.com/katalvlaran/biogeo/core"
)

// BiogeographicConnectedness verifies that g is bipartite and returns its BC.
// See BC for the definition.
//
// Errors: bipartite.ErrNotBipartite, bipartite.ErrGraphNil.
func BiogeographicConnectedness(g *core.Graph) (Measure, error) {
	b, err := bipartite.Verify(g)
	if err != nil {
		return Measure{}, fmt.Errorf("BiogeographicConnectedness: %w", err)
	}

	return BC(b), nil
}

// BC returns (O - N) / (L·N - N) for an already verified occurrence graph,
// where O is the occurrence count, N the taxon count and L the locality count.
//
// The denominator N(L-1) vanishes when there are no taxa or only one
// locality; the result is then not applicable. With taxa but no localities
// (L = 0) the ratio is 1, since every taxon vacuously occurs in every
// locality. The value is not clamped: a result outside [0,1] signals a
// data-quality problem upstream.
func BC(b *bipartite.Graph) Measure {
	if b == nil {
		return Measure{}
	}
	o := float64(b.OccurrenceCount())
	n := float64(b.TaxonCount())
	l := float64(b.LocalityCount())
	den := l*n - n
	if den == 0 {
		return Measure{}
	}

	return applicable((o - n) / den)
}
