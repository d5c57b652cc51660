// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/biogeo/core"
)

// Summary gathers the scalar and distributional statistics of one graph.
type Summary struct {
	Vertices     int
	Edges        int
	Components   int
	Density      Measure
	Diameter     DiameterResult
	Distribution []float64
}

// Summarize computes every statistic of g. The only failure for a non-nil
// graph is ErrNotConnected under DiameterStrict.
func Summarize(g *core.Graph, policy DiameterPolicy) (Summary, error) {
	return summarize(context.Background(), g, policy)
}

func summarize(ctx context.Context, g *core.Graph, policy DiameterPolicy) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	_, comps, err := componentsCtx(ctx, g)
	if err != nil {
		return Summary{}, err
	}
	d, err := diameterCtx(ctx, g, policy)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Vertices:     g.VertexCount(),
		Edges:        g.EdgeCount(),
		Components:   len(comps),
		Density:      Density(g),
		Diameter:     d,
		Distribution: DegreeDistribution(g),
	}, nil
}

// SummarizeAll summarizes independent graphs concurrently. The result is
// index-aligned with graphs; on the first error nothing is returned.
func SummarizeAll(ctx context.Context, policy DiameterPolicy, graphs ...*core.Graph) ([]Summary, error) {
	out := make([]Summary, len(graphs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, g := range graphs {
		eg.Go(func() error {
			s, err := summarize(ctx, g, policy)
			if err != nil {
				return fmt.Errorf("SummarizeAll: graph %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
