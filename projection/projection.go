// SPDX-License-Identifier: MIT
//
// File: projection.go
// Role: Project, Taxa, Localities and the concurrent Both.

package projection

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/biogeo/bipartite"
	"github.com/katalvlaran/biogeo/core"
)

var (
	// ErrBadPartition is returned when onto is neither taxon nor locality.
	ErrBadPartition = errors.New("projection: partition must be taxon or locality")

	// ErrGraphNil is returned when a nil bipartite graph is passed.
	ErrGraphNil = errors.New("projection: graph is nil")
)

// Option configures a projection run.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *zap.Logger
}

// WithContext lets a long projection be cancelled. ctx is checked once per
// vertex of the opposite side. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// pair is an unordered vertex pair with a < b.
type pair struct{ a, b string }

// Project returns the one-mode projection of b onto the given side.
//
// Errors: ErrGraphNil, ErrBadPartition, the context error when cancelled
// through WithContext, or a wrapped core error should the input graph be
// inconsistent.
func Project(b *bipartite.Graph, onto core.Partition, opts ...Option) (*core.Graph, error) {
	if b == nil {
		return nil, ErrGraphNil
	}
	if onto != core.PartitionTaxon && onto != core.PartitionLocality {
		return nil, fmt.Errorf("Project(%s): %w", onto, ErrBadPartition)
	}
	o := options{ctx: context.Background(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	src := b.Core()
	out := core.NewGraph(core.WithWeighted())
	for _, id := range b.Side(onto) {
		v, err := src.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("Project(%s): %w", onto, err)
		}
		if err = out.AddVertex(id, core.WithName(v.Name), core.WithPartition(onto)); err != nil {
			return nil, fmt.Errorf("Project(%s): AddVertex(%s): %w", onto, id, err)
		}
	}

	counts := make(map[pair]int64)
	for _, w := range b.Side(onto.Opposite()) {
		if err := o.ctx.Err(); err != nil {
			return nil, fmt.Errorf("Project(%s): %w", onto, err)
		}
		nbrs, err := src.NeighborIDs(w)
		if err != nil {
			return nil, fmt.Errorf("Project(%s): NeighborIDs(%s): %w", onto, w, err)
		}
		// nbrs is sorted, so nbrs[i] < nbrs[j] for i < j.
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				counts[pair{nbrs[i], nbrs[j]}]++
			}
		}
	}

	pairs := make([]pair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	for _, p := range pairs {
		if _, err := out.AddEdge(p.a, p.b, counts[p]); err != nil {
			return nil, fmt.Errorf("Project(%s): AddEdge(%s, %s): %w", onto, p.a, p.b, err)
		}
	}
	out.Freeze()

	o.logger.Debug("projection built",
		zap.Stringer("onto", onto),
		zap.Int("vertices", out.VertexCount()),
		zap.Int("edges", out.EdgeCount()))

	return out, nil
}

// Taxa projects b onto its taxon side.
func Taxa(b *bipartite.Graph, opts ...Option) (*core.Graph, error) {
	return Project(b, core.PartitionTaxon, opts...)
}

// Localities projects b onto its locality side.
func Localities(b *bipartite.Graph, opts ...Option) (*core.Graph, error) {
	return Project(b, core.PartitionLocality, opts...)
}

// Both computes the taxon and locality projections concurrently. Each
// projection observes ctx, so cancellation stops work already in flight.
// On error neither graph is returned.
func Both(ctx context.Context, b *bipartite.Graph, opts ...Option) (taxa, localities *core.Graph, err error) {
	if b == nil {
		return nil, nil, ErrGraphNil
	}
	g, ctx := errgroup.WithContext(ctx)
	opts = append(opts[:len(opts):len(opts)], WithContext(ctx))

	var t, l *core.Graph
	g.Go(func() error {
		var err error
		t, err = Taxa(b, opts...)
		return err
	})
	g.Go(func() error {
		var err error
		l, err = Localities(b, opts...)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return t, l, nil
}
