// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: Run and FromRecords; wiring of ingest, bipartite, projection and stats.

package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/biogeo/bipartite"
	"github.com/katalvlaran/biogeo/core"
	"github.com/katalvlaran/biogeo/ingest"
	"github.com/katalvlaran/biogeo/projection"
	"github.com/katalvlaran/biogeo/stats"
)

// Option configures a run.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes diagnostics of every stage to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Summaries holds one stats.Summary per graph of a run.
type Summaries struct {
	Bipartite  stats.Summary
	Taxa       stats.Summary
	Localities stats.Summary
}

// Result is everything a run produces.
type Result struct {
	Records []ingest.Record
	Report  ingest.Report

	Bipartite  *bipartite.Graph
	Taxa       *core.Graph
	Localities *core.Graph

	Summaries Summaries
	BC        stats.Measure

	// TaxonCentrality and LocalityCentrality map projection vertices to
	// their degree centrality.
	TaxonCentrality    map[string]float64
	LocalityCentrality map[string]float64
}

// Run ingests source and derives every graph and statistic.
func Run(ctx context.Context, source string, cfg Config, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	policy, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	recs, rep, err := ingest.Ingest(ctx, source, cfg.Ingest, ingest.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return derive(ctx, recs, rep, policy, o)
}

// FromRecords runs every stage after loading on rows the caller already holds.
func FromRecords(ctx context.Context, raw []ingest.RawRecord, cfg Config, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	policy, err := prepare(cfg)
	if err != nil {
		return nil, err
	}
	recs, rep := ingest.Clean(raw, ingest.WithLogger(o.logger))

	return derive(ctx, recs, rep, policy, o)
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func prepare(cfg Config) (stats.DiameterPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	return cfg.Policy()
}

func derive(ctx context.Context, recs []ingest.Record, rep ingest.Report, policy stats.DiameterPolicy, o options) (*Result, error) {
	b, err := bipartite.Build(recs, bipartite.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	taxa, locs, err := projection.Both(ctx, b, projection.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}
	sums, err := stats.SummarizeAll(ctx, policy, b.Core(), taxa, locs)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Records:    recs,
		Report:     rep,
		Bipartite:  b,
		Taxa:       taxa,
		Localities: locs,
		Summaries: Summaries{
			Bipartite:  sums[0],
			Taxa:       sums[1],
			Localities: sums[2],
		},
		BC:                 stats.BC(b),
		TaxonCentrality:    stats.DegreeCentrality(taxa),
		LocalityCentrality: stats.DegreeCentrality(locs),
	}
	o.logger.Info("occurrence networks derived",
		zap.Int("records", len(recs)),
		zap.Int("taxa", b.TaxonCount()),
		zap.Int("localities", b.LocalityCount()),
		zap.Int("taxon_links", taxa.EdgeCount()),
		zap.Int("locality_links", locs.EdgeCount()),
		zap.Stringer("bc", res.BC))

	return res, nil
}
