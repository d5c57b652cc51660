// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"
)

// ctxCheckEvery is how many rows ReadTable reads between cancellation checks.
const ctxCheckEvery = 1024

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\uFEFF"

// ReadTable parses a delimited table with a header row and returns one
// RawRecord per data row. Only the configured taxon and locality columns are
// read; cells matching cfg.NullValues come back empty.
//
// Errors (all wrap ErrIngestion): empty input, missing column, ragged row,
// malformed quoting, ctx cancellation.
func ReadTable(ctx context.Context, r io.Reader, cfg Config) ([]RawRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIngestion, err)
	}

	cr := csv.NewReader(r)
	cr.Comma, _ = utf8.DecodeRuneInString(cfg.Delimiter)
	if cfg.Comment != "" {
		cr.Comment, _ = utf8.DecodeRuneInString(cfg.Comment)
	}
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table", ErrIngestion)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrIngestion, err)
	}
	ti, li, err := columnIndices(header, cfg)
	if err != nil {
		return nil, err
	}

	nulls := make(map[string]struct{}, len(cfg.NullValues))
	for _, v := range cfg.NullValues {
		nulls[v] = struct{}{}
	}
	cell := func(v string) string {
		v = strings.TrimSpace(v)
		if _, isNull := nulls[v]; isNull {
			return ""
		}
		return v
	}

	var out []RawRecord
	for n := 0; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrIngestion, err)
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIngestion, err)
		}
		line, _ := cr.FieldPos(0)
		out = append(out, RawRecord{Taxon: cell(row[ti]), Locality: cell(row[li]), Line: line})
	}

	return out, nil
}

// columnIndices locates the taxon and locality headers (case-insensitive).
func columnIndices(header []string, cfg Config) (taxon, locality int, err error) {
	taxon, locality = -1, -1
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		switch {
		case taxon < 0 && strings.EqualFold(h, cfg.TaxonColumn):
			taxon = i
		case locality < 0 && strings.EqualFold(h, cfg.LocalityColumn):
			locality = i
		}
	}
	if taxon < 0 {
		return 0, 0, fmt.Errorf("%w: missing column %q", ErrIngestion, cfg.TaxonColumn)
	}
	if locality < 0 {
		return 0, 0, fmt.Errorf("%w: missing column %q", ErrIngestion, cfg.LocalityColumn)
	}

	return taxon, locality, nil
}

// Load reads the raw table from source: an http(s) URL fetched once, or a
// local file path. The fetch is never retried.
func Load(ctx context.Context, source string, cfg Config) ([]RawRecord, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrIngestion)
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source, cfg)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrIngestion, source, err)
	}
	defer f.Close()

	return ReadTable(ctx, f, cfg)
}

func fetch(ctx context.Context, url string, cfg Config) ([]RawRecord, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: request %q: %w", ErrIngestion, url, err)
	}
	resp, err := cleanhttp.DefaultClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %q: %w", ErrIngestion, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch %q: status %s", ErrIngestion, url, resp.Status)
	}

	return ReadTable(ctx, resp.Body, cfg)
}

// Ingest loads source and cleans it in one step.
func Ingest(ctx context.Context, source string, cfg Config, opts ...Option) ([]Record, Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := Load(ctx, source, cfg)
	if err != nil {
		o.logger.Error("ingestion failed", zap.String("source", source), zap.Error(err))
		return nil, Report{}, err
	}
	recs, rep := Clean(raw, opts...)
	o.logger.Info("occurrences ingested",
		zap.String("source", source),
		zap.Int("rows", rep.Total),
		zap.Int("records", rep.Kept))

	return recs, rep, nil
}
