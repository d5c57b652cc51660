// SPDX-License-Identifier: MIT

// Package ingest turns a flat occurrence table into the cleaned, de-duplicated
// set of (taxon, locality) records that the bipartite builder consumes.
//
// Pipeline:
//
//	Load(ctx, source, cfg)  → []RawRecord   // one-shot read: http(s) URL or local path
//	Clean(raw, opts...)     → []Record      // filter, normalize, de-duplicate
//	Ingest(ctx, source, cfg, opts...)       // both, plus the cleaning Report
//
// Cleaning policy:
//
//   - rows with an empty taxon are dropped;
//   - rows with an empty locality, or a locality containing punctuation, are
//     dropped (punctuation marks an ambiguous or unresolved locality label);
//   - locality text is title-cased and inner whitespace collapsed;
//   - records are de-duplicated on exact (taxon, locality) equality, keeping the
//     first occurrence; presence is boolean.
//
// Every ingestion failure wraps ErrIngestion. Nothing is retried.
package ingest
