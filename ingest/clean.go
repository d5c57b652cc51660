// SPDX-License-Identifier: MIT

package ingest

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// posixPunct is the ASCII [:punct:] class; unicode.IsPunct alone misses the
// symbol half of it ($+<=>^`|~).
const posixPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Option configures Clean and Ingest.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger routes cleaning diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Clean filters, normalizes and de-duplicates raw rows.
// Output order is the order of first occurrence. raw is not modified.
//
// Complexity: O(total input length).
func Clean(raw []RawRecord, opts ...Option) ([]Record, Report) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Caser carries state and is not safe for concurrent use: one per call.
	title := cases.Title(language.Und)
	seen := make(map[Record]struct{}, len(raw))
	out := make([]Record, 0, len(raw))
	rep := Report{Total: len(raw)}

	for _, r := range raw {
		taxon := collapseSpace(r.Taxon)
		if taxon == "" {
			rep.DroppedEmptyTaxon++
			continue
		}
		locality := collapseSpace(r.Locality)
		if locality == "" {
			rep.DroppedEmptyLocality++
			continue
		}
		if Ambiguous(locality) {
			rep.DroppedAmbiguous++
			o.logger.Debug("dropping ambiguous locality",
				zap.String("locality", locality), zap.Int("line", r.Line))
			continue
		}

		rec := Record{Taxon: taxon, Locality: title.String(locality)}
		if _, dup := seen[rec]; dup {
			rep.Duplicates++
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}
	rep.Kept = len(out)

	o.logger.Debug("occurrence records cleaned",
		zap.Int("total", rep.Total),
		zap.Int("kept", rep.Kept),
		zap.Int("empty_taxon", rep.DroppedEmptyTaxon),
		zap.Int("empty_locality", rep.DroppedEmptyLocality),
		zap.Int("ambiguous", rep.DroppedAmbiguous),
		zap.Int("duplicates", rep.Duplicates))

	return out, rep
}

// Ambiguous reports whether a locality label contains a punctuation mark.
func Ambiguous(locality string) bool {
	return strings.IndexFunc(locality, func(r rune) bool {
		return unicode.IsPunct(r) || (r < unicode.MaxASCII && strings.ContainsRune(posixPunct, r))
	}) >= 0
}

// collapseSpace trims s and folds inner whitespace runs into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
