// SPDX-License-Identifier: MIT

package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/biogeo/ingest"
)

func TestClean_FiltersNormalizesDeduplicates(t *testing.T) {
	raw := []ingest.RawRecord{
		{Taxon: "Tyrannosaurus rex", Locality: "HELL CREEK", Line: 2},
		{Taxon: "Tyrannosaurus rex", Locality: "hell  creek", Line: 3}, // duplicate after normalization
		{Taxon: "Triceratops", Locality: "Hell Creek", Line: 4},
		{Taxon: "Triceratops", Locality: "", Line: 5},                 // empty locality
		{Taxon: "Edmontosaurus", Locality: "Lance/Hell Creek", Line: 6}, // ambiguous
		{Taxon: "Edmontosaurus", Locality: "Lance (?)", Line: 7},        // ambiguous
		{Taxon: "  ", Locality: "Lance", Line: 8},                      // empty taxon
		{Taxon: "Edmontosaurus", Locality: "lance", Line: 9},
	}

	recs, rep := ingest.Clean(raw)

	assert.Equal(t, []ingest.Record{
		{Taxon: "Tyrannosaurus rex", Locality: "Hell Creek"},
		{Taxon: "Triceratops", Locality: "Hell Creek"},
		{Taxon: "Edmontosaurus", Locality: "Lance"},
	}, recs)
	assert.Equal(t, ingest.Report{
		Total:                8,
		DroppedEmptyTaxon:    1,
		DroppedEmptyLocality: 1,
		DroppedAmbiguous:     2,
		Duplicates:           1,
		Kept:                 3,
	}, rep)
	assert.Equal(t, rep.Total,
		rep.DroppedEmptyTaxon+rep.DroppedEmptyLocality+rep.DroppedAmbiguous+rep.Duplicates+rep.Kept)
}

func TestClean_NeverEmitsEmptyFields(t *testing.T) {
	raw := []ingest.RawRecord{{Taxon: "A", Locality: ""}, {Taxon: "", Locality: "X"}, {Taxon: "\t", Locality: " "}}

	recs, rep := ingest.Clean(raw)
	assert.Empty(t, recs)
	assert.Zero(t, rep.Kept)
}

func TestClean_IsIdempotent(t *testing.T) {
	raw := []ingest.RawRecord{{Taxon: "A", Locality: "x"}, {Taxon: "B", Locality: "X"}, {Taxon: "B", Locality: "y"}}

	first, _ := ingest.Clean(raw)
	second, _ := ingest.Clean(raw)
	assert.Equal(t, first, second)

	// Cleaning clean data changes nothing.
	again := make([]ingest.RawRecord, len(first))
	for i, r := range first {
		again[i] = ingest.RawRecord{Taxon: r.Taxon, Locality: r.Locality}
	}
	third, rep := ingest.Clean(again)
	assert.Equal(t, first, third)
	assert.Zero(t, rep.Duplicates)
}

func TestAmbiguous(t *testing.T) {
	for loc, want := range map[string]bool{
		"Hell Creek":      false,
		"Morrison":        false,
		"Two-Medicine":    true,
		"Lance?":          true,
		"Kirtland, Fruit": true,
		"Dinosaur Park +": true,
		"Judith «River»":  true,
	} {
		assert.Equal(t, want, ingest.Ambiguous(loc), loc)
	}
}

func TestClean_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	raw := []ingest.RawRecord{{Taxon: "A", Locality: "X?"}, {Taxon: "A", Locality: "Y"}}

	_, _ = ingest.Clean(raw, ingest.WithLogger(zap.New(core)), ingest.WithLogger(nil))

	require.Equal(t, 1, logs.FilterMessage("dropping ambiguous locality").Len())
	summary := logs.FilterMessage("occurrence records cleaned").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 1, summary[0].ContextMap()["kept"])
}
