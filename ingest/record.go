// SPDX-License-Identifier: MIT

package ingest

// RawRecord is one table row before cleaning. Line is the 1-based line
// number in the source (0 when records are built in code).
type RawRecord struct {
	Taxon    string
	Locality string
	Line     int
}

// Record is a cleaned occurrence: both fields non-empty, locality title-cased
// and free of punctuation.
type Record struct {
	Taxon    string
	Locality string
}

// Report counts what Clean did with its input.
// Total = DroppedEmptyTaxon + DroppedEmptyLocality + DroppedAmbiguous + Duplicates + Kept.
type Report struct {
	Total                int
	DroppedEmptyTaxon    int
	DroppedEmptyLocality int
	DroppedAmbiguous     int
	Duplicates           int
	Kept                 int
}
