// SPDX-License-Identifier: MIT

// Package biogeo derives biogeographic co-occurrence networks from tabular
// fossil or specimen occurrence data.
//
// What is biogeo?
//
//	A small, deterministic pipeline over explicit, immutable graph values:
//		• ingest     – read a CSV/TSV table from a file or URL, clean the rows
//		• bipartite  – taxon–locality occurrence graph, plus verification
//		• projection – one-mode taxon and locality graphs weighted by sharing
//		• stats      – density, diameter, degree distribution, BC
//		• pipeline   – all of the above in one call, configured from YAML
//		• interop    – gonum, DOT and graph6 for rendering and exchange
//
// Shapes:
//
//	  A   B   C          A ─1─ B ─1─ C         X ─1─ Y
//	   \ / \ /
//	    X   Y
//	occurrences       taxon projection     locality projection
//
// core holds the Graph type all of these share; bfs walks it.
// Every graph handed out is frozen, so results may be read from many
// goroutines at once.
package biogeo
