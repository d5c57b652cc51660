// SPDX-License-Identifier: MIT

// Package pipeline runs the whole occurrence-network workflow:
//
//	source ─ ingest.Ingest ─▶ records ─ bipartite.Build ─▶ occurrence graph
//	                                          │
//	                         projection.Both ─┴─▶ taxon graph, locality graph
//	                                          │
//	                        stats.SummarizeAll ─▶ summaries, BC
//
// A run either completes and returns a Result, or fails and returns nothing.
// Every graph in a Result is frozen and safe to share.
package pipeline
