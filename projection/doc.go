// SPDX-License-Identifier: MIT

// Package projection collapses a bipartite taxon–locality graph onto one of
// its sides.
//
// In the projection onto taxa, two taxa are joined iff they occur at one or
// more common localities, and the edge weight is the number of localities
// they share. The locality projection is symmetric.
//
// Weights are accumulated with a pair counter: every vertex of the opposite
// side contributes +1 to each pair within its sorted neighbor list, so the
// cost is Σ deg(w)² over the opposite side instead of a test of all C(n,2)
// retained pairs.
//
// Every retained vertex appears in the output, isolated or not. Results are
// frozen weighted core.Graphs; the bipartite input is never modified.
package projection
