// SPDX-License-Identifier: MIT

// Package stats computes summary statistics over frozen graph snapshots.
//
// Every function is pure: it reads a core.Graph and returns a value or a
// mapping, never attaching anything to the graph. Statistics that are
// mathematically undefined for the given input (density of a single vertex,
// BC with a zero denominator) are returned as a Measure with Applicable set
// to false rather than as an error.
//
//	Density(g)                      |E| / (n(n-1)/2)
//	Diameter(g, policy)             longest shortest path in hops
//	DegreeDistribution(g)           P(k) for k = 0..max degree
//	BiogeographicConnectedness(g)   (O - N) / (L·N - N) on a bipartite graph
//	DegreeCentrality, Strength, Components
//
// Diameter ignores edge weights: projection weights count shared neighbors,
// a similarity rather than a distance.
package stats
