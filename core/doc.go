// SPDX-License-Identifier: MIT

// Package core provides the simple undirected Graph that every other biogeo
// package builds on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple: no self-loops, no parallel edges.
//   - Weighted vs. unweighted edges (WithWeighted); weights are int64 counts.
//   - Every vertex carries a Partition tag (none, taxon, locality) and a Name.
//     NodeID(partition, name) derives the stable ID of a tagged vertex.
//   - Deterministic iteration: Vertices(), VerticesIn(), NeighborIDs() are sorted
//     by ID; Edges() is sorted by (From, To).
//   - Freeze-after-build: a graph is mutable while it is assembled; Freeze()
//     turns every later mutation into ErrFrozen. Builders in this module always
//     hand out frozen graphs, so results can be shared across goroutines.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error // O(1)
//	HasVertex(id string) bool                        // O(1)
//	Vertex(id string) (Vertex, error)                // O(1)
//	Degree(id string) (int, error)                   // O(1)
//	NeighborIDs(id string) ([]string, error)         // O(d log d)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	HasEdge(u, v string) bool                                         // O(1)
//	Weight(u, v string) (int64, bool)                                 // O(1)
//	Edges() []Edge                                                    // O(E log E)
//
//	// Snapshots
//	Clone(), CloneEmpty(), InducedSubgraph(g, keep), Stats()
//
// Concurrency: muVert guards vertices, muEdgeAdj guards edges and adjacency;
// lock order is muVert -> muEdgeAdj.
package core
