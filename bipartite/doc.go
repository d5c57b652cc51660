// SPDX-License-Identifier: MIT

// Package bipartite builds and verifies the taxon–locality occurrence graph.
//
// Contract:
//   - Build: one taxon vertex per distinct taxon, one locality vertex per
//     distinct locality, one undirected edge per distinct (taxon, locality)
//     record. Vertex IDs come from core.NodeID, so a taxon and a locality
//     sharing a name stay distinct.
//   - Verify: accepts a caller-assembled core.Graph and proves it bipartite
//     with a BFS 2-colouring per component before trusting its tags.
//   - Both return a *Graph wrapping a frozen core.Graph.
//
// Complexity:
//   - Build:  O(R) for R records.
//   - Verify: O(V + E·log d).
package bipartite
