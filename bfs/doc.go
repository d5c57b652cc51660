// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// A traversal yields a Result: visit order, hop depth and the parent of every
// vertex reachable from the start. Edge weights are ignored; on a one-mode
// projection a weight counts shared neighbors, a similarity rather than a
// length, so every edge is one hop.
//
// Options:
//
//   - WithContext: stop on cancellation (checked once per dequeued vertex).
//   - WithOnVisit: observe each vertex as it is dequeued; an error aborts.
//
// Used by bipartite.Verify (the visit hook 2-colours by depth parity and
// stops at the first odd cycle or tag conflict) and by stats, for components
// and for diameters with their witness paths (Farthest, PathTo).
//
// core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
// so Order is fully reproducible.
package bfs
