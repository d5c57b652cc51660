// SPDX-License-Identifier: MIT

// Package interop hands biogeo graphs to external collaborators.
//
// Rendering and further analysis live outside this module. ToGonum exposes a
// graph to the gonum ecosystem; MarshalDOT produces Graphviz input with the
// vertex name, partition and edge weight as attributes; Graph6 gives a
// compact topology-only encoding. FromGonum goes the other way, so graphs
// built elsewhere can be checked with bipartite.Verify.
//
// Gonum node IDs are assigned in sorted vertex-ID order starting at 0.
package interop
