// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay unique on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new mutable Graph with identical configuration and
// vertices, but no edges. The clone is never frozen.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	clone := NewGraph(opts...)
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a mutable deep copy of the Graph: configuration, vertices,
// edges (IDs preserved) and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	clone.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}
