// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh mutable graph instance.

package core

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			cp := *v
			out.vertices[id] = &cp
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter forward so IDs added later on out never reuse a source ID.
	out.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		cp := *e
		out.edges[eid] = &cp
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	g.muEdgeAdj.RUnlock()

	return out
}
