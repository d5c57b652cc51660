// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: configuration getters, Freeze, Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Weighted reports whether the graph accepts non-zero edge weights.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Freeze makes the graph immutable. After Freeze every mutator
// (AddVertex, AddEdge) returns ErrFrozen. Freeze is idempotent.
//
// Implementation:
//   - Stage 1: Take both write locks so that no mutation is in flight.
//   - Stage 2: Publish the frozen flag.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Freeze() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.frozen.Store(true)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	return g.frozen.Load()
}

// GraphStats is a read-only snapshot of flags and catalog sizes.
type GraphStats struct {
	Weighted      bool
	Frozen        bool
	VertexCount   int
	EdgeCount     int
	TaxonCount    int
	LocalityCount int
	UntaggedCount int
}

// Stats produces a snapshot of configuration flags and catalog sizes,
// including a classification of vertices by partition.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, count vertices per partition.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot the edge count.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{Weighted: g.weighted, Frozen: g.frozen.Load()}

	g.muVert.RLock()
	st.VertexCount = len(g.vertices)
	for _, v := range g.vertices {
		switch v.Partition {
		case PartitionTaxon:
			st.TaxonCount++
		case PartitionLocality:
			st.LocalityCount++
		default:
			st.UntaggedCount++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	st.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return st
}
