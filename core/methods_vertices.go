// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VerticesIn() return IDs sorted lexicographically ascending.
//   - NeighborIDs() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID and that the graph is not frozen.
//   - Stage 2: Resolve options into a candidate Vertex (Name defaults to id).
//   - Stage 3: Under muVert, insert the vertex or reconcile the partition tag of
//     an existing one; under muEdgeAdj, bootstrap its adjacency bucket.
//
// Behavior highlights:
//   - Re-adding an existing vertex is a no-op, except that an untagged vertex
//     picks up a tag when one is supplied.
//   - Re-adding with a different non-none tag fails with ErrPartitionConflict.
//
// Errors:
//   - ErrEmptyVertexID, ErrFrozen, ErrPartitionConflict.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.frozen.Load() {
		return ErrFrozen
	}

	cand := Vertex{ID: id, Name: id}
	for _, opt := range opts {
		opt(&cand)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if g.frozen.Load() {
		return ErrFrozen
	}

	if v, exists := g.vertices[id]; exists {
		switch {
		case cand.Partition == PartitionNone || cand.Partition == v.Partition:
		case v.Partition == PartitionNone:
			v.Partition = cand.Partition
		default:
			return ErrPartitionConflict
		}

		return nil
	}
	g.vertices[id] = &cand

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VerticesIn returns the IDs of vertices tagged with p, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VerticesIn(p Partition) []string {
	g.muVert.RLock()
	ids := make([]string, 0)
	for id, v := range g.vertices {
		if v.Partition == p {
			ids = append(ids, id)
		}
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return 0, ErrEmptyVertexID
		}
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}
