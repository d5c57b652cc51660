// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To).
//   - Edge IDs are monotonic ("e" + decimal) in insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge creates an undirected edge between from and to and returns its ID.
// Missing endpoints are added untagged. Endpoints are stored canonically
// (From < To), so AddEdge(a,b) and AddEdge(b,a) address the same pair.
//
// Errors:
//   - ErrEmptyVertexID, ErrFrozen, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if g.frozen.Load() {
		return "", ErrFrozen
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}
	if to < from {
		from, to = to, from
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if g.frozen.Load() {
		return "", ErrFrozen
	}

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of edge {u,v} and whether that edge exists.
// An absent edge reports (0, false).
func (g *Graph) Weight(u, v string) (int64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return 0, false
	}

	return g.edges[eid].Weight, true
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgeBetween returns a copy of the edge joining u and v.
// Errors: ErrEmptyVertexID, ErrEdgeNotFound.
func (g *Graph) EdgeBetween(u, v string) (Edge, error) {
	if u == "" || v == "" {
		return Edge{}, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}
