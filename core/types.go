// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Partition and Graph declarations, options, sentinel errors
//       and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop requested (graphs are always simple).
//	ErrMultiEdgeNotAllowed - parallel edge between the same endpoints.
//	ErrPartitionConflict   - vertex re-added with a different partition tag.
//	ErrFrozen              - mutation attempted after Freeze.

package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrPartitionConflict indicates a vertex was re-added under another partition tag.
	ErrPartitionConflict = errors.New("core: partition conflict")

	// ErrFrozen indicates a mutation on a graph that has been frozen.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Partition tags a vertex with the side of a bipartite occurrence graph it belongs to.
type Partition uint8

const (
	// PartitionNone marks an untagged vertex.
	PartitionNone Partition = iota
	// PartitionTaxon marks a taxon vertex.
	PartitionTaxon
	// PartitionLocality marks a locality vertex.
	PartitionLocality
)

// String returns the lower-case partition label.
func (p Partition) String() string {
	switch p {
	case PartitionTaxon:
		return "taxon"
	case PartitionLocality:
		return "locality"
	default:
		return "none"
	}
}

// Opposite returns the other side of the bipartition; PartitionNone maps to itself.
func (p Partition) Opposite() Partition {
	switch p {
	case PartitionTaxon:
		return PartitionLocality
	case PartitionLocality:
		return PartitionTaxon
	default:
		return PartitionNone
	}
}

// NodeID composes the stable vertex identifier for (partition, name).
// Tagged vertices are prefixed with their partition label so that a taxon
// and a locality sharing a name never collide; untagged vertices use name as is.
func NodeID(p Partition, name string) string {
	if p == PartitionNone {
		return name
	}

	return p.String() + ":" + name
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Name is the human-readable label (taxon or locality name).
	Name string

	// Partition is the bipartition tag, PartitionNone when untagged.
	Partition Partition
}

// Edge represents an undirected connection between two vertices.
// Endpoints are stored canonically with From < To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the multiplicity carried by the edge (0 on unweighted graphs).
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// VertexOption configures a vertex when it is added.
type VertexOption func(v *Vertex)

// WithName sets the display name of a vertex (defaults to its ID).
func WithName(name string) VertexOption {
	return func(v *Vertex) { v.Name = name }
}

// WithPartition tags a vertex with a bipartition side.
func WithPartition(p Partition) VertexOption {
	return func(v *Vertex) { v.Partition = p }
}

// Graph is a simple undirected graph: no self-loops, no parallel edges.
//
// A Graph is mutable until Freeze is called; afterwards every mutator returns
// ErrFrozen and the graph may be shared freely between goroutines.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	weighted bool        // allow non-zero weights
	frozen   atomic.Bool // set once by Freeze

	nextEdgeID uint64             // edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty, mutable, unweighted Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
