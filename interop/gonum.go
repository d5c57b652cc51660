// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/biogeo/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("interop: graph is nil")

	// ErrDuplicateLabel is returned when two gonum nodes map to the same vertex ID.
	ErrDuplicateLabel = errors.New("interop: duplicate vertex label")
)

// node is a gonum node that remembers the vertex it came from.
type node struct {
	id int64
	v  core.Vertex
}

func (n node) ID() int64 { return n.id }
func (n node) DOTID() string { return n.v.ID }
func (n node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "partition", Value: n.v.Partition.String()}}
	if n.v.Name != "" {
		attrs = append([]encoding.Attribute{{Key: "name", Value: n.v.Name}}, attrs...)
	}

	return attrs
}

// edge is a weighted gonum edge carrying the shared-neighbor count.
type edge struct {
	from, to node
	w        int64
}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node { return e.to }
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from, w: e.w} }
func (e edge) Weight() float64 { return float64(e.w) }
func (e edge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatInt(e.w, 10)}}
}

// ToGonum copies g into a gonum weighted undirected graph. The returned map
// takes vertex IDs to gonum node IDs. Edges of an unweighted graph get
// weight 1; absent edges read as 0.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	out := simple.NewWeightedUndirectedGraph(0, 0)
	ids := make(map[string]int64, g.VertexCount())
	nodes := make(map[string]node, g.VertexCount())
	for i, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, nil, fmt.Errorf("ToGonum: %w", err)
		}
		n := node{id: int64(i), v: v}
		out.AddNode(n)
		ids[id] = n.id
		nodes[id] = n
	}

	weighted := g.Weighted()
	for _, e := range g.Edges() {
		w := int64(1)
		if weighted {
			w = e.Weight
		}
		out.SetWeightedEdge(edge{from: nodes[e.From], to: nodes[e.To], w: w})
	}

	return out, ids, nil
}

// MarshalDOT renders g as a Graphviz DOT document named name.
func MarshalDOT(g *core.Graph, name string) ([]byte, error) {
	gg, _, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(gg, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("MarshalDOT: %w", err)
	}

	return b, nil
}

// Graph6 returns the graph6 encoding of g's topology. Weights, names and
// partitions are not represented.
func Graph6(g *core.Graph) (string, error) {
	gg, _, err := ToGonum(g)
	if err != nil {
		return "", err
	}

	return string(graph6.Encode(gg)), nil
}

// FromGonum builds an unfrozen core.Graph from any undirected gonum graph.
// Vertex IDs are the decimal node IDs; nodes with a DOTID use it instead.
// Weighted sources keep their weights rounded toward zero. Vertices are
// untagged, ready for bipartite.Verify once a tag is set per component.
// Two nodes sharing a label are rejected with ErrDuplicateLabel rather than
// merged.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	ws, weighted := src.(graph.Weighted)
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	out := core.NewGraph(opts...)

	label := func(n graph.Node) string {
		if d, ok := n.(dot.Node); ok && d.DOTID() != "" {
			return d.DOTID()
		}
		return strconv.FormatInt(n.ID(), 10)
	}

	nodes := graph.NodesOf(src.Nodes())
	seen := make(map[string]int64, len(nodes))
	for _, n := range nodes {
		id := label(n)
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("FromGonum: nodes %d and %d both labelled %q: %w", prev, n.ID(), id, ErrDuplicateLabel)
		}
		seen[id] = n.ID()
	}
	for _, n := range nodes {
		if err := out.AddVertex(label(n)); err != nil {
			return nil, fmt.Errorf("FromGonum: %w", err)
		}
	}
	for _, u := range nodes {
		for _, v := range graph.NodesOf(src.From(u.ID())) {
			if u.ID() >= v.ID() {
				continue
			}
			var w int64
			if weighted {
				f, _ := ws.Weight(u.ID(), v.ID())
				w = int64(f)
			}
			if _, err := out.AddEdge(label(u), label(v), w); err != nil {
				return nil, fmt.Errorf("FromGonum: AddEdge(%d, %d): %w", u.ID(), v.ID(), err)
			}
		}
	}

	return out, nil
}
