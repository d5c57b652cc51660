// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/biogeo/bfs"
	"github.com/katalvlaran/biogeo/core"
)

// Verify proves that a caller-assembled graph is bipartite and that its
// partition tags agree with the 2-colouring.
//
// Implementation:
//   - One BFS per component, from its smallest vertex; the visit hook colours
//     each vertex by depth parity.
//   - The same hook rejects a vertex with an already coloured neighbor of
//     its own colour (an odd cycle) and a tag disagreeing with the tag
//     already seen on its colour, aborting the walk at the first offence.
//   - After the walk, a component whose colours carry no tag, or the same tag
//     on both colours, is rejected.
//
// Untagged vertices in a labelled component receive the tag of their colour
// in the returned graph. g itself is never mutated; the result is a frozen clone.
//
// Errors: ErrGraphNil, ErrNotBipartite (wrapped with the offending vertices).
func Verify(g *core.Graph, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)

	parity := make(map[string]int, g.VertexCount())
	var side [2]core.Partition
	colour := func(id string, depth int) error {
		c := depth % 2
		parity[id] = c
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			if p, ok := parity[n]; ok && p == c {
				return fmt.Errorf("odd cycle through %s-%s: %w", n, id, ErrNotBipartite)
			}
		}
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		if v.Partition == core.PartitionNone {
			return nil
		}
		switch side[c] {
		case core.PartitionNone:
			side[c] = v.Partition
		case v.Partition:
		default:
			return fmt.Errorf("%s tagged %s on the %s side: %w", id, v.Partition, side[c], ErrNotBipartite)
		}
		return nil
	}

	assign := make(map[string]core.Partition)
	components := 0
	for _, start := range g.Vertices() {
		if _, seen := parity[start]; seen {
			continue
		}
		side = [2]core.Partition{}
		res, err := bfs.BFS(g, start, bfs.WithOnVisit(colour))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodVerify, err)
		}
		components++

		switch {
		case side[0] == core.PartitionNone && side[1] == core.PartitionNone:
			return nil, fmt.Errorf("%s: component of %s has no tagged vertex: %w", methodVerify, start, ErrNotBipartite)
		case side[0] == side[1]:
			return nil, fmt.Errorf("%s: component of %s puts %s on both sides: %w", methodVerify, start, side[0], ErrNotBipartite)
		case side[0] == core.PartitionNone:
			side[0] = side[1].Opposite()
		case side[1] == core.PartitionNone:
			side[1] = side[0].Opposite()
		}
		for _, id := range res.Order {
			assign[id] = side[parity[id]]
		}
	}

	out := g.Clone()
	for id, p := range assign {
		if err := out.AddVertex(id, core.WithPartition(p)); err != nil {
			return nil, fmt.Errorf("%s: tag %s: %w", methodVerify, id, err)
		}
	}

	b := wrap(out)
	o.logger.Debug("bipartite graph verified",
		zap.Int("components", components),
		zap.Int("taxa", b.TaxonCount()),
		zap.Int("localities", b.LocalityCount()))

	return b, nil
}
