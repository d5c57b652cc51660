// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/biogeo/bfs"
	"github.com/katalvlaran/biogeo/core"
)

// Components labels the connected components of g.
//
// Components are numbered from 0 in order of their smallest vertex ID; each
// member list is sorted. membership maps every vertex to its component index.
func Components(g *core.Graph) (membership map[string]int, components [][]string, err error) {
	return componentsCtx(context.Background(), g)
}

func componentsCtx(ctx context.Context, g *core.Graph) (map[string]int, [][]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	membership := make(map[string]int, g.VertexCount())
	var comps [][]string
	for _, start := range g.Vertices() {
		if _, seen := membership[start]; seen {
			continue
		}
		res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
		if err != nil {
			return nil, nil, fmt.Errorf("Components: BFS(%s): %w", start, err)
		}
		members := append([]string(nil), res.Order...)
		sort.Strings(members)
		for _, id := range members {
			membership[id] = len(comps)
		}
		comps = append(comps, members)
	}

	return membership, comps, nil
}

// LargestComponent returns the frozen subgraph induced by the component with
// the most vertices, ties going to the one holding the smallest vertex ID.
// This is the component DiameterLargestComponent measures. An empty graph
// yields an empty graph.
func LargestComponent(g *core.Graph) (*core.Graph, error) {
	_, comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool)
	for _, id := range largest(comps) {
		keep[id] = true
	}
	sub := core.InducedSubgraph(g, keep)
	sub.Freeze()

	return sub, nil
}

// largest picks the first component of maximal size; nil when comps is empty.
func largest(comps [][]string) []string {
	var best []string
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}
