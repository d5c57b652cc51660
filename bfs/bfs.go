// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/biogeo/core"
)

// walker holds the state of one traversal. The queue is consumed by index so
// that Order doubles as the queue backing store.
type walker struct {
	g    *core.Graph
	ctx  context.Context
	opts options
	res  *Result
	head int
}

// BFS explores g from startID in non-decreasing hop distance. Edge weights
// are ignored. Neighbors are taken in sorted order, so Order is reproducible.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation,
// or the wrapped error of an OnVisit hook. No Result is returned on error.
//
// Complexity: O(V + E·log d), Memory O(V).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS(%q): %w", startID, ErrStartVertexNotFound)
	}
	o := newOptions(opts)

	n := g.VertexCount()
	w := &walker{
		g:    g,
		ctx:  o.ctx,
		opts: o,
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.push(startID, 0, "")
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// push records id at depth d under parent and appends it to the queue.
func (w *walker) push(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
}

func (w *walker) run() error {
	for w.head < len(w.res.Order) {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		id := w.res.Order[w.head]
		w.head++
		d := w.res.Depth[id]

		if err := w.opts.onVisit(id, d); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", id, err)
		}
		nbrs, err := w.g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.push(nbr, d+1, id)
			}
		}
	}

	return nil
}
