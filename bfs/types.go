// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, options and the Result of a traversal.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNotReached is returned by PathTo for a vertex outside the start's component.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(id string, depth int) error
}

func newOptions(opts []Option) options {
	o := options{
		ctx:     context.Background(),
		onVisit: func(string, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit calls fn as each vertex is dequeued, before its neighbors are
// enqueued. A non-nil error aborts the traversal and is returned wrapped.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result is the BFS tree rooted at Start.
//
// Order lists vertices in visit sequence, Depth their hop distance from
// Start and Parent their predecessor in the tree (Start has none).
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id lies in the start vertex's component.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// Eccentricity returns the hop distance from Start to the farthest reached vertex.
func (r *Result) Eccentricity() int {
	return r.Depth[r.Farthest()]
}

// Farthest returns the last vertex visited, which is at maximal depth.
func (r *Result) Farthest() string {
	return r.Order[len(r.Order)-1]
}

// PathTo returns the tree path Start → dest, both ends included.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("PathTo(%q): %w", dest, ErrNotReached)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
