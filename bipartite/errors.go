// SPDX-License-Identifier: MIT

package bipartite

import "errors"

// Method tags used as error context.
const (
	methodBuild  = "Build"
	methodVerify = "Verify"
)

var (
	// ErrNotBipartite indicates a graph that admits no 2-colouring consistent
	// with its taxon/locality tags.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

	// ErrGraphNil is returned when a nil graph is passed to Verify.
	ErrGraphNil = errors.New("bipartite: graph is nil")
)
