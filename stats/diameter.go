// SPDX-License-Identifier: MIT
//
// File: diameter.go
// Role: Hop-count diameter under an explicit disconnected-graph policy.

package stats

import (
	"context"
	"fmt"

	"github.com/katalvlaran/biogeo/bfs"
	"github.com/katalvlaran/biogeo/core"
)

// DiameterPolicy decides how Diameter treats a disconnected graph.
type DiameterPolicy int

const (
	// DiameterStrict fails with ErrNotConnected on more than one component.
	DiameterStrict DiameterPolicy = iota
	// DiameterLargestComponent measures the component with the most
	// vertices; ties go to the component holding the smallest vertex ID.
	DiameterLargestComponent
	// DiameterPerComponent measures every component; the overall value is
	// the largest of them.
	DiameterPerComponent
)

var policyNames = map[DiameterPolicy]string{
	DiameterStrict:           "strict",
	DiameterLargestComponent: "largest-component",
	DiameterPerComponent:     "per-component",
}

// String returns the policy name accepted by ParseDiameterPolicy.
func (p DiameterPolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("DiameterPolicy(%d)", int(p))
}

// ParseDiameterPolicy maps "strict", "largest-component" or
// "per-component" to a policy.
func ParseDiameterPolicy(s string) (DiameterPolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}

// ComponentDiameter is the diameter of one connected component.
type ComponentDiameter struct {
	// Vertices are the sorted member IDs.
	Vertices []string
	// Diameter is the longest shortest path within the component, in hops.
	Diameter int
	// Path is one shortest path of that length: from the first member (in
	// ID order) of maximal eccentricity to the last vertex its BFS visits.
	Path []string
}

// DiameterResult is the outcome of Diameter.
//
// Value is not applicable on an empty graph. Components holds the measured
// components: one for DiameterStrict and DiameterLargestComponent, all of
// them for DiameterPerComponent.
type DiameterResult struct {
	Policy     DiameterPolicy
	Value      Measure
	Components []ComponentDiameter
	// Connected reports whether g has at most one component.
	Connected bool
}

// Diameter returns the longest shortest-path length of g in hops.
//
// Complexity: O(V·(V+E)), one BFS per vertex of each measured component.
func Diameter(g *core.Graph, policy DiameterPolicy) (DiameterResult, error) {
	return diameterCtx(context.Background(), g, policy)
}

func diameterCtx(ctx context.Context, g *core.Graph, policy DiameterPolicy) (DiameterResult, error) {
	if _, ok := policyNames[policy]; !ok {
		return DiameterResult{}, fmt.Errorf("Diameter: %s: %w", policy, ErrUnknownPolicy)
	}
	_, comps, err := componentsCtx(ctx, g)
	if err != nil {
		return DiameterResult{}, fmt.Errorf("Diameter: %w", err)
	}
	res := DiameterResult{Policy: policy, Connected: len(comps) <= 1}
	if len(comps) == 0 {
		return res, nil
	}

	var measured [][]string
	switch policy {
	case DiameterStrict:
		if !res.Connected {
			return DiameterResult{}, fmt.Errorf("Diameter: %d components: %w", len(comps), ErrNotConnected)
		}
		measured = comps
	case DiameterLargestComponent:
		measured = [][]string{largest(comps)}
	case DiameterPerComponent:
		measured = comps
	}

	overall := 0
	for _, members := range measured {
		cd, err := componentDiameter(ctx, g, members)
		if err != nil {
			return DiameterResult{}, err
		}
		res.Components = append(res.Components, cd)
		if cd.Diameter > overall {
			overall = cd.Diameter
		}
	}
	res.Value = applicable(float64(overall))

	return res, nil
}

// componentDiameter is the largest BFS eccentricity over members, with the
// tree path that realizes it.
func componentDiameter(ctx context.Context, g *core.Graph, members []string) (ComponentDiameter, error) {
	var best *bfs.Result
	for _, id := range members {
		r, err := bfs.BFS(g, id, bfs.WithContext(ctx))
		if err != nil {
			return ComponentDiameter{}, fmt.Errorf("Diameter: %w", err)
		}
		if best == nil || r.Eccentricity() > best.Eccentricity() {
			best = r
		}
	}
	path, err := best.PathTo(best.Farthest())
	if err != nil {
		return ComponentDiameter{}, fmt.Errorf("Diameter: %w", err)
	}

	return ComponentDiameter{Vertices: members, Diameter: best.Eccentricity(), Path: path}, nil
}
