// SPDX-License-Identifier: MIT

package stats

import "github.com/katalvlaran/biogeo/core"

// degrees counts incident edges per vertex; isolated vertices map to 0.
func degrees(g *core.Graph) map[string]int {
	deg := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		deg[id] = 0
	}
	for _, e := range g.Edges() {
		deg[e.From]++
		deg[e.To]++
	}

	return deg
}

// Density returns |E| / (n(n-1)/2). Fewer than two vertices: not applicable.
func Density(g *core.Graph) Measure {
	if g == nil {
		return Measure{}
	}
	n := float64(g.VertexCount())
	if n < 2 {
		return Measure{}
	}

	return applicable(float64(g.EdgeCount()) / (n * (n - 1) / 2))
}

// DegreeDistribution returns, for k = 0..max degree, the fraction of
// vertices with exactly k incident edges. The slice has length
// max degree + 1 and sums to 1. Empty graph: nil.
func DegreeDistribution(g *core.Graph) []float64 {
	if g == nil || g.VertexCount() == 0 {
		return nil
	}
	deg := degrees(g)

	maxDeg := 0
	for _, d := range deg {
		if d > maxDeg {
			maxDeg = d
		}
	}
	dist := make([]float64, maxDeg+1)
	for _, d := range deg {
		dist[d]++
	}
	n := float64(len(deg))
	for k := range dist {
		dist[k] /= n
	}

	return dist
}

// DegreeCentrality maps each vertex to degree/(n-1). A lone vertex scores 1.
func DegreeCentrality(g *core.Graph) map[string]float64 {
	if g == nil {
		return nil
	}
	deg := degrees(g)
	out := make(map[string]float64, len(deg))
	if len(deg) == 1 {
		for id := range deg {
			out[id] = 1
		}
		return out
	}
	s := float64(len(deg) - 1)
	for id, d := range deg {
		out[id] = float64(d) / s
	}

	return out
}

// Strength maps each vertex to the sum of its incident edge weights.
// On an unweighted graph every edge counts 1, so strength equals degree.
func Strength(g *core.Graph) map[string]int64 {
	if g == nil {
		return nil
	}
	out := make(map[string]int64, g.VertexCount())
	for _, id := range g.Vertices() {
		out[id] = 0
	}
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		w := int64(1)
		if weighted {
			w = e.Weight
		}
		out[e.From] += w
		out[e.To] += w
	}

	return out
}
