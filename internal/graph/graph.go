// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds complete weighted undirected graphs over text units.
// Every pair of distinct nodes is connected, so construction is O(n²) in
// the number of nodes; callers keep candidate sets small.
package graph

import (
	"github.com/pdiddy/textrank/internal/distance"
	"github.com/pdiddy/textrank/pkg/types"
)

// WeightFunc returns the weight of the edge between two distinct nodes.
// It must be symmetric and non-negative.
type WeightFunc func(a, b string) float64

// DistanceWeight weights an edge by the edit distance between its ends.
func DistanceWeight(a, b string) float64 {
	return float64(distance.Levenshtein(a, b))
}

// SimilarityWeight weights an edge by 1/(1+distance).
func SimilarityWeight(a, b string) float64 {
	return 1 / (1 + float64(distance.Levenshtein(a, b)))
}

// WeightFor returns the weight function for mode. Unknown modes use
// DistanceWeight.
func WeightFor(mode types.WeightMode) WeightFunc {
	if mode == types.WeightSimilarity {
		return SimilarityWeight
	}
	return DistanceWeight
}

// Graph is a complete undirected graph with a dense symmetric weight matrix.
// Nodes keep the order in which they were first seen.
type Graph struct {
	nodes   []string
	index   map[string]int
	weights [][]float64
}

// Build creates a graph with one node per unique string in nodes and an
// edge weighted by w between every pair of distinct nodes.
func Build(nodes []string, w WeightFunc) *Graph {
	g := &Graph{index: make(map[string]int, len(nodes))}
	for _, n := range nodes {
		if _, ok := g.index[n]; ok {
			continue
		}
		g.index[n] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	g.weights = make([][]float64, len(g.nodes))
	for i := range g.weights {
		g.weights[i] = make([]float64, len(g.nodes))
	}
	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			wt := w(g.nodes[i], g.nodes[j])
			if wt < 0 {
				wt = 0
			}
			g.weights[i][j] = wt
			g.weights[j][i] = wt
		}
	}
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Node returns the node at index i.
func (g *Graph) Node(i int) string {
	return g.nodes[i]
}

// Index returns the position of node n and whether it exists.
func (g *Graph) Index(n string) (int, bool) {
	i, ok := g.index[n]
	return i, ok
}

// Weight returns the weight of the edge between nodes i and j. It is zero
// on the diagonal.
func (g *Graph) Weight(i, j int) float64 {
	return g.weights[i][j]
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := len(g.nodes)
	return n * (n - 1) / 2
}

// Neighbors returns the indices of every node adjacent to i.
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.nodes)-1)
	for j := range g.nodes {
		if j != i {
			out = append(out, j)
		}
	}
	return out
}

// Strength returns the total weight of the edges incident to node i.
func (g *Graph) Strength(i int) float64 {
	var s float64
	for _, w := range g.weights[i] {
		s += w
	}
	return s
}
