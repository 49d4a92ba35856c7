// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank computes weighted PageRank centrality over a text graph.
package rank

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/textrank/internal/graph"
	"github.com/pdiddy/textrank/pkg/types"
)

// Options configures the power iteration.
type Options struct {
	// Damping is the probability of following an edge rather than
	// restarting uniformly (default 0.85).
	Damping float64

	// Tolerance is the total absolute score change that counts as
	// converged (default 1e-4).
	Tolerance float64

	// MaxIterations bounds the power iteration (default 100).
	MaxIterations int

	// Logger receives a warning when the iteration cap is reached.
	// Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the options used by the extractor.
func DefaultOptions() Options {
	return Options{
		Damping:       types.DefaultDamping,
		Tolerance:     types.DefaultTolerance,
		MaxIterations: types.DefaultMaxIterations,
	}
}

// OptionsFromConfig maps the ranking fields of cfg onto Options.
func OptionsFromConfig(cfg types.TextRankConfig, log logrus.FieldLogger) Options {
	return Options{
		Damping:       cfg.Damping,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Logger:        log,
	}
}

func (o Options) withDefaults() Options {
	if o.Damping < 0 || o.Damping > 1 || math.IsNaN(o.Damping) {
		o.Damping = types.DefaultDamping
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		o.Tolerance = types.DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = types.DefaultMaxIterations
	}
	return o
}

// Result holds the stationary scores of a ranking run.
type Result struct {
	// Scores maps each node to its centrality; scores sum to 1.
	Scores map[string]float64

	// Iterations is the number of power-iteration steps performed.
	Iterations int

	// Converged is false when MaxIterations was reached first.
	Converged bool

	nodes []string
}

// Scored is one entry of a ranked list.
type Scored struct {
	Node  string
	Score float64
}

// PageRank runs weighted power iteration over g. Each step sets
//
//	s'(v) = (1-d)/N + d * Σ_u s(u) * w(u,v) / strength(u)
//
// where strength(u) is the total weight on u's edges. Nodes with zero
// strength spread their score uniformly. Iteration stops once the total
// absolute change drops below the tolerance or the cap is hit; the final
// scores are renormalized to sum to 1.
func PageRank(g *graph.Graph, opts Options) Result {
	opts = opts.withDefaults()
	n := g.Len()
	res := Result{
		Scores:    make(map[string]float64, n),
		Converged: true,
		nodes:     g.Nodes(),
	}

	switch n {
	case 0:
		return res
	case 1:
		res.Scores[g.Node(0)] = 1
		return res
	}

	nf := float64(n)
	strength := make([]float64, n)
	for i := range strength {
		strength[i] = g.Strength(i)
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / nf
	}
	next := make([]float64, n)

	res.Converged = false
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		dangling := 0.0
		for u, s := range strength {
			if s == 0 {
				dangling += scores[u]
			}
		}

		delta := 0.0
		for v := 0; v < n; v++ {
			sum := 0.0
			for u := 0; u < n; u++ {
				if u == v || strength[u] == 0 {
					continue
				}
				sum += scores[u] * g.Weight(u, v) / strength[u]
			}
			next[v] = (1-opts.Damping)/nf + opts.Damping*(sum+dangling/nf)
			delta += math.Abs(next[v] - scores[v])
		}

		scores, next = next, scores
		res.Iterations = iter
		if delta < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	if !res.Converged && opts.Logger != nil {
		opts.Logger.WithFields(logrus.Fields{
			"nodes":      n,
			"iterations": res.Iterations,
			"tolerance":  opts.Tolerance,
		}).Warn("pagerank reached iteration cap before converging")
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	for i, s := range scores {
		if total > 0 {
			s /= total
		}
		res.Scores[g.Node(i)] = s
	}
	return res
}

// Ranked returns the nodes ordered by descending score. Equal scores keep
// the graph's node insertion order.
func (r Result) Ranked() []Scored {
	out := make([]Scored, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = Scored{Node: n, Score: r.Scores[n]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Order returns the node names of Ranked.
func (r Result) Order() []string {
	ranked := r.Ranked()
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.Node
	}
	return out
}
