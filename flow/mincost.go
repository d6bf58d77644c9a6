package flow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/quotaflow/dijkstra"
	"github.com/katalvlaran/quotaflow/network"
)

// MinCostFlow returns the minimum total cost of routing exactly flowLimit
// units from s to t through g, or Infeasible if fewer units fit. g is mutated:
// on return its residual capacities describe the routed flow.
func MinCostFlow(
	ctx context.Context,
	g *network.Network,
	s, t int,
	flowLimit int64,
	opts ...Option,
) (int64, error) {
	res, err := Run(ctx, g, s, t, flowLimit, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Run computes a minimum-cost flow of value flowLimit from s to t.
//
// Steps:
//  1. Validate inputs and seed potentials (zero or Bellman–Ford).
//  2. While flow < flowLimit:
//     a. Check ctx for cancellation.
//     b. Dijkstra on reduced costs from s; stop if t is unreachable.
//     c. phi[v] += dist[v] for every reached v.
//     d. d = min(flowLimit - flow, bottleneck of the s→t path).
//     e. Push d along the path; cost += d · (phi[t] - phi[s]).
//  3. Report Infeasible if flow < flowLimit.
func Run(
	ctx context.Context,
	g *network.Network,
	s, t int,
	flowLimit int64,
	opts ...Option,
) (Result, error) {
	// 1) Options and validation
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if s < 0 || s >= g.Len() {
		return Result{}, ErrSourceNotFound
	}
	if t < 0 || t >= g.Len() {
		return Result{}, ErrSinkNotFound
	}
	if flowLimit < 0 {
		return Result{}, ErrNegativeFlowLimit
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// 2) Seed potentials
	var phi []int64
	switch cfg.Init {
	case InitBellmanFord:
		var err error
		if phi, err = bellmanFordPotential(ctx, g, s); err != nil {
			return Result{}, err
		}
	default:
		phi = make([]int64, g.Len())
	}

	// Nothing to route: the empty flow is optimal.
	if s == t || flowLimit == 0 {
		return Result{Flow: flowLimit, Feasible: true, Potential: phi}, nil
	}

	r := &runner{g: g, s: s, t: t, limit: flowLimit, phi: phi, log: cfg.Logger}
	if err := r.process(ctx); err != nil {
		return Result{}, err
	}

	res := Result{
		Flow:          r.flow,
		Cost:          r.cost,
		Feasible:      r.flow == flowLimit,
		Augmentations: r.rounds,
		Potential:     r.phi,
	}
	if !res.Feasible {
		res.Cost = Infeasible
	}

	return res, nil
}

// runner holds the mutable state of one run.
type runner struct {
	g      *network.Network
	s, t   int
	limit  int64
	phi    []int64
	flow   int64
	cost   int64
	rounds int
	log    logrus.FieldLogger
}

// process augments along shortest paths until the limit is met or t is cut off.
func (r *runner) process(ctx context.Context) error {
	for r.flow < r.limit {
		if err := ctx.Err(); err != nil {
			return err
		}

		tree, err := dijkstra.Search(r.g, r.s, r.phi)
		if err != nil {
			return err
		}
		if !tree.Reached(r.t) {
			break
		}

		for v, d := range tree.Dist {
			if d != dijkstra.Unreachable {
				r.phi[v] += d
			}
		}

		d := r.bottleneck(tree)
		r.augment(tree, d)
		r.flow += d
		r.cost += d * (r.phi[r.t] - r.phi[r.s])
		r.rounds++

		if r.log != nil {
			r.log.WithFields(logrus.Fields{
				"augmentation":   r.rounds,
				"pushed":         d,
				"flow":           r.flow,
				"cost":           r.cost,
				"sink_potential": r.phi[r.t],
			}).Debug("flow: augmented shortest path")
		}
	}

	return nil
}

// bottleneck returns the smallest residual capacity on the tree path to t,
// capped by the flow still needed.
func (r *runner) bottleneck(tree *dijkstra.Tree) int64 {
	d := r.limit - r.flow
	for v := r.t; v != r.s; {
		e := r.g.Edge(tree.Prev[v])
		if e.Cap < d {
			d = e.Cap
		}
		v = e.From
	}

	return d
}

// augment pushes d units along the tree path to t.
func (r *runner) augment(tree *dijkstra.Tree, d int64) {
	for v := r.t; v != r.s; {
		id := tree.Prev[v]
		r.g.Push(id, d)
		v = r.g.Edge(id).From
	}
}
