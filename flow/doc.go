// Package flow computes minimum-cost flows on a network.Network using
// successive shortest augmenting paths with node potentials.
//
// Each round runs a Dijkstra search on reduced costs
//
//	cost(v, w) + phi[v] - phi[w]
//
// over arcs with residual capacity, adds the round's distances to phi, and
// pushes the bottleneck amount along the shortest s→t path. Because phi[t] -
// phi[s] equals the true (unreweighted) cost of that path, the running total is
// d · (phi[t] - phi[s]) per augmentation.
//
// # Potentials
//
//   - InitZero (default): phi starts at 0. Correct when no arc reachable from
//     the source has a negative cost, which holds for any network whose
//     forward arcs have non-negative costs.
//   - InitBellmanFord: phi starts at the shortest distances from the source,
//     computed by a queue-based Bellman–Ford. Use it when forward arcs carry
//     negative costs; negative cycles are reported as ErrNegativeCycle.
//
// # API
//
//	func MinCostFlow(ctx, g, s, t, flowLimit, opts...) (int64, error)
//	func Run(ctx, g, s, t, flowLimit, opts...) (Result, error)
//
// MinCostFlow returns the total cost, or Infeasible when fewer than flowLimit
// units fit. Run returns the same computation with flow, feasibility, the
// number of augmentations and the final potentials.
//
// Complexity:
//
//	Time:   O(F · (V + E) log V), F = number of augmentations (≤ flowLimit).
//	Memory: O(V + E).
//
// # Errors
//
//	ErrNilGraph          - g is nil.
//	ErrSourceNotFound    - s is not a node of g.
//	ErrSinkNotFound      - t is not a node of g.
//	ErrNegativeFlowLimit - flowLimit < 0.
//	ErrNegativeCycle     - Bellman–Ford found a negative cycle reachable from s.
//	dijkstra.ErrNegativeReducedCost - a negative arc was met with InitZero.
//	context.Canceled / context.DeadlineExceeded - ctx ended between rounds.
package flow
