package flow

import (
	"context"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/quotaflow/dijkstra"
	"github.com/katalvlaran/quotaflow/network"
)

// bellmanFordPotential returns shortest distances from s over arcs with
// residual capacity, computed with a FIFO-queue Bellman–Ford (SPFA). Nodes the
// search cannot reach get potential 0; they stay unreachable for the rest of
// the run because augmentations only add arcs between reached nodes.
//
// A shortest path with V or more arcs implies a negative cycle.
func bellmanFordPotential(ctx context.Context, g *network.Network, s int) ([]int64, error) {
	V := g.Len()
	dist := make([]int64, V)
	hops := make([]int, V)
	queued := make([]bool, V)
	for v := range dist {
		dist[v] = dijkstra.Unreachable
	}
	dist[s] = 0

	var q deque.Deque[int]
	q.PushBack(s)
	queued[s] = true

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u := q.PopFront()
		queued[u] = false

		for _, id := range g.Out(u) {
			e := g.Edge(id)
			if e.Cap <= 0 {
				continue
			}
			nd := dist[u] + e.Cost
			if nd >= dist[e.To] {
				continue
			}
			dist[e.To] = nd
			hops[e.To] = hops[u] + 1
			if hops[e.To] >= V {
				return nil, ErrNegativeCycle
			}
			if !queued[e.To] {
				q.PushBack(e.To)
				queued[e.To] = true
			}
		}
	}

	for v := range dist {
		if dist[v] == dijkstra.Unreachable {
			dist[v] = 0
		}
	}

	return dist, nil
}
