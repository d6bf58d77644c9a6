package network

import "fmt"

// Network is a directed graph with residual capacities and per-unit costs.
type Network struct {
	edges []Edge
	adj   [][]EdgeID
}

// New returns an empty network with n nodes labelled 0..n-1.
// A negative n is treated as 0.
func New(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{adj: make([][]EdgeID, n)}
}

// Len returns the number of nodes.
func (g *Network) Len() int { return len(g.adj) }

// EdgeCount returns the number of arcs in the arena, reverse arcs included.
func (g *Network) EdgeCount() int { return len(g.edges) }

// AddEdge appends a forward arc from→to with the given capacity and cost, plus
// its reverse arc to→from with capacity 0 and cost -cost. It returns the handle
// of the forward arc; the reverse arc is always the next handle.
func (g *Network) AddEdge(from, to int, capacity, cost int64) (EdgeID, error) {
	if from < 0 || from >= len(g.adj) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, from)
	}
	if to < 0 || to >= len(g.adj) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, to)
	}
	if capacity < 0 {
		return 0, CapacityError{From: from, To: to, Cap: capacity}
	}

	fwd := EdgeID(len(g.edges))
	rev := fwd + 1
	g.edges = append(g.edges,
		Edge{From: from, To: to, Cap: capacity, Cost: cost, Rev: rev},
		Edge{From: to, To: from, Cap: 0, Cost: -cost, Rev: fwd},
	)
	g.adj[from] = append(g.adj[from], fwd)
	g.adj[to] = append(g.adj[to], rev)

	return fwd, nil
}

// Edge returns a copy of the arc behind id.
func (g *Network) Edge(id EdgeID) Edge { return g.edges[id] }

// Out returns the handles of arcs leaving v. The slice must not be modified.
func (g *Network) Out(v int) []EdgeID { return g.adj[v] }

// Push routes f units along id: its residual capacity drops by f and the
// paired reverse arc gains f. The caller guarantees 0 <= f <= Cap.
func (g *Network) Push(id EdgeID, f int64) {
	e := &g.edges[id]
	e.Cap -= f
	g.edges[e.Rev].Cap += f
}

// Flow returns the units currently routed along the forward arc id, which is
// the residual capacity of its reverse arc.
func (g *Network) Flow(id EdgeID) int64 {
	return g.edges[g.edges[id].Rev].Cap
}

// Edges lists every forward arc in insertion order together with its flow.
func (g *Network) Edges() []Arc {
	out := make([]Arc, 0, len(g.edges)/2)
	for id := 0; id < len(g.edges); id += 2 {
		e := g.edges[id]
		f := g.edges[e.Rev].Cap
		out = append(out, Arc{
			ID:       EdgeID(id),
			From:     e.From,
			To:       e.To,
			Capacity: e.Cap + f,
			Cost:     e.Cost,
			Flow:     f,
		})
	}

	return out
}
