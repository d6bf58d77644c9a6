package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/quotaflow/network"
	"github.com/katalvlaran/quotaflow/pq"
)

// Search computes reduced-cost shortest distances from source over the arcs of
// g that still have residual capacity. A nil potential is treated as all zeros.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a node of g (ErrVertexNotFound).
//  3. potential must be nil or have g.Len() entries (ErrPotentialSize).
//  4. Every traversable arc met during the search must have a non-negative
//     reduced cost (ErrNegativeReducedCost).
func Search(g *network.Network, source int, potential []int64) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	V := g.Len()
	if source < 0 || source >= V {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	if potential == nil {
		potential = make([]int64, V)
	} else if len(potential) != V {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPotentialSize, len(potential), V)
	}

	r := &runner{
		g:         g,
		potential: potential,
		tree: &Tree{
			Source: source,
			Dist:   make([]int64, V),
			Prev:   make([]network.EdgeID, V),
		},
		done: make([]bool, V),
		pq:   pq.New(nodeLess, V),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *network.Network
	potential []int64
	tree      *Tree
	done      []bool // distance finalised
	pq        *pq.Heap[nodeItem]
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	dist int64
	node int
}

// nodeLess orders by distance, then by node id.
func nodeLess(a, b nodeItem) bool {
	return a.dist < b.dist || a.dist == b.dist && a.node < b.node
}

// init marks every node unreached and seeds the heap with the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.tree.Dist {
		r.tree.Dist[v] = Unreachable
		r.tree.Prev[v] = NoEdge
	}
	r.tree.Dist[source] = 0
	r.pq.Push(nodeItem{dist: 0, node: source})
}

// process pops nodes in distance order and relaxes their residual arcs.
// Stale heap entries (already finalised nodes) are skipped.
func (r *runner) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		if r.done[item.node] {
			continue
		}
		r.done[item.node] = true
		if err := r.relax(item.node); err != nil {
			return err
		}
	}
}

// relax tries to improve the distance of every head reachable from u through
// an arc with positive residual capacity.
func (r *runner) relax(u int) error {
	du := r.tree.Dist[u]
	for _, id := range r.g.Out(u) {
		e := r.g.Edge(id)
		if e.Cap <= 0 {
			continue
		}
		w := e.Cost + r.potential[u] - r.potential[e.To]
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d reduced cost=%d", ErrNegativeReducedCost, u, e.To, w)
		}
		nd := du + w
		if nd >= r.tree.Dist[e.To] {
			continue
		}
		r.tree.Dist[e.To] = nd
		r.tree.Prev[e.To] = id
		r.pq.Push(nodeItem{dist: nd, node: e.To})
	}

	return nil
}
