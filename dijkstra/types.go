// Package dijkstra runs single-source shortest-path searches over the residual
// arcs of a network.Network using reduced costs.
//
// For an arc v→w with residual capacity > 0 the search uses
//
//	reduced(v, w) = cost(v, w) + potential[v] - potential[w]
//
// which is non-negative whenever the potentials are feasible (for example the
// distances of the previous round of a successive-shortest-path flow). Arcs
// with zero residual capacity are not traversed.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is finalised once; each relaxation may push one heap entry.
//	– Space: O(V + E)
//	   • O(V) for distances, predecessor arcs and the finalised flags.
//	   • O(E) in the heap in the worst case (lazy decrease-key).
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the network pointer is nil.
//	– ErrVertexNotFound       if the source is not a node of the network.
//	– ErrPotentialSize        if len(potential) differs from the node count.
//	– ErrNegativeReducedCost  if a traversable arc has a negative reduced cost.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/quotaflow/network"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *network.Network was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source is outside [0, Len()).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrPotentialSize indicates a potential slice whose length is not the node count.
	ErrPotentialSize = errors.New("dijkstra: potential length does not match node count")

	// ErrNegativeReducedCost indicates infeasible potentials: some traversable
	// arc would have a negative reduced cost.
	ErrNegativeReducedCost = errors.New("dijkstra: negative reduced cost encountered")
)

// Unreachable is the distance reported for nodes the search never reached.
const Unreachable int64 = math.MaxInt64

// NoEdge marks a node without a predecessor arc (the source and unreached nodes).
const NoEdge network.EdgeID = -1

// Tree is the result of one search.
//
// Dist[v] is the reduced-cost distance from the source (Unreachable if none).
// Prev[v] is the arc used to enter v on a shortest path (NoEdge if none).
type Tree struct {
	Source int
	Dist   []int64
	Prev   []network.EdgeID
}

// Reached reports whether v has a finite distance.
func (t *Tree) Reached(v int) bool { return t.Dist[v] != Unreachable }

// PathTo returns the arcs of the shortest path from the source to v, in order
// from the source. It returns nil if v is unreachable or v is the source.
func (t *Tree) PathTo(g *network.Network, v int) []network.EdgeID {
	if !t.Reached(v) || v == t.Source {
		return nil
	}
	var path []network.EdgeID
	for cur := v; cur != t.Source; {
		id := t.Prev[cur]
		path = append(path, id)
		cur = g.Edge(id).From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
