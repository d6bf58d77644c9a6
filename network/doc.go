// Package network stores a directed flow network as an arena of edges addressed
// by integer handles.
//
// Every call to AddEdge appends two arcs atomically: the forward arc with the
// requested capacity and cost, and its reverse arc with capacity 0 and cost
// -cost. Each arc records the handle of its partner in Rev, so pushing flow is
// two O(1) updates:
//
//	e.Cap  -= f
//	e'.Cap += f
//
// which keeps e.Cap + e'.Cap equal to the original capacity at all times.
//
// Nodes are the integers [0, Len()). Each node owns an ordered slice of
// outgoing handles; order only affects which of several equal-cost paths a
// search finds, never the optimal cost.
//
// Errors:
//
//	ErrNodeOutOfRange - an endpoint is outside [0, Len()).
//	CapacityError     - a negative capacity was supplied.
//
// A Network is not safe for concurrent mutation; one flow computation owns it
// from construction until its answer is extracted.
package network
