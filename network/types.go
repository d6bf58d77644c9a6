package network

import (
	"errors"
	"fmt"
)

// ErrNodeOutOfRange is returned when an edge endpoint is not a node of the network.
var ErrNodeOutOfRange = errors.New("network: node out of range")

// CapacityError is returned when an edge is added with a negative capacity.
type CapacityError struct {
	From, To int
	Cap      int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("network: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// EdgeID is a handle into the edge arena of a Network.
type EdgeID int

// Edge is one arc of the residual network.
type Edge struct {
	From int    // tail node
	To   int    // head node
	Cap  int64  // remaining residual capacity
	Cost int64  // cost per unit of flow
	Rev  EdgeID // handle of the paired reverse arc
}

// Arc is a forward edge as reported by Network.Edges.
type Arc struct {
	ID       EdgeID
	From, To int
	Capacity int64 // original capacity
	Cost     int64
	Flow     int64 // units currently routed along the arc
}
