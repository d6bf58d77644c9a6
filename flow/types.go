package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// ErrNilGraph is returned when a nil network is passed in.
var ErrNilGraph = errors.New("flow: graph is nil")

// ErrSourceNotFound is returned when the source is not a node of the network.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the sink is not a node of the network.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrNegativeFlowLimit is returned when the requested flow is negative.
var ErrNegativeFlowLimit = errors.New("flow: flow limit must be non-negative")

// ErrNegativeCycle is returned by the Bellman–Ford initialiser when a
// negative-cost cycle is reachable from the source.
var ErrNegativeCycle = errors.New("flow: negative-cost cycle reachable from source")

// Infeasible is the cost reported when the requested flow cannot be routed.
// It is larger than any cost a feasible flow can have.
const Infeasible int64 = math.MaxInt64

// PotentialInit selects how node potentials are seeded before the first round.
type PotentialInit int

const (
	// InitZero starts every potential at 0.
	InitZero PotentialInit = iota

	// InitBellmanFord starts potentials at Bellman–Ford distances from the source.
	InitBellmanFord
)

// String returns the flag spelling of the mode.
func (p PotentialInit) String() string {
	switch p {
	case InitZero:
		return "zero"
	case InitBellmanFord:
		return "bellman-ford"
	default:
		return fmt.Sprintf("PotentialInit(%d)", int(p))
	}
}

// ParsePotentialInit maps "zero" / "bellman-ford" to a PotentialInit.
func ParsePotentialInit(s string) (PotentialInit, error) {
	switch s {
	case "zero", "":
		return InitZero, nil
	case "bellman-ford", "bellmanford", "bf":
		return InitBellmanFord, nil
	default:
		return InitZero, fmt.Errorf("flow: unknown potential init %q", s)
	}
}

// Options configures a min-cost flow run.
//   - Init: how potentials are seeded (default InitZero).
//   - Logger: if set, each augmentation is logged at debug level.
type Options struct {
	Init   PotentialInit
	Logger logrus.FieldLogger
}

// Option is a functional option for Run and MinCostFlow.
type Option func(*Options)

// WithPotentialInit selects the potential seeding mode.
func WithPotentialInit(p PotentialInit) Option {
	return func(o *Options) {
		o.Init = p
	}
}

// WithLogger enables per-augmentation debug logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns zero potentials and no logging.
func DefaultOptions() Options {
	return Options{Init: InitZero}
}

// Result describes a finished run.
type Result struct {
	Flow          int64   // units actually routed
	Cost          int64   // total cost, or Infeasible when !Feasible
	Feasible      bool    // Flow reached the requested limit
	Augmentations int     // number of shortest-path rounds that pushed flow
	Potential     []int64 // final node potentials
}
