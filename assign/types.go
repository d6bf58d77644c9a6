package assign

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Instance.Validate.
var (
	// ErrNoCategories indicates an instance with m = 0.
	ErrNoCategories = errors.New("assign: at least one category is required")

	// ErrBadDivisor indicates a category divisor below 1.
	ErrBadDivisor = errors.New("assign: divisor must be positive")
)

// Instance is one test case.
type Instance struct {
	Values   []int64 // A: one value per element
	Divisors []int64 // B: one divisor per category
}

// N returns the number of elements.
func (in Instance) N() int { return len(in.Values) }

// M returns the number of categories.
func (in Instance) M() int { return len(in.Divisors) }

// Validate checks that the instance can be reduced.
func (in Instance) Validate() error {
	if len(in.Divisors) == 0 {
		return ErrNoCategories
	}
	for i, b := range in.Divisors {
		if b < 1 {
			return fmt.Errorf("%w: B[%d]=%d", ErrBadDivisor, i, b)
		}
	}

	return nil
}

// Quota returns q = n / m and r = n mod m. m must be positive.
func (in Instance) Quota() (q, r int) {
	n, m := in.N(), in.M()
	return n / m, n % m
}

// RoundUpCost returns how much must be added to a to reach the next multiple
// of b (0 if a already is one). b must be positive; a may be negative.
func RoundUpCost(a, b int64) int64 {
	x := a % b
	if x < 0 {
		x += b
	}

	return (b - x) % b
}

// Layout maps roles of the reduction network to node indices.
type Layout struct {
	N, M     int // elements, categories
	Source   int
	Overflow int // U
	Sink     int // T
}

// Nodes returns the total node count n + m + 3.
func (l Layout) Nodes() int { return l.N + l.M + 3 }

// Element returns the node of element j (0-based).
func (l Layout) Element(j int) int { return 1 + j }

// Category returns the node of category i (0-based).
func (l Layout) Category(i int) int { return l.N + 1 + i }

// IsElement reports whether v is an element node.
func (l Layout) IsElement(v int) bool { return v >= 1 && v <= l.N }

// IsCategory reports whether v is a category node.
func (l Layout) IsCategory(v int) bool { return v > l.N && v <= l.N+l.M }

// Answer is the solved test case.
type Answer struct {
	Cost       int64 // minimum total cost, or flow.Infeasible
	Feasible   bool
	Quota      int   // q
	Extra      int   // r
	Assignment []int // Assignment[j] = category index of element j; nil when infeasible
}
