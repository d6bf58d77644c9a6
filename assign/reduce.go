package assign

import (
	"context"

	"github.com/katalvlaran/quotaflow/flow"
	"github.com/katalvlaran/quotaflow/network"
)

// BuildNetwork validates in and builds its reduction network.
func BuildNetwork(in Instance) (*network.Network, Layout, error) {
	if err := in.Validate(); err != nil {
		return nil, Layout{}, err
	}
	n, m := in.N(), in.M()
	q, r := in.Quota()
	l := Layout{N: n, M: m, Source: 0, Overflow: n + m + 1, Sink: n + m + 2}
	g := network.New(l.Nodes())

	add := func(from, to int, capacity, cost int64) error {
		_, err := g.AddEdge(from, to, capacity, cost)
		return err
	}

	// S → elements
	for j := 0; j < n; j++ {
		if err := add(l.Source, l.Element(j), 1, 0); err != nil {
			return nil, Layout{}, err
		}
	}
	// elements → categories
	for j, a := range in.Values {
		for i, b := range in.Divisors {
			if err := add(l.Element(j), l.Category(i), 1, RoundUpCost(a, b)); err != nil {
				return nil, Layout{}, err
			}
		}
	}
	// categories → T (quota) and categories → U (extra slot)
	for i := 0; i < m; i++ {
		if err := add(l.Category(i), l.Sink, int64(q), 0); err != nil {
			return nil, Layout{}, err
		}
		if err := add(l.Category(i), l.Overflow, 1, 0); err != nil {
			return nil, Layout{}, err
		}
	}
	// U → T
	if err := add(l.Overflow, l.Sink, int64(r), 0); err != nil {
		return nil, Layout{}, err
	}

	return g, l, nil
}

// Solve computes the minimum-cost assignment of in. Options are passed to the
// flow engine unchanged.
func Solve(ctx context.Context, in Instance, opts ...flow.Option) (Answer, error) {
	g, l, err := BuildNetwork(in)
	if err != nil {
		return Answer{}, err
	}
	q, r := in.Quota()

	res, err := flow.Run(ctx, g, l.Source, l.Sink, int64(l.N), opts...)
	if err != nil {
		return Answer{}, err
	}

	ans := Answer{Cost: res.Cost, Feasible: res.Feasible, Quota: q, Extra: r}
	if res.Feasible {
		ans.Assignment = extract(g, l)
	}

	return ans, nil
}

// MinCost returns only the cost of Solve.
func MinCost(ctx context.Context, in Instance, opts ...flow.Option) (int64, error) {
	ans, err := Solve(ctx, in, opts...)
	if err != nil {
		return 0, err
	}

	return ans.Cost, nil
}

// extract reads the chosen category of every element from the element→category
// arcs that carry flow.
func extract(g *network.Network, l Layout) []int {
	out := make([]int, l.N)
	for j := range out {
		out[j] = -1
	}
	for _, a := range g.Edges() {
		if a.Flow == 0 || !l.IsElement(a.From) || !l.IsCategory(a.To) {
			continue
		}
		out[a.From-1] = a.To - l.N - 1
	}

	return out
}
