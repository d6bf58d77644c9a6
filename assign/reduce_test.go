package assign_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/quotaflow/assign"
	"github.com/katalvlaran/quotaflow/flow"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// bruteForce enumerates every assignment of n elements to m categories and
// returns the cheapest one that respects the quota rules.
func bruteForce(in assign.Instance) int64 {
	n, m := in.N(), in.M()
	q, r := in.Quota()
	best := flow.Infeasible
	choice := make([]int, n)
	load := make([]int, m)

	var rec func(j int, cost int64)
	rec = func(j int, cost int64) {
		if j == n {
			extra := 0
			for _, c := range load {
				if c == q+1 {
					extra++
				}
			}
			if extra <= r && cost < best {
				best = cost
			}
			return
		}
		for i := 0; i < m; i++ {
			if load[i] == q+1 {
				continue
			}
			choice[j] = i
			load[i]++
			rec(j+1, cost+assign.RoundUpCost(in.Values[j], in.Divisors[i]))
			load[i]--
		}
	}
	rec(0, 0)

	return best
}

// checkAssignment verifies the quota shape of ans and that it prices to ans.Cost.
func checkAssignment(t *testing.T, in assign.Instance, ans assign.Answer) {
	t.Helper()
	require.Len(t, ans.Assignment, in.N())

	load := make([]int, in.M())
	var cost int64
	for j, i := range ans.Assignment {
		require.GreaterOrEqual(t, i, 0, "element %d unassigned", j)
		require.Less(t, i, in.M())
		load[i]++
		cost += assign.RoundUpCost(in.Values[j], in.Divisors[i])
	}
	require.Equal(t, ans.Cost, cost, "assignment must price to the reported cost")

	extra := 0
	for i, c := range load {
		require.True(t, c == ans.Quota || c == ans.Quota+1, "category %d load %d, quota %d", i, c, ans.Quota)
		if c == ans.Quota+1 {
			extra++
		}
	}
	require.Equal(t, ans.Extra, extra, "exactly r categories use their extra slot")
}

// ------------------------------------------------------------------------
// Suite
// ------------------------------------------------------------------------

// SolveSuite groups end-to-end tests of the reduction.
type SolveSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolveSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *SolveSuite) TestFixtures() {
	tests := []struct {
		name string
		a, b []int64
		want int64
	}{
		{"already divisible", []int64{5}, []int64{5}, 0},
		{"one short", []int64{4}, []int64{5}, 1},
		{"single category takes all", []int64{4, 6}, []int64{5}, 5},
		{"odd values into even divisors", []int64{1, 1, 1}, []int64{2, 2}, 3},
		{"two by two", []int64{3, 13}, []int64{5, 7}, 3},
		{"round to two", []int64{3}, []int64{2}, 1},
		{"four into two", []int64{3, 11, 13, 15}, []int64{5, 7}, 6},
		{"four into three", []int64{3, 11, 13, 15}, []int64{5, 6, 7}, 4},
		{"no elements", nil, []int64{3, 4}, 0},
		{"more categories than elements", []int64{7}, []int64{2, 7, 9}, 0},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			in := assign.Instance{Values: tt.a, Divisors: tt.b}
			ans, err := assign.Solve(s.ctx, in)
			require.NoError(s.T(), err)
			require.True(s.T(), ans.Feasible)
			require.Equal(s.T(), tt.want, ans.Cost)
			checkAssignment(s.T(), in, ans)
		})
	}
}

// TestMatchesBruteForce compares against exhaustive search on small random instances.
func (s *SolveSuite) TestMatchesBruteForce() {
	r := rand.New(rand.NewSource(2024))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(7)
		m := 1 + r.Intn(3)
		in := assign.Instance{Values: make([]int64, n), Divisors: make([]int64, m)}
		for j := range in.Values {
			in.Values[j] = r.Int63n(50)
		}
		for i := range in.Divisors {
			in.Divisors[i] = 1 + r.Int63n(9)
		}

		ans, err := assign.Solve(s.ctx, in)
		require.NoError(s.T(), err)
		require.Equal(s.T(), bruteForce(in), ans.Cost, "instance %+v", in)
		checkAssignment(s.T(), in, ans)
	}
}

// TestIdempotent: the answer is a pure function of the instance.
func (s *SolveSuite) TestIdempotent() {
	in := assign.Instance{
		Values:   []int64{17, 4, 9, 30, 2, 11, 8},
		Divisors: []int64{3, 5, 7},
	}
	first, err := assign.Solve(s.ctx, in)
	require.NoError(s.T(), err)
	second, err := assign.Solve(s.ctx, in)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestBellmanFordAgrees: seeding potentials does not change the optimum.
func (s *SolveSuite) TestBellmanFordAgrees() {
	in := assign.Instance{
		Values:   []int64{3, 11, 13, 15, 22, 1},
		Divisors: []int64{5, 6, 7, 4},
	}
	a, err := assign.MinCost(s.ctx, in)
	require.NoError(s.T(), err)
	b, err := assign.MinCost(s.ctx, in, flow.WithPotentialInit(flow.InitBellmanFord))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

func (s *SolveSuite) TestValidation() {
	_, err := assign.Solve(s.ctx, assign.Instance{Values: []int64{1}})
	require.ErrorIs(s.T(), err, assign.ErrNoCategories)

	_, err = assign.Solve(s.ctx, assign.Instance{Values: []int64{1}, Divisors: []int64{3, 0}})
	require.ErrorIs(s.T(), err, assign.ErrBadDivisor)
	require.Contains(s.T(), err.Error(), "B[1]=0")
}

// TestNegativeValueHugeDivisor: arc costs stay in [0, b) for negative values.
func (s *SolveSuite) TestNegativeValueHugeDivisor() {
	ans, err := assign.Solve(s.ctx, assign.Instance{Values: []int64{-1}, Divisors: []int64{math.MaxInt64}})
	require.NoError(s.T(), err)
	require.True(s.T(), ans.Feasible)
	require.Equal(s.T(), int64(1), ans.Cost)

	ans, err = assign.Solve(s.ctx, assign.Instance{Values: []int64{-7, -3}, Divisors: []int64{5}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2+3), ans.Cost)
}

func (s *SolveSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := assign.Solve(ctx, assign.Instance{Values: []int64{1, 2}, Divisors: []int64{3}})
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestLargestCase runs the largest size the original driver was tuned for.
func (s *SolveSuite) TestLargestCase() {
	if testing.Short() {
		s.T().Skip("skipping n=400, m=100 case in short mode")
	}
	in := largestInstance()

	start := time.Now()
	ans, err := assign.Solve(s.ctx, in)
	elapsed := time.Since(start)
	s.T().Logf("n=%d m=%d elapsed=%v", in.N(), in.M(), elapsed)

	require.NoError(s.T(), err)
	require.True(s.T(), ans.Feasible)
	checkAssignment(s.T(), in, ans)
	require.LessOrEqual(s.T(), elapsed, 2*time.Second, "time limit")
}

// TestLargestCaseMemory measures bytes allocated while solving the largest case.
func (s *SolveSuite) TestLargestCaseMemory() {
	if testing.Short() {
		s.T().Skip("skipping memory usage case in short mode")
	}
	in := largestInstance()

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	_, err := assign.Solve(s.ctx, in)
	require.NoError(s.T(), err)

	runtime.GC()
	runtime.ReadMemStats(&after)
	allocMB := float64(after.TotalAlloc-before.TotalAlloc) / (1 << 20)
	s.T().Logf("allocated %.2f MB", allocMB)

	require.LessOrEqual(s.T(), allocMB, 1024.0, "memory limit")
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// ------------------------------------------------------------------------
// Plain tests
// ------------------------------------------------------------------------

func TestRoundUpCost(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{5, 5, 0},
		{4, 5, 1},
		{6, 5, 4},
		{0, 7, 0},
		{1, 1, 0},
		{999_999_999, 1_000_000_000, 1},
		{1_000_000_000, 999_999_999, 999_999_998},
		{-1, 5, 1},
		{-10, 5, 0},
		{-1, math.MaxInt64, 1},
		{math.MinInt64, math.MaxInt64, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.a, tt.b), func(t *testing.T) {
			require.Equal(t, tt.want, assign.RoundUpCost(tt.a, tt.b))
		})
	}
}

func TestBuildNetwork_Shape(t *testing.T) {
	in := assign.Instance{Values: []int64{1, 2, 3}, Divisors: []int64{2, 3}}
	g, l, err := assign.BuildNetwork(in)
	require.NoError(t, err)

	require.Equal(t, 8, g.Len(), "n + m + 3 nodes")
	require.Equal(t, 0, l.Source)
	require.Equal(t, 6, l.Overflow)
	require.Equal(t, 7, l.Sink)
	require.Equal(t, 5, l.Category(1), "n + 1 + i")

	// n source arcs + n·m assignment arcs + 2m category arcs + 1 overflow arc
	arcs := g.Edges()
	require.Len(t, arcs, 3+6+4+1)

	last := arcs[len(arcs)-1]
	require.Equal(t, l.Overflow, last.From)
	require.Equal(t, l.Sink, last.To)
	require.Equal(t, int64(1), last.Capacity, "r = 3 mod 2")

	for _, a := range arcs {
		if l.IsElement(a.From) && l.IsCategory(a.To) {
			j, i := a.From-1, a.To-l.N-1
			require.Equal(t, assign.RoundUpCost(in.Values[j], in.Divisors[i]), a.Cost)
		}
		if l.IsCategory(a.From) && a.To == l.Sink {
			require.Equal(t, int64(1), a.Capacity, "q = 3 / 2")
		}
	}
}

func largestInstance() assign.Instance {
	const n, m = 400, 100
	in := assign.Instance{Values: make([]int64, n), Divisors: make([]int64, m)}
	for i := range in.Values {
		in.Values[i] = 1_000_000_000 - int64(i)
	}
	for i := range in.Divisors {
		in.Divisors[i] = 1_000_000_000 - int64(i)
	}

	return in
}
