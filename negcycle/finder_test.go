package negcycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/digraphx/graphview"
	"github.com/katalvlaran/digraphx/negcycle"
)

// NegCycleFinderSuite exercises NegCycleFinder.Howard against a handful of
// literal graphs and the soundness/completeness properties it must uphold.
type NegCycleFinderSuite struct {
	suite.Suite
}

func TestNegCycleFinderSuite(t *testing.T) {
	suite.Run(t, new(NegCycleFinderSuite))
}

func weightOfInt(w int) int { return w }

func initDist(nodes ...int) graphview.MapDistance[int, int] {
	init := make(map[int]int, len(nodes))
	for _, n := range nodes {
		init[n] = 0
	}
	return graphview.NewMapDistance(init)
}

func collect[N comparable, E any](s negcycle.Cycle[N, E]) []E {
	return append([]E(nil), s...)
}

// Positive-weight triangle with parallel edges: no negative cycle.
func (s *NegCycleFinderSuite) TestPositiveTriangleYieldsNoCycle() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 0, 0)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 1, 1)
	g.AddEdge(2, 0, 2)
	g.AddEdge(2, 0, 1)

	dist := initDist(0, 1, 2)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	var cycles []negcycle.Cycle[int, int]
	for c := range finder.Howard(dist, weightOfInt) {
		cycles = append(cycles, c)
	}
	require.Empty(s.T(), cycles)
}

// Plain negative cycle summing to -1.
func (s *NegCycleFinderSuite) TestPlainNegativeCycle() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -3)
	g.AddEdge(2, 0, 1)

	dist := initDist(0, 1, 2)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	var cycles []negcycle.Cycle[int, int]
	for c := range finder.Howard(dist, weightOfInt) {
		cycles = append(cycles, c)
	}
	require.Len(s.T(), cycles, 1)

	sum := 0
	for _, w := range collect(cycles[0]) {
		sum += w
	}
	require.Equal(s.T(), -1, sum)
}

// Negative self-loop yields exactly one cycle of one edge.
func (s *NegCycleFinderSuite) TestNegativeSelfLoop() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 0, -1)

	dist := initDist(0)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	var cycles []negcycle.Cycle[int, int]
	for c := range finder.Howard(dist, weightOfInt) {
		cycles = append(cycles, c)
	}
	require.Len(s.T(), cycles, 1)
	require.Len(s.T(), cycles[0], 1)
	require.Equal(s.T(), -1, cycles[0][0])
}

// Linear DAG with arbitrary negative weights yields no cycle.
func (s *NegCycleFinderSuite) TestLinearDAGYieldsNoCycle() {
	g := graphview.NewMapGraph[int, int]()
	const n = 6
	weights := []int{-5, 3, -1, -2, 4}
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1, weights[i%len(weights)])
	}
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}

	dist := initDist(nodes...)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	var cycles []negcycle.Cycle[int, int]
	for c := range finder.Howard(dist, weightOfInt) {
		cycles = append(cycles, c)
	}
	require.Empty(s.T(), cycles)
}

// A positive self-loop yields no cycle, complementing the negative case.
func (s *NegCycleFinderSuite) TestPositiveSelfLoopYieldsNoCycle() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 0, 1)

	dist := initDist(0)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	count := 0
	for range finder.Howard(dist, weightOfInt) {
		count++
	}
	require.Zero(s.T(), count)
}

// Every yielded cycle sums negative, and a graph containing a negative
// cycle yields at least one.
func (s *NegCycleFinderSuite) TestSoundnessAndCompletenessOnMixedGraph() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, -5)
	g.AddEdge(2, 0, 1)
	g.AddEdge(1, 3, 10)
	g.AddEdge(3, 1, -20)

	dist := initDist(0, 1, 2, 3)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	var cycles []negcycle.Cycle[int, int]
	for c := range finder.Howard(dist, weightOfInt) {
		cycles = append(cycles, c)
	}
	require.NotEmpty(s.T(), cycles)
	for _, c := range cycles {
		sum := 0
		for _, w := range c {
			sum += w
		}
		require.Less(s.T(), sum, 0)
	}
}

// No false positives on an all-nonnegative graph.
func (s *NegCycleFinderSuite) TestNoFalsePositiveOnNonnegativeGraph() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 0, 4)
	g.AddEdge(2, 1, 1)

	dist := initDist(0, 1, 2)
	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	count := 0
	for range finder.Howard(dist, weightOfInt) {
		count++
	}
	require.Zero(s.T(), count)
}

// The yes/no result does not depend on the initial distance values.
func (s *NegCycleFinderSuite) TestDistanceInitIrrelevance() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -3)
	g.AddEdge(2, 0, 1)

	zero := initDist(0, 1, 2)
	skewed := graphview.NewMapDistance(map[int]int{0: 1000, 1: -500, 2: 250})

	n1, n2 := 0, 0
	for range negcycle.NewNegCycleFinder[int, int, int](g).Howard(zero, weightOfInt) {
		n1++
	}
	for range negcycle.NewNegCycleFinder[int, int, int](g).Howard(skewed, weightOfInt) {
		n2++
	}
	require.Equal(s.T(), n1 > 0, n2 > 0)
}

// Two consecutive invocations on a fresh distance map agree on the number
// of cycles found.
func (s *NegCycleFinderSuite) TestIdempotentAcrossInvocations() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -3)
	g.AddEdge(2, 0, 1)

	finder := negcycle.NewNegCycleFinder[int, int, int](g)

	first := 0
	for range finder.Howard(initDist(0, 1, 2), weightOfInt) {
		first++
	}
	second := 0
	for range finder.Howard(initDist(0, 1, 2), weightOfInt) {
		second++
	}
	require.Equal(s.T(), first, second)
}

// Early abandonment of the iterator (breaking before exhaustion) must not
// panic or leak state into the next Howard call.
func (s *NegCycleFinderSuite) TestAbandoningIteratorIsSafe() {
	g := graphview.NewMapGraph[int, int]()
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, -5)
	g.AddEdge(2, 0, 1)

	finder := negcycle.NewNegCycleFinder[int, int, int](g)
	for range finder.Howard(initDist(0, 1, 2), weightOfInt) {
		break
	}

	count := 0
	for range finder.Howard(initDist(0, 1, 2), weightOfInt) {
		count++
	}
	require.Equal(s.T(), 1, count)
}
