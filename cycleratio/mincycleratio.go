package cycleratio

import (
	"github.com/katalvlaran/digraphx/graphview"
	"github.com/katalvlaran/digraphx/maxparametric"
	"github.com/katalvlaran/digraphx/negcycle"
)

// MinCycleRatio solves min over cycles C of (Σcost(e)/Σtime(e)) over a
// fixed graph view, by delegating to maxparametric.MaxParametric with the
// cost/time distance and zero-cancel functions defined in Run.
type MinCycleRatio[N comparable, Num graphview.Number] struct {
	g    graphview.GraphView[N, Edge[Num]]
	opts maxparametric.Options
}

// NewMinCycleRatio constructs a solver over g.
func NewMinCycleRatio[N comparable, Num graphview.Number](
	g graphview.GraphView[N, Edge[Num]],
	opts maxparametric.Options,
) *MinCycleRatio[N, Num] {
	return &MinCycleRatio[N, Num]{g: g, opts: opts}
}

// Run returns the minimum cycle ratio r* and a cycle achieving it. rInit is
// the starting parameter value (conventionally a safe upper bound on the
// true minimum ratio); dist is the caller-owned working distance map,
// mutated in place.
func (m *MinCycleRatio[N, Num]) Run(
	rInit Num,
	dist graphview.DistanceMap[N, Num],
) (Num, negcycle.Cycle[N, Edge[Num]], error) {
	if err := validateEdges[N, Num](m.g); err != nil {
		return rInit, nil, err
	}

	distance := func(r Num, e Edge[Num]) Num { return e.Cost - r*e.Time }
	zeroCancel := func(c negcycle.Cycle[N, Edge[Num]]) Num {
		sumCost, sumTime := sumCostTime[N, Num](c)
		return sumCost / sumTime
	}

	solver := maxparametric.New[N, Edge[Num], Num](m.g, m.opts)
	return solver.Run(rInit, distance, zeroCancel, dist)
}
