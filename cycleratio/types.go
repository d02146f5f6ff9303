package cycleratio

import (
	"github.com/katalvlaran/digraphx/graphview"
	"github.com/katalvlaran/digraphx/negcycle"
)

// Edge is the cost/time payload the ratio solvers operate on. Time must be
// positive for the problem to be well-posed; the solvers check every edge's
// Time against the graph view before running. Cost is not checked.
type Edge[Num graphview.Number] struct {
	Cost Num
	Time Num
}

func validateEdges[N comparable, Num graphview.Number](g graphview.GraphView[N, Edge[Num]]) error {
	var zero Num
	for n := range g.Nodes() {
		for e := range g.From(n) {
			if e.Payload.Time <= zero {
				return ErrNonPositiveTime
			}
		}
	}
	return nil
}

func sumCostTime[N comparable, Num graphview.Number](c negcycle.Cycle[N, Edge[Num]]) (Num, Num) {
	var sumCost, sumTime Num
	for _, e := range c {
		sumCost += e.Cost
		sumTime += e.Time
	}
	return sumCost, sumTime
}
