package cycleratio

import (
	"iter"

	"github.com/katalvlaran/digraphx/graphview"
	"github.com/katalvlaran/digraphx/negcycle"
)

// QOptions configures MinParametricQ.Run.
type QOptions struct {
	// MaxIters bounds the number of outer alternating passes; zero means
	// unbounded (see maxparametric.Options.MaxIters for the same
	// rationale).
	MaxIters int

	// PickOneOnly stops collecting cycles within a single pass as soon as
	// one strictly improves r_max, trading thoroughness for speed.
	PickOneOnly bool
}

// MinParametricQ solves the same cost/time ratio problem as MinCycleRatio,
// but built atop negcycle.ConstrainedNegCycleFinder: each outer pass
// alternates between the successor and predecessor relaxation directions,
// starting with successor, ascending a running maximum r_max rather than
// descending a minimum — the dual formulation of the same problem.
type MinParametricQ[N comparable, Num graphview.Number] struct {
	g    graphview.GraphView[N, Edge[Num]]
	opts QOptions
}

// NewMinParametricQ constructs a solver over g.
func NewMinParametricQ[N comparable, Num graphview.Number](
	g graphview.GraphView[N, Edge[Num]],
	opts QOptions,
) *MinParametricQ[N, Num] {
	return &MinParametricQ[N, Num]{g: g, opts: opts}
}

// Run drives r_max ascending under updateOK, alternating HowardSucc and
// HowardPred each pass, until a full pass yields no improvement:
//
//	loop:
//	  weight_of(e) := cost(e) - r_opt·time(e)
//	  r_max := r_opt ; c_max := ∅
//	  for c in <alternating direction>(dist, weight_of, update_ok):
//	    r := zero_cancel(c)
//	    if r > r_max: r_max := r ; c_max := c ; if PickOneOnly: break
//	  if r_max <= r_opt: break
//	  r_opt := r_max ; c_opt := c_max
//	return r_opt, c_opt
func (m *MinParametricQ[N, Num]) Run(
	rInit Num,
	updateOK negcycle.UpdateOK[Num],
	dist graphview.DistanceMap[N, Num],
) (Num, negcycle.Cycle[N, Edge[Num]], error) {
	if err := validateEdges[N, Num](m.g); err != nil {
		return rInit, nil, err
	}

	finder := negcycle.NewConstrainedNegCycleFinder[N, Edge[Num], Num](m.g)
	zeroCancel := func(c negcycle.Cycle[N, Edge[Num]]) Num {
		sumCost, sumTime := sumCostTime[N, Num](c)
		return sumCost / sumTime
	}

	rOpt := rInit
	var cOpt negcycle.Cycle[N, Edge[Num]]
	useSucc := true
	iters := 0
	for {
		if m.opts.MaxIters > 0 && iters >= m.opts.MaxIters {
			return rOpt, cOpt, ErrIterationBoundExceeded
		}
		iters++

		weightOf := func(e Edge[Num]) Num { return e.Cost - rOpt*e.Time }

		rMax := rOpt
		var cMax negcycle.Cycle[N, Edge[Num]]
		var seq iter.Seq[negcycle.Cycle[N, Edge[Num]]]
		if useSucc {
			seq = finder.HowardSucc(dist, weightOf, updateOK)
		} else {
			seq = finder.HowardPred(dist, weightOf, updateOK)
		}
		for c := range seq {
			if r := zeroCancel(c); r > rMax {
				rMax = r
				cMax = c
				if m.opts.PickOneOnly {
					break
				}
			}
		}
		useSucc = !useSucc

		if rMax <= rOpt {
			break
		}
		rOpt = rMax
		cOpt = cMax
	}

	return rOpt, cOpt, nil
}
