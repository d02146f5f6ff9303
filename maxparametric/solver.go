package maxparametric

import (
	"github.com/katalvlaran/digraphx/graphview"
	"github.com/katalvlaran/digraphx/negcycle"
)

// DistanceFunc computes an edge's weight at parameter r. It must be
// monotone such that as r decreases, every edge's weight only grows: this
// is the correctness precondition Run relies on and does not itself
// verify.
type DistanceFunc[E any, Num graphview.Number] func(r Num, e E) Num

// ZeroCancelFunc maps a cycle to the parameter value that would make its
// total weight exactly zero.
type ZeroCancelFunc[N comparable, E any, Num graphview.Number] func(cycle negcycle.Cycle[N, E]) Num

// MaxParametric drives a scalar parameter r downward over a fixed graph
// view until no cycle under the induced weights improves it further. It is
// constructed once and Run may be called multiple times; each Run call
// uses a fresh NegCycleFinder but the caller's DistanceMap carries
// whatever state it held on entry.
type MaxParametric[N comparable, E any, Num graphview.Number] struct {
	g    graphview.GraphView[N, E]
	opts Options
}

// New constructs a MaxParametric solver over g.
func New[N comparable, E any, Num graphview.Number](g graphview.GraphView[N, E], opts Options) *MaxParametric[N, E, Num] {
	return &MaxParametric[N, E, Num]{g: g, opts: opts}
}

// Run executes the following loop:
//
//	loop:
//	  weight_of(e) := distance(r_opt, e)
//	  r_min := r_opt ; c_min := ∅
//	  for c in NegCycleFinder.howard(dist, weight_of):
//	    r := zero_cancel(c)
//	    if r < r_min: r_min := r ; c_min := c
//	  if r_min >= r_opt: break
//	  r_opt := r_min ; c_opt := c_min
//	return r_opt, c_opt
//
// dist is the caller-owned working distance map, mutated in place across
// every inner Howard call exactly as negcycle.NegCycleFinder.Howard
// specifies. The first cycle attaining the minimum r in a given pass is
// retained as the tie-break.
func (mp *MaxParametric[N, E, Num]) Run(
	rOpt Num,
	distance DistanceFunc[E, Num],
	zeroCancel ZeroCancelFunc[N, E, Num],
	dist graphview.DistanceMap[N, Num],
) (Num, negcycle.Cycle[N, E], error) {
	finder := negcycle.NewNegCycleFinder[N, E, Num](mp.g)

	var cOpt negcycle.Cycle[N, E]
	iters := 0
	for {
		if mp.opts.MaxIters > 0 && iters >= mp.opts.MaxIters {
			return rOpt, cOpt, ErrIterationBoundExceeded
		}
		iters++

		weightOf := func(e E) Num { return distance(rOpt, e) }

		rMin := rOpt
		var cMin negcycle.Cycle[N, E]
		for c := range finder.Howard(dist, weightOf) {
			if r := zeroCancel(c); r < rMin {
				rMin = r
				cMin = c
			}
		}

		if rMin >= rOpt {
			break
		}
		rOpt = rMin
		cOpt = cMin
	}

	return rOpt, cOpt, nil
}
