// Package cycleratio specializes maxparametric and negcycle to the minimum
// cost/time cycle-ratio problem: find
//
//	min over cycles C of (Σ cost(e) / Σ time(e))
//
// over a weighted directed multigraph whose edges each carry a positive
// cost and a positive time.
//
// # MinCycleRatio
//
// Delegates directly to maxparametric.MaxParametric with
//
//	distance(r, e) := cost(e) - r·time(e)
//	zero_cancel(C)  := Σcost(C) / Σtime(C)
//
// The returned critical cycle realizes the minimum ratio, and the returned
// parameter equals that ratio on return.
//
// # MinParametricQ
//
// The same parametric shape, but built on
// negcycle.ConstrainedNegCycleFinder instead of negcycle.NegCycleFinder:
// each outer pass alternates between HowardSucc and HowardPred (starting
// with HowardSucc), ascending a running maximum r_max instead of descending
// r_min, terminating when a full pass improves nothing. PickOneOnly stops
// collecting cycles within a pass as soon as one strictly improves r_max,
// trading thoroughness for speed. This variant ascends where MaxParametric
// descends because it solves the dual "min over feasible" formulation of
// the same ratio problem.
package cycleratio
