// Package maxparametric drives a scalar parameter r downward until no
// negative cycle remains under a parameter-dependent edge-weight function,
// the core of the maximum parametric network solver.
//
// # MaxParametric
//
// Given a monotone-in-r distance function (edge weights only grow as r
// falls) and a zero_cancel function mapping a cycle to the r value that
// would make its total weight vanish, Run repeatedly:
//
//  1. builds the weight functor for the current r,
//  2. asks a negcycle.NegCycleFinder for every negative cycle under that
//     functor,
//  3. takes the minimum zero_cancel value across those cycles, and
//  4. lowers r to it, unless nothing improved — in which case it stops.
//
// The returned cycle is the "critical cycle": either empty (no cycle
// improves from the starting r) or the one whose zero_cancel exactly equals
// the final r, witnessing that no cycle under the final weights has a
// smaller zero_cancel.
//
// Termination depends on the caller's numeric type and zero_cancel
// producing discrete progress; Options.MaxIters is the escape hatch for
// numeric domains (notably floating point) that cannot guarantee it,
// surfacing ErrIterationBoundExceeded instead of looping forever.
//
// Time complexity: each outer iteration costs one full NegCycleFinder.Howard
// sweep, O(V·E); the number of outer iterations is problem- and
// numeric-type-dependent (see Options.MaxIters).
package maxparametric
