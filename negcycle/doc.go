// Package negcycle implements Howard's policy-iteration method for
// detecting negative cycles in a weighted directed multigraph, plus a
// constrained variant that relaxes under a caller-supplied update filter in
// either the predecessor or the successor direction.
//
// # NegCycleFinder — Howard's method
//
// Howard builds a predecessor policy by relaxing every edge once per pass;
// whenever a pass makes no further improvement the search stops with no
// cycle. Whenever a pass does improve at least one distance, the policy
// graph is searched for cycles: a cycle in the policy graph witnesses a
// negative cycle in the input graph. Cycles are produced lazily, one per
// detected policy loop, via a Go 1.23 range-over-func iterator — the
// caller's yield callback is the sole suspension point, so an abandoned
// iteration leaves no goroutine or channel behind.
//
// Time complexity: O(V·E) relaxations plus one O(V) traversal per emitting
// pass. Memory: O(V) for the policy map and the per-pass visited set.
//
// # ConstrainedNegCycleFinder
//
// Extends the same relax/detect loop with an UpdateOK(have, candidate D)
// bool filter consulted alongside the usual strict-improvement test, and
// offers both HowardPred (forward relaxation, predecessor policy) and
// HowardSucc (reverse relaxation, successor policy) entry points so a
// caller can alternate directions when a restrictive filter blocks forward
// relaxation from ever exposing a cycle. HowardSucc does not assert
// negativity of its reconstructed cycles — see the package-level Open
// Questions note in DESIGN.md.
package negcycle
