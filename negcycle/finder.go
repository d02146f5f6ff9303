package negcycle

import (
	"iter"

	"github.com/katalvlaran/digraphx/graphview"
)

// NegCycleFinder detects negative cycles in a weighted directed multigraph
// via Howard's policy-iteration method. It is constructed once around a
// GraphView and may be reused across multiple Howard calls; each call
// resets the finder's internal predecessor policy.
//
// Concurrency: a single NegCycleFinder must not have two Howard iterators
// advanced concurrently. The GraphView it borrows may be shared read-only
// with other finders.
type NegCycleFinder[N comparable, E any, D graphview.Number] struct {
	g      graphview.GraphView[N, E]
	policy map[N]policyEntry[N, E]
}

// NewNegCycleFinder constructs a finder around g. g is borrowed for the
// lifetime of the finder and must remain valid (and report a stable node
// set) across every Howard call.
func NewNegCycleFinder[N comparable, E any, D graphview.Number](g graphview.GraphView[N, E]) *NegCycleFinder[N, E, D] {
	return &NegCycleFinder[N, E, D]{g: g}
}

// Howard returns a lazy, possibly empty sequence of negative cycles found in
// g under weightOf, using dist as the (caller-owned, mutated in place)
// working distance map.
//
// Algorithm:
//  1. Clear the predecessor policy.
//  2. Repeat: relax every edge once; if nothing changed, stop with an empty
//     remainder. Otherwise search the policy graph for cycles; emit each,
//     and stop after this pass if at least one was found.
//
// Every cycle yielded satisfies Σ weight(e) < 0 under weightOf — violating
// this is a contract violation and panics rather than silently returning a
// bad cycle.
//
// Time: O(V·E) relaxations plus one O(V) traversal per emitting pass.
func (f *NegCycleFinder[N, E, D]) Howard(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
) iter.Seq[Cycle[N, E]] {
	return func(yield func(Cycle[N, E]) bool) {
		f.policy = make(map[N]policyEntry[N, E])
		for {
			if !f.relax(dist, weightOf) {
				return
			}

			foundAny := false
			for handle := range detectHandles(f.g.Nodes(), f.policy) {
				if !isNegativePred(f.policy, dist, weightOf, handle) {
					panic((&nonNegativeCycleError{handle: handle}).Error())
				}
				foundAny = true
				if !yield(reconstruct(f.policy, handle)) {
					return
				}
			}
			if foundAny {
				return
			}
		}
	}
}

// relax performs one relaxation pass over every node's outgoing edges in
// the graph's iteration order, updating dist and f.policy in place.
// Reports whether any distance changed.
func (f *NegCycleFinder[N, E, D]) relax(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
) bool {
	changed := false
	for u := range f.g.Nodes() {
		du := dist.At(u)
		for e := range f.g.From(u) {
			d := du + weightOf(e.Payload)
			if dist.At(e.Target) > d {
				dist.Set(e.Target, d)
				f.policy[e.Target] = policyEntry[N, E]{Other: u, Edge: e.Payload}
				changed = true
			}
		}
	}

	return changed
}
