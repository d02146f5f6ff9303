package negcycle

import (
	"iter"

	"github.com/katalvlaran/digraphx/graphview"
)

// UpdateOK is a caller-supplied relaxation filter: given the currently
// recorded distance and a candidate strictly-better distance, it reports
// whether the update should actually be applied. Returning true
// unconditionally recovers plain Howard relaxation.
type UpdateOK[D graphview.Number] func(have, candidate D) bool

// ConstrainedNegCycleFinder extends Howard's method with UpdateOK and two
// directions of relaxation: HowardPred relaxes forward and maintains a
// predecessor policy, HowardSucc relaxes backward and maintains a
// successor policy. Callers alternate directions when a restrictive
// UpdateOK blocks one direction from ever exposing a cycle.
//
// As with NegCycleFinder, a ConstrainedNegCycleFinder may be reused across
// calls; each call resets only the policy it maintains.
type ConstrainedNegCycleFinder[N comparable, E any, D graphview.Number] struct {
	g          graphview.GraphView[N, E]
	predPolicy map[N]policyEntry[N, E]
	succPolicy map[N]policyEntry[N, E]
}

// NewConstrainedNegCycleFinder constructs a finder around g.
func NewConstrainedNegCycleFinder[N comparable, E any, D graphview.Number](g graphview.GraphView[N, E]) *ConstrainedNegCycleFinder[N, E, D] {
	return &ConstrainedNegCycleFinder[N, E, D]{g: g}
}

// HowardPred relaxes forward (dist[v] against dist[u] + weightOf(e)) under
// updateOK and emits cycles from the resulting predecessor policy, exactly
// as NegCycleFinder.Howard does but gated by updateOK. Every emitted cycle
// is asserted negative, identically to the unconstrained finder.
func (f *ConstrainedNegCycleFinder[N, E, D]) HowardPred(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
	updateOK UpdateOK[D],
) iter.Seq[Cycle[N, E]] {
	return func(yield func(Cycle[N, E]) bool) {
		f.predPolicy = make(map[N]policyEntry[N, E])
		for {
			if !f.relaxPred(dist, weightOf, updateOK) {
				return
			}

			foundAny := false
			for handle := range detectHandles(f.g.Nodes(), f.predPolicy) {
				if !isNegativePred(f.predPolicy, dist, weightOf, handle) {
					panic((&nonNegativeCycleError{handle: handle}).Error())
				}
				foundAny = true
				if !yield(reconstruct(f.predPolicy, handle)) {
					return
				}
			}
			if foundAny {
				return
			}
		}
	}
}

// HowardSucc relaxes in reverse (dist[u] against dist[v] - weightOf(e))
// under updateOK and emits cycles from the resulting successor policy.
// Unlike HowardPred, the reconstructed cycles are NOT asserted negative —
// this is intentional: callers must not rely on Σ weight(e) < 0 for
// successor-produced cycles.
func (f *ConstrainedNegCycleFinder[N, E, D]) HowardSucc(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
	updateOK UpdateOK[D],
) iter.Seq[Cycle[N, E]] {
	return func(yield func(Cycle[N, E]) bool) {
		f.succPolicy = make(map[N]policyEntry[N, E])
		for {
			if !f.relaxSucc(dist, weightOf, updateOK) {
				return
			}

			foundAny := false
			for handle := range detectHandles(f.g.Nodes(), f.succPolicy) {
				foundAny = true
				if !yield(reconstruct(f.succPolicy, handle)) {
					return
				}
			}
			if foundAny {
				return
			}
		}
	}
}

func (f *ConstrainedNegCycleFinder[N, E, D]) relaxPred(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
	updateOK UpdateOK[D],
) bool {
	changed := false
	for u := range f.g.Nodes() {
		du := dist.At(u)
		for e := range f.g.From(u) {
			d := du + weightOf(e.Payload)
			have := dist.At(e.Target)
			if have > d && updateOK(have, d) {
				dist.Set(e.Target, d)
				f.predPolicy[e.Target] = policyEntry[N, E]{Other: u, Edge: e.Payload}
				changed = true
			}
		}
	}

	return changed
}

func (f *ConstrainedNegCycleFinder[N, E, D]) relaxSucc(
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
	updateOK UpdateOK[D],
) bool {
	changed := false
	for u := range f.g.Nodes() {
		for e := range f.g.From(u) {
			v := e.Target
			d := dist.At(v) - weightOf(e.Payload)
			have := dist.At(u)
			if have < d && updateOK(have, d) {
				dist.Set(u, d)
				f.succPolicy[u] = policyEntry[N, E]{Other: v, Edge: e.Payload}
				changed = true
			}
		}
	}

	return changed
}
