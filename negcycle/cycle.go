package negcycle

import (
	"iter"

	"github.com/katalvlaran/digraphx/graphview"
)

// Cycle is an ordered, nonempty sequence of edge payloads reconstructed from
// a policy, starting and ending at the same node. Orientation follows the
// policy it was reconstructed from: a predecessor policy yields a cycle
// traversed against edge direction, a successor policy yields one traversed
// along edge direction. Either way the edge set and weight sum are the same.
type Cycle[N comparable, E any] []E

// policyEntry records the "other endpoint" of a node's current best policy
// edge, plus the edge payload itself. For a predecessor policy, Other is
// the predecessor of the key; for a successor policy, Other is the
// successor of the key.
type policyEntry[N comparable, E any] struct {
	Other N
	Edge  E
}

// detectHandles walks policy, the current predecessor- or successor-policy
// graph, in the iteration order of nodes, and yields one handle node per
// cycle discovered — a node reached twice while walking the same seed's
// tail. A node is marked visited before it is examined, so the seed itself
// counts as visited at step zero, and each node across all seeds is
// classified exactly once: the policy graph is a forest of rhos, a tail
// feeding into at most one cycle.
func detectHandles[N comparable, E any](nodes iter.Seq[N], policy map[N]policyEntry[N, E]) iter.Seq[N] {
	return func(yield func(N) bool) {
		visited := make(map[N]N, len(policy))
		for seed := range nodes {
			if _, ok := visited[seed]; ok {
				continue
			}
			visited[seed] = seed
			u := seed
			for {
				entry, ok := policy[u]
				if !ok {
					break // dead end: u has no policy edge
				}
				w := entry.Other
				if owner, seen := visited[w]; seen {
					if owner == seed {
						if !yield(w) {
							return
						}
					}
					break
				}
				visited[w] = seed
				u = w
			}
		}
	}
}

// reconstruct walks policy from handle, collecting edge payloads, until it
// returns to handle. Every node on a genuine policy cycle
// was itself relaxed into policy to be reachable here at all; a missing
// entry means some upstream edge targets a node outside the GraphView's own
// Nodes() enumeration, which reconstruct treats as ErrDanglingPolicyEdge.
func reconstruct[N comparable, E any](policy map[N]policyEntry[N, E], handle N) Cycle[N, E] {
	cur := handle
	var cyc Cycle[N, E]
	for {
		entry, ok := policy[cur]
		if !ok {
			panic(ErrDanglingPolicyEdge)
		}
		cyc = append(cyc, entry.Edge)
		cur = entry.Other
		if cur == handle {
			return cyc
		}
	}
}

// isNegativePred verifies that, walking the predecessor policy back to
// handle, at least one edge (u, e) on the cycle satisfies
// dist[v] > dist[u] + weightOf(e), where v is the successor along the
// traversal. This is the precondition Howard's method asserts before
// yielding a cycle from the predecessor policy.
func isNegativePred[N comparable, E any, D graphview.Number](
	policy map[N]policyEntry[N, E],
	dist graphview.DistanceMap[N, D],
	weightOf graphview.WeightFunc[E, D],
	handle N,
) bool {
	v := handle
	for {
		entry := policy[v]
		u, e := entry.Other, entry.Edge
		if dist.At(v) > dist.At(u)+weightOf(e) {
			return true
		}
		v = u
		if v == handle {
			return false
		}
	}
}
