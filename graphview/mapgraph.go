package graphview

import "iter"

// MapGraph is a read-only, adjacency-list GraphView keyed by an arbitrary
// comparable node identifier: a map from node to its outgoing edges, built
// once by the caller (e.g. via NewMapGraph) and never touched again by the
// algorithms that borrow it.
//
// MapGraph intentionally offers no deletion or edge-removal API beyond
// AddNode/AddEdge: it is a construction-time convenience, not a general
// mutable graph structure. Callers build the adjacency map through those
// two methods.
type MapGraph[N comparable, E any] struct {
	adjacency map[N][]Edge[N, E]
	// order preserves node-insertion order so Nodes() iterates
	// deterministically across repeated calls, as GraphView requires.
	order []N
}

// NewMapGraph constructs an empty MapGraph. Use AddNode and AddEdge to
// populate it before handing it to a finder.
func NewMapGraph[N comparable, E any]() *MapGraph[N, E] {
	return &MapGraph[N, E]{adjacency: make(map[N][]Edge[N, E])}
}

// AddNode registers n with no outgoing edges if it is not already present.
// It is a no-op if n has already been added (directly or as an edge
// target/source).
func (g *MapGraph[N, E]) AddNode(n N) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = nil
	g.order = append(g.order, n)
}

// AddEdge appends a directed edge from→to carrying payload. Both endpoints
// are registered via AddNode if not already present. Parallel edges and
// self-loops are permitted; the finders place no restriction on either.
func (g *MapGraph[N, E]) AddEdge(from, to N, payload E) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], Edge[N, E]{Target: to, Payload: payload})
}

// Nodes implements GraphView.
func (g *MapGraph[N, E]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// From implements GraphView.
func (g *MapGraph[N, E]) From(n N) iter.Seq[Edge[N, E]] {
	edges := g.adjacency[n]
	return func(yield func(Edge[N, E]) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

// SliceGraph adapts a contiguous, integer-indexed sequence of per-node edge
// lists into a GraphView[int, E], with no copying or reshaping required
// between the two shapes.
type SliceGraph[E any] struct {
	out [][]Edge[int, E]
}

// NewSliceGraph wraps out, a slice indexed 0..len(out)-1 of each node's
// outgoing edges, as a GraphView.
func NewSliceGraph[E any](out [][]Edge[int, E]) *SliceGraph[E] {
	return &SliceGraph[E]{out: out}
}

// Nodes implements GraphView, visiting indices in order.
func (g *SliceGraph[E]) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range g.out {
			if !yield(i) {
				return
			}
		}
	}
}

// From implements GraphView.
func (g *SliceGraph[E]) From(n int) iter.Seq[Edge[int, E]] {
	var edges []Edge[int, E]
	if n >= 0 && n < len(g.out) {
		edges = g.out[n]
	}
	return func(yield func(Edge[int, E]) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}
