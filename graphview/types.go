package graphview

import (
	"cmp"
	"iter"
)

// Number is the arithmetic/order constraint shared by every distance domain
// D and parameter domain R in this module. Go has no operator-overloading
// mechanism for arbitrary types, so the constraint is restricted to the
// built-in numeric kinds (and named types over them) that support +, -, and
// a total order natively. A caller needing rational or big-integer
// arithmetic must scale into one of these kinds (e.g. fixed-point
// integers) — this module does not abstract arithmetic behind method
// calls, representing weights as concrete numeric kinds rather than an
// algebra interface.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
	cmp.Ordered
}

// Edge is the opaque payload attached to a directed connection from one node
// to another. Target identifies the edge's destination; Payload is
// interpreted only by the caller's weight functor, never by the finder.
type Edge[N comparable, E any] struct {
	Target  N
	Payload E
}

// GraphView is a read-only, repeatedly-iterable view over a finite directed
// multigraph. Nodes and From must report a stable order across repeated
// calls within a single algorithm invocation, but that order is otherwise
// unspecified.
//
// Implementations must never be mutated by algorithms that borrow them, and
// must report the same node set on every call to Nodes.
type GraphView[N comparable, E any] interface {
	// Nodes yields every node identifier in the graph, in a stable order.
	Nodes() iter.Seq[N]

	// From yields, in a stable order, the outgoing edges of n: pairs of
	// (target node, edge payload). From a node absent from the graph it
	// yields nothing.
	From(n N) iter.Seq[Edge[N, E]]
}

// DistanceMap is a mutable, caller-owned node→distance mapping. Every node
// that appears in the GraphView the algorithms are called with must have an
// entry before the call; the algorithms update entries in place.
type DistanceMap[N comparable, D Number] interface {
	// At returns the current distance recorded for n.
	At(n N) D

	// Set records d as the current distance for n.
	Set(n N, d D)
}

// WeightFunc is a pure function mapping an edge payload to a value in D. It
// is called at most once per edge per relaxation pass within one Howard
// invocation.
type WeightFunc[E any, D Number] func(e E) D
