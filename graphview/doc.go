// Package graphview defines the read-only abstractions shared by the
// negcycle, maxparametric, and cycleratio packages: a graph view (node and
// edge iteration), a distance map, and the numeric constraint every
// algorithm is generic over.
//
// Key features:
//
//   - GraphView[N, E] — repeated, stable-order iteration over nodes and, per
//     node, its outgoing edges. Implementations are never mutated by the
//     algorithms that borrow them.
//   - DistanceMap[N, D] — caller-owned, mutable node→distance mapping.
//     The algorithms read and write it in place; they never allocate or
//     replace it.
//   - Number — the arithmetic/order constraint every distance and parameter
//     domain must satisfy: addition, subtraction, and a total order.
//
// Two concrete GraphView implementations are provided for convenience:
// MapGraph (arbitrary, comparable node identifiers) and SliceGraph
// (contiguous integer node identifiers 0..n-1, needing no adapter at all
// since a [][]Edge[int, E] slice already satisfies GraphView[int, E] once
// wrapped).
//
// Complexity: all operations here are O(1) or iterate their argument once;
// no algorithm in this package is more than a thin iterator shim.
package graphview
