// Package digraphx is a small, dependency-light toolkit for negative-cycle
// detection and parametric cycle optimization over weighted directed
// multigraphs.
//
// What is digraphx?
//
//	A generics-first library built around four pieces:
//
//	  • graphview     — the read-only view every solver consumes: nodes and
//	                    outgoing edges as lazy iterators, plus a pluggable
//	                    distance map
//	  • negcycle      — Howard's policy-iteration method for finding
//	                    negative cycles, unconstrained or direction-filtered
//	  • maxparametric — descends a scalar parameter until no cycle can
//	                    improve it further (the generic engine behind
//	                    minimum cycle ratio)
//	  • cycleratio    — minimum cost/time cycle ratio, both as a direct
//	                    maxparametric instantiation and as a dual,
//	                    alternating-direction solver
//
// Why digraphx?
//
//   - Graph-agnostic — GraphView is an interface; adjacency maps, dense
//     slices, or anything else you can iterate satisfies it
//   - Lazy by construction — cycles are produced as range-over-func
//     iterators; a caller that stops early leaves no dangling state
//   - Numerically generic — every solver is parameterized over a single
//     ordered numeric type, not hard-coded to int or float64
//   - Pure Go — no cgo, no runtime dependencies beyond testify in tests
//
// Quick shape:
//
//	g := graphview.NewMapGraph[string, int]()
//	g.AddEdge("a", "b", 2)
//	g.AddEdge("b", "a", -5)
//
//	dist := graphview.NewMapDistance(map[string]int{"a": 0, "b": 0})
//	finder := negcycle.NewNegCycleFinder[string, int, int](g)
//	for cycle := range finder.Howard(dist, func(w int) int { return w }) {
//	    _ = cycle // a negative cycle's edge payloads, in traversal order
//	}
//
// See each subpackage's doc comment for the algorithm it implements and the
// invariants it upholds.
package digraphx
