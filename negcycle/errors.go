package negcycle

import "fmt"

// ErrDanglingPolicyEdge indicates a malformed graph view: a policy entry
// points at an edge whose target node never appeared in GraphView.Nodes().
// This is a programming-error contract violation, not a recoverable
// condition — it is only ever surfaced if a caller's GraphView reports an
// edge to a node it does not itself enumerate.
var ErrDanglingPolicyEdge = fmt.Errorf("negcycle: %w", errDanglingPolicyEdge)

var errDanglingPolicyEdge = fmt.Errorf("policy edge targets a node absent from graph view iteration")

// nonNegativeCycleError reports a violated invariant: howard_pred produced a
// policy cycle that the negativity check could not witness as negative.
// This can only happen if the caller's weight functor is impure (returns
// different values for the same edge across calls within one Howard
// invocation) or the GraphView reports an unstable iteration order; both
// are contract violations on the caller's part.
type nonNegativeCycleError struct {
	handle any
}

func (e *nonNegativeCycleError) Error() string {
	return fmt.Sprintf("negcycle: contract violation: cycle at handle %v is not negative", e.handle)
}
