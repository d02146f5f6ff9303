package maxparametric

import "fmt"

// ErrIterationBoundExceeded is returned by Run when Options.MaxIters is
// positive and the outer parameter-descent loop reaches it without
// converging. The solver performs no numeric epsilon discipline itself; a
// caller using a floating-point Num that cannot guarantee finite progress
// is expected to set MaxIters and handle this error rather than rely on
// exact convergence.
var ErrIterationBoundExceeded = fmt.Errorf("maxparametric: %w", errIterationBoundExceeded)

var errIterationBoundExceeded = fmt.Errorf("outer parameter loop exceeded MaxIters without converging")
