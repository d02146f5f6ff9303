package cycleratio

import "fmt"

// ErrNonPositiveTime indicates an edge with Time <= 0 was found while
// validating a graph before solving. The ratio problem requires Σtime > 0
// over every cycle to be well-posed, which this module enforces at the
// edge level (a sufficient, easily-checked condition).
var ErrNonPositiveTime = fmt.Errorf("cycleratio: %w", errNonPositiveTime)

var errNonPositiveTime = fmt.Errorf("edge has non-positive time; cycle ratio is ill-posed")

// ErrIterationBoundExceeded is returned by MinParametricQ.Run when
// QOptions.MaxIters is positive and the outer alternating-pass loop reaches
// it without converging (see maxparametric.ErrIterationBoundExceeded for
// the identical rationale applied to MinCycleRatio's driver).
var ErrIterationBoundExceeded = fmt.Errorf("cycleratio: %w", errIterationBoundExceeded)

var errIterationBoundExceeded = fmt.Errorf("outer alternating parametric loop exceeded MaxIters without converging")
