package disjunctive

import "errors"

// ErrNoTasks is returned by NewDetectablePrecedencesPropagator when given an
// empty task slice; a propagator over zero tasks is degenerate and almost
// certainly a caller bug.
var ErrNoTasks = errors.New("disjunctive: requires at least one task")

// ErrNonPositiveDuration is returned when a TaskSpec's duration is not
// strictly positive: a degenerate zero-or-negative-duration task is rejected
// at construction rather than handled specially later.
var ErrNonPositiveDuration = errors.New("disjunctive: task duration must be > 0")

// ErrUnsupportedExplanationType is returned when a caller requests an
// ExplanationType other than ExplanationNaive; see options.go.
var ErrUnsupportedExplanationType = errors.New("disjunctive: only ExplanationNaive is implemented")
