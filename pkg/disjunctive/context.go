package disjunctive

import (
	"errors"
	"fmt"
)

// VarRef is an opaque handle to a start-time variable in the host solver.
// The propagator never interprets a VarRef itself; it only passes it back
// to the host through Bounds/MutableBounds/Registrar.
type VarRef int

// Bounds is the read side of the host solver's bound store, restricted to
// reads.
type Bounds interface {
	// LowerBound returns the current lower bound of v.
	LowerBound(v VarRef) int
	// UpperBound returns the current upper bound of v.
	UpperBound(v VarRef) int
}

// MutableBounds extends Bounds with the write side. SetLowerBound and
// SetUpperBound are only ever called with a strictly tighter bound than the
// one currently held; a host that rejects the update (e.g. because it would
// empty the variable's domain) returns a non-nil error, which the propagator
// surfaces as a Conflict carrying the same reason that drove the push.
type MutableBounds interface {
	Bounds
	// SetLowerBound requests that v's lower bound be raised to at least
	// value. reason explains the push and is attached verbatim to any
	// Conflict the host reports back.
	SetLowerBound(v VarRef, value int, reason Explanation) error
	// SetUpperBound requests that v's upper bound be lowered to at most
	// value. reason explains the push and is attached verbatim to any
	// Conflict the host reports back.
	SetUpperBound(v VarRef, value int, reason Explanation) error
}

// EventKind enumerates the domain-change events a propagator can register
// interest in.
type EventKind int

const (
	// EventLowerBoundChanged fires when a variable's lower bound increases.
	EventLowerBoundChanged EventKind = iota
	// EventUpperBoundChanged fires when a variable's upper bound decreases.
	EventUpperBoundChanged
)

// Registrar is the initialisation-time capability: subscribing a VarRef to a
// set of events under a dense local id, so the host can route future
// notifications back to the right task without a map lookup.
type Registrar interface {
	Register(v VarRef, events []EventKind, localID int)
}

// BoundPredicate is one conjunct of a naive explanation: EST <= start <= LST
// for a single task, evaluated at the bound snapshot current when the
// conflict or push was discovered.
type BoundPredicate struct {
	Var   VarRef
	Lower int
	Upper int
}

func (p BoundPredicate) String() string {
	return fmt.Sprintf("(%d <= start(v%d) <= %d)", p.Lower, p.Var, p.Upper)
}

// Explanation is a conjunction of BoundPredicates: the naive explanation is
// the conjunction of every involved task's current EST <= start <= LST
// predicate.
type Explanation []BoundPredicate

func (e Explanation) String() string {
	if len(e) == 0 {
		return "(true)"
	}
	s := e[0].String()
	for _, p := range e[1:] {
		s += " ∧ " + p.String()
	}
	return s
}

// Conflict reports a detected infeasibility: either a direct blocking-task
// collision during a sweep, or a bound update the host rejected. It is the
// only error class the propagator produces.
type Conflict struct {
	Reason Explanation
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("disjunctive: conflict: %s", c.Reason)
}

// AsConflict reports whether err is (or wraps) a *Conflict, returning it if so.
func AsConflict(err error) (*Conflict, bool) {
	var c *Conflict
	ok := errors.As(err, &c)
	return c, ok
}
