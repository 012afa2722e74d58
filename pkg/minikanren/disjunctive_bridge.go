// Package minikanren provides constraint programming abstractions.
//
// This file bridges the event-driven, abstract-bounds capability interface
// consumed by pkg/disjunctive (Bounds/MutableBounds) to this package's
// copy-on-write Solver/SolverState model. The adapter lives only for the
// duration of one Propagate call: it reads domains through the solver's
// existing state-chain walk and, on a push, replaces its held state with
// the one SetDomain returns, so every push in a single sweep composes into
// one final state handed back to the solver.
package minikanren

import (
	"fmt"

	"github.com/gitrdm/goschedcp/pkg/disjunctive"
)

// boundsAdapter implements disjunctive.MutableBounds over a fixed slice of
// FDVariables, threading domain updates through Solver.SetDomain.
type boundsAdapter struct {
	solver *Solver
	state  *SolverState
	vars   []*FDVariable
}

func (a *boundsAdapter) LowerBound(v disjunctive.VarRef) int {
	return a.solver.GetDomain(a.state, a.vars[v].ID()).Min()
}

func (a *boundsAdapter) UpperBound(v disjunctive.VarRef) int {
	return a.solver.GetDomain(a.state, a.vars[v].ID()).Max()
}

func (a *boundsAdapter) SetLowerBound(v disjunctive.VarRef, value int, reason disjunctive.Explanation) error {
	fdv := a.vars[v]
	dom := a.solver.GetDomain(a.state, fdv.ID())
	newDom := dom.RemoveBelow(value)
	if newDom.Count() == 0 {
		return fmt.Errorf("disjunctive: pushing lower bound of v%d to %d empties its domain: %s", fdv.ID(), value, reason)
	}
	newState, _ := a.solver.SetDomain(a.state, fdv.ID(), newDom)
	a.state = newState
	return nil
}

func (a *boundsAdapter) SetUpperBound(v disjunctive.VarRef, value int, reason disjunctive.Explanation) error {
	fdv := a.vars[v]
	dom := a.solver.GetDomain(a.state, fdv.ID())
	newDom := dom.RemoveAbove(value)
	if newDom.Count() == 0 {
		return fmt.Errorf("disjunctive: pushing upper bound of v%d to %d empties its domain: %s", fdv.ID(), value, reason)
	}
	newState, _ := a.solver.SetDomain(a.state, fdv.ID(), newDom)
	a.state = newState
	return nil
}

// registrarAdapter discards every registration it receives at Initialise
// time: the solver's propagation loop here re-runs every registered
// constraint to a fixed point rather than routing individual events, and the
// identity mapping (VarRef -> FDVariable index) is kept by Disjunctive.starts.
type registrarAdapter struct{}

func (registrarAdapter) Register(v disjunctive.VarRef, events []disjunctive.EventKind, localID int) {}
