// Package minikanren provides global constraints for finite-domain CP.
//
// This file defines NoOverlap (a.k.a. Disjunctive): a set of non-preemptive
// tasks competing for a single unary resource. Each task i has a start-time
// variable start[i] and a fixed positive duration dur[i]; no two tasks may
// execute at overlapping times.
//
// Unlike Cumulative's time-table filtering with compulsory parts, NoOverlap
// here is backed by pkg/disjunctive's Vilím-style detectable-precedences
// propagator: a forward sweep tightens lower bounds, a reverse sweep
// tightens upper bounds, both grounded in a union-find timeline rather than
// an explicit per-time-slot profile. This is a strictly stronger filter
// than delegating to Cumulative(capacity=1), at the cost of only handling
// unit demand.
package minikanren

import (
	"fmt"

	"github.com/gitrdm/goschedcp/pkg/disjunctive"
)

// Disjunctive is a PropagationConstraint wrapping one
// disjunctive.DetectablePrecedencesPropagator over a fixed set of start-time
// variables and durations.
type Disjunctive struct {
	starts []*FDVariable
	prop   *disjunctive.DetectablePrecedencesPropagator
}

// NewNoOverlap constructs a NoOverlap (disjunctive) constraint over tasks.
//
// Parameters:
//   - starts: start-time FD variables (len n > 0)
//   - durations: strictly positive integer durations (len n; each > 0)
//
// Each task i occupies [start[i], start[i]+dur[i]) and for any instant at
// most one task may be running.
func NewNoOverlap(starts []*FDVariable, durations []int) (PropagationConstraint, error) {
	n := len(starts)
	if n == 0 {
		return nil, fmt.Errorf("NoOverlap: requires at least one task")
	}
	if len(durations) != n {
		return nil, fmt.Errorf("NoOverlap: mismatched lengths (starts=%d, durations=%d)", n, len(durations))
	}

	specs := make([]disjunctive.TaskSpec, n)
	for i, dur := range durations {
		specs[i] = disjunctive.TaskSpec{StartVar: disjunctive.VarRef(i), Duration: dur}
	}
	prop, err := disjunctive.NewDetectablePrecedencesPropagator(specs)
	if err != nil {
		return nil, fmt.Errorf("NoOverlap: %w", err)
	}

	starts = append([]*FDVariable(nil), starts...)
	if err := prop.Initialise(registrarAdapter{}); err != nil {
		return nil, fmt.Errorf("NoOverlap: %w", err)
	}

	return &Disjunctive{starts: starts, prop: prop}, nil
}

// Variables returns the task start-time variables. Implements ModelConstraint.
func (c *Disjunctive) Variables() []*FDVariable {
	return c.starts
}

// Type returns the constraint type identifier. Implements ModelConstraint.
func (c *Disjunctive) Type() string {
	return "NoOverlap"
}

// String returns a human-readable representation. Implements ModelConstraint.
func (c *Disjunctive) String() string {
	ids := make([]int, len(c.starts))
	for i, v := range c.starts {
		ids[i] = v.ID()
	}
	return fmt.Sprintf("NoOverlap(%v)", ids)
}

// Propagate runs one detectable-precedences pass: a forward sweep tightening
// lower bounds, then a reverse sweep tightening upper bounds, applying every
// push through the solver's copy-on-write state chain. Implements
// PropagationConstraint.
func (c *Disjunctive) Propagate(solver *Solver, state *SolverState) (*SolverState, error) {
	if solver == nil {
		return nil, fmt.Errorf("NoOverlap.Propagate: nil solver")
	}

	adapter := &boundsAdapter{solver: solver, state: state, vars: c.starts}
	if err := c.prop.Propagate(adapter); err != nil {
		if conflict, ok := disjunctive.AsConflict(err); ok {
			return nil, fmt.Errorf("NoOverlap: %s", conflict)
		}
		return nil, err
	}
	return adapter.state, nil
}
