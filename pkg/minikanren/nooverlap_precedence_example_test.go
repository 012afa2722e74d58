package minikanren

import (
	"context"
	"fmt"
	"time"
)

// ExampleNewNoOverlap_withExplicitPrecedence composes `NoOverlap` with
// `Inequality` to show a scheduling-relevant use of `Inequality` beyond
// resource contention: a task that does not share the resource at all, but
// still has an explicit ordering dependency on one that does.
//
// Task A is fixed at start=2, duration=2 (occupies [2,3]). Task B shares A's
// resource, may start in [1..4], and also has duration 2; `NoOverlap`
// alone forces B to start no earlier than 4. Task D is a downstream
// reporting step that never competes for the resource A and B share, but by
// business rule must not start before B begins — expressed directly as
// `D >= B` via `Inequality`, not as a second `NoOverlap` group.
//
// The printed domains show B pushed to 4 by NoOverlap, and D pushed to 4 in
// turn by Inequality picking up B's tightened bound at the solver's next
// fixed-point iteration, which is exactly the downstream propagation this
// composition is meant to demonstrate.
func ExampleNewNoOverlap_withExplicitPrecedence() {
	model := NewModel()

	A := model.NewVariableWithName(NewBitSetDomainFromValues(10, []int{2}), "A")
	B := model.NewVariableWithName(NewBitSetDomain(4), "B")
	D := model.NewVariableWithName(NewBitSetDomain(4), "D")

	noov, err := NewNoOverlap([]*FDVariable{A, B}, []int{2, 2})
	if err != nil {
		panic(err)
	}
	model.AddConstraint(noov)

	precedes, err := NewInequality(D, B, GreaterEqual)
	if err != nil {
		panic(err)
	}
	model.AddConstraint(precedes)

	solver := NewSolver(model)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, _ = solver.Solve(ctx, 1)

	fmt.Println("A:", solver.GetDomain(nil, A.ID()))
	fmt.Println("B:", solver.GetDomain(nil, B.ID()))
	fmt.Println("D:", solver.GetDomain(nil, D.ID()))
	// Output:
	// A: {2}
	// B: {4}
	// D: {4}
}
