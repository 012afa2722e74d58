package minikanren

import (
	"context"
	"fmt"
	"time"
)

// ExampleNewCumulative demonstrates time-table pruning for the Cumulative
// constraint.
//
// The model encodes two tasks with fixed durations and resource demands.
// Task A is fixed to start at time 2 (duration 2, demand 2). Task B can
// start in the interval [1..4] (duration 2, demand 1). The cumulative
// constraint with capacity=2 forces propagation: the high-demand Task A
// restricts feasible starts for Task B so the solver prunes B's domain.
func ExampleNewCumulative() {
	model := NewModel()

	// Task A: fixed at start=2, duration=2, demand=2
	A := model.NewVariableWithName(NewBitSetDomainFromValues(10, []int{2}), "A")
	// Task B: start in [1..4], duration=2, demand=1
	B := model.NewVariableWithName(NewBitSetDomain(4), "B")

	cum, err := NewCumulative([]*FDVariable{A, B}, []int{2, 2}, []int{2, 1}, 2)
	if err != nil {
		panic(err)
	}
	model.AddConstraint(cum)

	solver := NewSolver(model)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	// Propagate at root by running a one-solution search (will stop at root if none).
	_, _ = solver.Solve(ctx, 1)

	fmt.Println("A:", solver.GetDomain(nil, A.ID()))
	fmt.Println("B:", solver.GetDomain(nil, B.ID()))
	// Output:
	// A: {2}
	// B: {4}
}
