package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gitrdm/goschedcp/pkg/disjunctive"
	"github.com/spf13/cobra"
)

// sliceBounds is a minimal disjunctive.MutableBounds over two int slices,
// indexed directly by VarRef. Like the package's own fakeBounds test double,
// it rejects a push that would invert a variable's window (lower > upper),
// reporting it as a Conflict rather than silently handing back a wiped-out
// domain.
type sliceBounds struct {
	lower []int
	upper []int
}

func (b *sliceBounds) LowerBound(v disjunctive.VarRef) int { return b.lower[v] }
func (b *sliceBounds) UpperBound(v disjunctive.VarRef) int { return b.upper[v] }

func (b *sliceBounds) SetLowerBound(v disjunctive.VarRef, value int, reason disjunctive.Explanation) error {
	if value > b.lower[v] {
		b.lower[v] = value
	}
	if b.lower[v] > b.upper[v] {
		return &disjunctive.Conflict{Reason: reason}
	}
	return nil
}

func (b *sliceBounds) SetUpperBound(v disjunctive.VarRef, value int, reason disjunctive.Explanation) error {
	if value < b.upper[v] {
		b.upper[v] = value
	}
	if b.lower[v] > b.upper[v] {
		return &disjunctive.Conflict{Reason: reason}
	}
	return nil
}

func newRunCmd() *cobra.Command {
	var taskFlags []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one detectable-precedences propagation pass over a task set",
		Long: `Each --task flag describes one unary-resource task as
"lower,upper,duration": the task's start-time variable begins with lower
bound lower and upper bound upper, and runs for duration time units once
started. run prints the tightened bounds after a single forward+reverse
sweep, or the conflicting tasks if the set is infeasible.`,
		Example: `  goschedcp run --task 0,4,2 --task 3,5,5 --task 7,10,5 --task 4,18,2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropagation(cmd, taskFlags)
		},
	}

	cmd.Flags().StringArrayVar(&taskFlags, "task", nil, `task as "lower,upper,duration" (repeatable)`)
	return cmd
}

func runPropagation(cmd *cobra.Command, taskFlags []string) error {
	if len(taskFlags) == 0 {
		return fmt.Errorf("run: at least one --task is required")
	}

	specs := make([]disjunctive.TaskSpec, len(taskFlags))
	bounds := &sliceBounds{lower: make([]int, len(taskFlags)), upper: make([]int, len(taskFlags))}
	for i, raw := range taskFlags {
		lower, upper, dur, err := parseTask(raw)
		if err != nil {
			return fmt.Errorf("run: --task %q: %w", raw, err)
		}
		if lower > upper {
			return fmt.Errorf("run: --task %q: lower bound %d exceeds upper bound %d", raw, lower, upper)
		}
		specs[i] = disjunctive.TaskSpec{StartVar: disjunctive.VarRef(i), Duration: dur}
		bounds.lower[i] = lower
		bounds.upper[i] = upper
	}

	logger := newLogger()
	prop, err := disjunctive.NewDetectablePrecedencesPropagator(specs, disjunctive.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	out := cmd.OutOrStdout()
	for i := range specs {
		fmt.Fprintf(out, "task %d: [%d,%d] dur=%d\n", i, bounds.lower[i], bounds.upper[i], specs[i].Duration)
	}

	if err := prop.Propagate(bounds); err != nil {
		if conflict, ok := disjunctive.AsConflict(err); ok {
			fmt.Fprintf(out, "conflict: %s\n", conflict)
			return nil
		}
		return err
	}

	fmt.Fprintln(out, "after propagation:")
	for i := range specs {
		fmt.Fprintf(out, "task %d: [%d,%d]\n", i, bounds.lower[i], bounds.upper[i])
	}
	return nil
}

func parseTask(raw string) (lower, upper, duration int, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected \"lower,upper,duration\"")
	}
	lower, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid lower bound: %w", err)
	}
	upper, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid upper bound: %w", err)
	}
	duration, err = strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid duration: %w", err)
	}
	return lower, upper, duration, nil
}
