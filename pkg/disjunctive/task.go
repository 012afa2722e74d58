package disjunctive

import "fmt"

// TaskSpec is the constructor-facing description of one task: a start-time
// variable and its fixed, strictly positive duration. NewDetectablePrecedencesPropagator
// assigns the dense local_id from a TaskSpec's position in the input slice.
type TaskSpec struct {
	StartVar VarRef
	Duration int
}

// task is the propagator's internal, immutable view of a TaskSpec once a
// dense local id has been assigned. Durations never change and local_id
// uniquely identifies the task within one propagator instance.
type task struct {
	startVar VarRef
	duration int
	localID  int
}

func (t task) varRef() VarRef { return t.startVar }

func (t task) String() string {
	return fmt.Sprintf("task{v%d, dur=%d, id=%d}", int(t.startVar), t.duration, t.localID)
}

// est returns EST(t) = lower_bound(start_var) under the given bound snapshot.
func (t task) est(b Bounds) int { return b.LowerBound(t.varRef()) }

// lst returns LST(t) = upper_bound(start_var).
func (t task) lst(b Bounds) int { return b.UpperBound(t.varRef()) }

// ect returns ECT(t) = EST(t) + duration.
func (t task) ect(b Bounds) int { return t.est(b) + t.duration }

// lct returns LCT(t) = LST(t) + duration.
func (t task) lct(b Bounds) int { return t.lst(b) + t.duration }

// explanation returns this task's naive predicate EST <= start <= LST at the
// given snapshot.
func (t task) explanation(b Bounds) BoundPredicate {
	return BoundPredicate{Var: t.varRef(), Lower: t.est(b), Upper: t.lst(b)}
}

func tasksFromSpecs(specs []TaskSpec) []task {
	tasks := make([]task, len(specs))
	for i, s := range specs {
		tasks[i] = task{startVar: s.StartVar, duration: s.Duration, localID: i}
	}
	return tasks
}
