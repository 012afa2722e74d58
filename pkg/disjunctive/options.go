package disjunctive

// ExplanationType names the strength of explanation a propagator attaches to
// its pushes and conflicts. Only ExplanationNaive is implemented; the other
// two are declared for forward compatibility with a host solver that may one
// day want a tighter explanation.
type ExplanationType int

const (
	// ExplanationNaive is the conjunction of every involved task's current
	// EST <= start <= LST predicate. The only form this package implements.
	ExplanationNaive ExplanationType = iota
	// ExplanationPrevScheduledTasks would explain a push using only the
	// tasks actually scheduled on the timeline ahead of the pushed task.
	// Not implemented; declared as a future-work placeholder only.
	ExplanationPrevScheduledTasks
	// ExplanationLastCluster would explain a push using only the union-find
	// cluster that absorbed the pushed task. Not implemented; declared as a
	// future-work placeholder only.
	ExplanationLastCluster
)

func (e ExplanationType) String() string {
	switch e {
	case ExplanationNaive:
		return "naive"
	case ExplanationPrevScheduledTasks:
		return "prev-scheduled-tasks"
	case ExplanationLastCluster:
		return "last-cluster"
	default:
		return "unknown"
	}
}
