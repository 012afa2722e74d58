package disjunctive

// fakeBounds is a minimal in-memory Bounds/MutableBounds implementation used
// across this package's tests: VarRef(i) indexes directly into lower/upper.
type fakeBounds struct {
	lower []int
	upper []int
	// rejectVar, when >= 0, makes SetLowerBound/SetUpperBound on that var
	// fail, simulating a host that detects domain wipeout.
	rejectVar int
}

func newFakeBounds(lower, upper []int) *fakeBounds {
	return &fakeBounds{lower: lower, upper: upper, rejectVar: -1}
}

func (b *fakeBounds) LowerBound(v VarRef) int { return b.lower[v] }
func (b *fakeBounds) UpperBound(v VarRef) int { return b.upper[v] }

func (b *fakeBounds) SetLowerBound(v VarRef, value int, reason Explanation) error {
	if int(v) == b.rejectVar {
		return &Conflict{Reason: reason}
	}
	if value > b.lower[v] {
		b.lower[v] = value
	}
	if b.lower[v] > b.upper[v] {
		return &Conflict{Reason: reason}
	}
	return nil
}

func (b *fakeBounds) SetUpperBound(v VarRef, value int, reason Explanation) error {
	if int(v) == b.rejectVar {
		return &Conflict{Reason: reason}
	}
	if value < b.upper[v] {
		b.upper[v] = value
	}
	if b.lower[v] > b.upper[v] {
		return &Conflict{Reason: reason}
	}
	return nil
}

// fakeRegistrar records every Register call it receives.
type fakeRegistrar struct {
	registered []registration
}

type registration struct {
	v       VarRef
	events  []EventKind
	localID int
}

func (r *fakeRegistrar) Register(v VarRef, events []EventKind, localID int) {
	r.registered = append(r.registered, registration{v: v, events: events, localID: localID})
}

func specsFromBounds(durations []int) []TaskSpec {
	specs := make([]TaskSpec, len(durations))
	for i, d := range durations {
		specs[i] = TaskSpec{StartVar: VarRef(i), Duration: d}
	}
	return specs
}
