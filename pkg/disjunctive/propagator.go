package disjunctive

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPriority is the propagator's fixed solver-ordering priority: mid
// priority among a typical propagator registry.
const DefaultPriority = 3

// Name is the fixed, solver-facing identifier of this propagator.
const Name = "DisDetectablePrecedences"

// EnqueueDecision is returned from Notify to tell the host whether this
// propagator should be scheduled for another Propagate call.
type EnqueueDecision int

const (
	// Enqueue asks the host to call Propagate again.
	Enqueue EnqueueDecision = iota
	// Skip asks the host not to reschedule this propagator for this event.
	// DetectablePrecedencesPropagator never returns Skip.
	Skip
)

// Option configures a DetectablePrecedencesPropagator at construction time.
type Option func(*DetectablePrecedencesPropagator)

// WithLogger attaches a logrus logger used for Debug-level tracing of
// scheduled tasks, detected blocking tasks and conflicts. A nil logger (the
// default) disables tracing entirely.
func WithLogger(logger *logrus.Logger) Option {
	return func(p *DetectablePrecedencesPropagator) { p.logger = logger }
}

// WithExplanationType selects the explanation strength. Only ExplanationNaive
// is accepted; any other value makes NewDetectablePrecedencesPropagator
// return ErrUnsupportedExplanationType rather than silently falling back to
// naive.
func WithExplanationType(t ExplanationType) Option {
	return func(p *DetectablePrecedencesPropagator) { p.explanationType = t }
}

// DetectablePrecedencesPropagator implements the Vilím-style Θ-free
// detectable-precedences algorithm: one forward sweep tightens lower bounds,
// one reverse sweep tightens upper bounds. It holds an immutable task array
// shared across clones and allocates all of its working state (timelines,
// orderings, the pushes map) fresh per Propagate call.
type DetectablePrecedencesPropagator struct {
	tasks           []task
	explanationType ExplanationType
	logger          *logrus.Logger
}

// NewDetectablePrecedencesPropagator constructs a propagator over the given
// tasks, assigning dense local ids in input order.
func NewDetectablePrecedencesPropagator(specs []TaskSpec, opts ...Option) (*DetectablePrecedencesPropagator, error) {
	if len(specs) == 0 {
		return nil, ErrNoTasks
	}
	for i, s := range specs {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("%w: task %d has duration %d", ErrNonPositiveDuration, i, s.Duration)
		}
	}

	p := &DetectablePrecedencesPropagator{
		tasks:           tasksFromSpecs(specs),
		explanationType: ExplanationNaive,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.explanationType != ExplanationNaive {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedExplanationType, p.explanationType)
	}
	return p, nil
}

// Priority returns the propagator's fixed solver-ordering priority.
func (p *DetectablePrecedencesPropagator) Priority() int { return DefaultPriority }

// Name returns the propagator's fixed solver-facing identifier.
func (p *DetectablePrecedencesPropagator) Name() string { return Name }

// Initialise registers every task's start variable for lower- and
// upper-bound change events under its dense local id. Never fails.
func (p *DetectablePrecedencesPropagator) Initialise(reg Registrar) error {
	events := []EventKind{EventLowerBoundChanged, EventUpperBoundChanged}
	for _, t := range p.tasks {
		reg.Register(t.varRef(), events, t.localID)
	}
	return nil
}

// Notify always requests rescheduling: detectable precedences does no
// finer-grained filtering of events than what registration already provides.
func (p *DetectablePrecedencesPropagator) Notify(localID int, event EventKind) EnqueueDecision {
	return Enqueue
}

// NotifyBacktrack is a no-op: the propagator holds no state across calls
// besides its immutable task array, so a backtrack needs no undo.
func (p *DetectablePrecedencesPropagator) NotifyBacktrack(localID int, event EventKind) {}

// lowerPush records a candidate new lower bound discovered for one task
// during the forward sweep, together with the explanation to attach if it
// is ultimately applied.
type lowerPush struct {
	value  int
	reason Explanation
}

// upperPush mirrors lowerPush for the reverse sweep.
type upperPush struct {
	value  int
	reason Explanation
}

// naiveExplanation returns the conjunction of every task's current
// EST <= start <= LST predicate: the only explanation strength this package
// implements.
func (p *DetectablePrecedencesPropagator) naiveExplanation(b Bounds) Explanation {
	expl := make(Explanation, len(p.tasks))
	for i, t := range p.tasks {
		expl[i] = t.explanation(b)
	}
	return expl
}

func sortedByLST(tasks []task, b Bounds, descending bool) []task {
	sorted := append([]task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := sorted[i].lst(b), sorted[j].lst(b)
		if li != lj {
			if descending {
				return li > lj
			}
			return li < lj
		}
		return sorted[i].localID < sorted[j].localID
	})
	return sorted
}

func sortedByECT(tasks []task, b Bounds, descending bool) []task {
	sorted := append([]task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, ej := sorted[i].ect(b), sorted[j].ect(b)
		if ei != ej {
			if descending {
				return ei > ej
			}
			return ei < ej
		}
		return sorted[i].localID < sorted[j].localID
	})
	return sorted
}

// recordLowerPush stores candidate if it is the first push seen for t's
// local id, or strictly raises the one already stored.
func recordLowerPush(pushes map[int]lowerPush, t task, candidate int, reason Explanation) {
	existing, ok := pushes[t.localID]
	if !ok || candidate > existing.value {
		pushes[t.localID] = lowerPush{value: candidate, reason: reason}
	}
}

// recordUpperPush mirrors recordLowerPush: kept if it strictly lowers the
// stored bound.
func recordUpperPush(pushes map[int]upperPush, t task, candidate int, reason Explanation) {
	existing, ok := pushes[t.localID]
	if !ok || candidate < existing.value {
		pushes[t.localID] = upperPush{value: candidate, reason: reason}
	}
}

// forwardSweep runs one forward sweep over the task set sorted by latest
// start and earliest completion, returning one candidate lower-bound push
// per task that needs one.
func (p *DetectablePrecedencesPropagator) forwardSweep(b Bounds) (map[int]lowerPush, error) {
	tl := newTimeline(p.tasks, b)
	orderA := sortedByLST(p.tasks, b, false)
	orderB := sortedByECT(p.tasks, b, false)
	n := len(p.tasks)

	pushes := make(map[int]lowerPush)
	var postponed []task
	var blocking *task

	j := 0
	k := orderA[0]

	for _, i := range orderB {
		ectI := i.ect(b)
		for j < n-1 && k.lst(b) < ectI {
			if k.lst(b) >= k.ect(b) {
				tl.scheduleTask(k)
				p.tracef("forward: scheduled %s", k)
			} else if blocking != nil {
				reason := Explanation{blocking.explanation(b), k.explanation(b)}
				p.tracef("forward: conflict between %s and %s", *blocking, k)
				return nil, &Conflict{Reason: reason}
			} else {
				blockTask := k
				blocking = &blockTask
				p.tracef("forward: %s is blocking", k)
			}
			j++
			k = orderA[j]
		}

		if blocking == nil {
			recordLowerPush(pushes, i, tl.earliestCompletionTime(), p.naiveExplanation(b))
			continue
		}

		if i.localID == blocking.localID {
			recordLowerPush(pushes, i, tl.earliestCompletionTime(), p.naiveExplanation(b))
			tl.scheduleTask(i)
			blocking = nil
			resolved := tl.earliestCompletionTime()
			reason := p.naiveExplanation(b)
			for _, pt := range postponed {
				recordLowerPush(pushes, pt, resolved, reason)
			}
			postponed = postponed[:0]
		} else {
			postponed = append(postponed, i)
		}
	}

	return pushes, nil
}

// reverseSweep mirrors forwardSweep over the reverse timeline, returning one
// candidate upper-bound push per task that needs one.
func (p *DetectablePrecedencesPropagator) reverseSweep(b Bounds) (map[int]upperPush, error) {
	rtl := newRevTimeline(p.tasks, b)
	orderA := sortedByECT(p.tasks, b, true)
	orderB := sortedByLST(p.tasks, b, true)
	n := len(p.tasks)

	pushes := make(map[int]upperPush)
	var postponed []task
	var blocking *task

	j := 0
	k := orderA[0]

	for _, i := range orderB {
		lstI := i.lst(b)
		for j < n-1 && k.ect(b) > lstI {
			if k.lst(b) >= k.ect(b) {
				rtl.scheduleTask(k)
				p.tracef("reverse: scheduled %s", k)
			} else if blocking != nil {
				reason := Explanation{blocking.explanation(b), k.explanation(b)}
				p.tracef("reverse: conflict between %s and %s", *blocking, k)
				return nil, &Conflict{Reason: reason}
			} else {
				blockTask := k
				blocking = &blockTask
				p.tracef("reverse: %s is blocking", k)
			}
			j++
			k = orderA[j]
		}

		if blocking == nil {
			recordUpperPush(pushes, i, rtl.latestStartingTime()-i.duration, p.naiveExplanation(b))
			continue
		}

		if i.localID == blocking.localID {
			recordUpperPush(pushes, i, rtl.latestStartingTime()-i.duration, p.naiveExplanation(b))
			rtl.scheduleTask(i)
			blocking = nil
			resolved := rtl.latestStartingTime()
			reason := p.naiveExplanation(b)
			for _, pt := range postponed {
				recordUpperPush(pushes, pt, resolved-pt.duration, reason)
			}
			postponed = postponed[:0]
		} else {
			postponed = append(postponed, i)
		}
	}

	return pushes, nil
}

// Propagate runs the forward sweep, then the reverse sweep, then applies
// every discovered push. Both sweeps observe the same bound snapshot; no
// push is applied until both have completed without conflict.
func (p *DetectablePrecedencesPropagator) Propagate(ctx MutableBounds) error {
	traceID := uuid.NewString()
	p.tracef("propagate %s: starting over %d tasks", traceID, len(p.tasks))

	lowerPushes, err := p.forwardSweep(ctx)
	if err != nil {
		p.tracef("propagate %s: forward sweep conflict: %v", traceID, err)
		return err
	}
	upperPushes, err := p.reverseSweep(ctx)
	if err != nil {
		p.tracef("propagate %s: reverse sweep conflict: %v", traceID, err)
		return err
	}

	for localID, push := range lowerPushes {
		t := p.tasks[localID]
		if push.value <= t.est(ctx) {
			continue
		}
		if err := ctx.SetLowerBound(t.varRef(), push.value, push.reason); err != nil {
			p.tracef("propagate %s: host rejected lower-bound push on %s: %v", traceID, t, err)
			return &Conflict{Reason: push.reason}
		}
	}
	for localID, push := range upperPushes {
		t := p.tasks[localID]
		if push.value >= t.lst(ctx) {
			continue
		}
		if err := ctx.SetUpperBound(t.varRef(), push.value, push.reason); err != nil {
			p.tracef("propagate %s: host rejected upper-bound push on %s: %v", traceID, t, err)
			return &Conflict{Reason: push.reason}
		}
	}

	p.tracef("propagate %s: done, %d lower pushes, %d upper pushes", traceID, len(lowerPushes), len(upperPushes))
	return nil
}

// DebugPropagateFromScratch is an oracle used only by a solver's
// self-checker: it recomputes consistency from nothing but the bound
// snapshot, independent of the incremental sweeps, and reports the first
// task whose ECT exceeds its own LCT as a conflict.
func (p *DetectablePrecedencesPropagator) DebugPropagateFromScratch(b Bounds) error {
	for _, t := range p.tasks {
		if t.ect(b) > t.lct(b) {
			return &Conflict{Reason: Explanation{t.explanation(b)}}
		}
	}
	return nil
}

func (p *DetectablePrecedencesPropagator) tracef(format string, args ...interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Debugf(format, args...)
}
