package disjunctive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetectablePrecedencesPropagatorRejectsEmptyTasks(t *testing.T) {
	_, err := NewDetectablePrecedencesPropagator(nil)
	assert.ErrorIs(t, err, ErrNoTasks)
}

func TestNewDetectablePrecedencesPropagatorRejectsNonPositiveDuration(t *testing.T) {
	_, err := NewDetectablePrecedencesPropagator([]TaskSpec{{StartVar: 0, Duration: 0}})
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

func TestNewDetectablePrecedencesPropagatorRejectsUnsupportedExplanationType(t *testing.T) {
	_, err := NewDetectablePrecedencesPropagator(
		[]TaskSpec{{StartVar: 0, Duration: 1}},
		WithExplanationType(ExplanationLastCluster),
	)
	assert.ErrorIs(t, err, ErrUnsupportedExplanationType)
}

func TestInitialiseRegistersEveryTaskForBothEvents(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 3, Duration: 1},
		{StartVar: 7, Duration: 2},
	})
	require.NoError(t, err)

	reg := &fakeRegistrar{}
	require.NoError(t, p.Initialise(reg))

	require.Len(t, reg.registered, 2)
	assert.Equal(t, VarRef(3), reg.registered[0].v)
	assert.Equal(t, 0, reg.registered[0].localID)
	assert.ElementsMatch(t, []EventKind{EventLowerBoundChanged, EventUpperBoundChanged}, reg.registered[0].events)
	assert.Equal(t, VarRef(7), reg.registered[1].v)
	assert.Equal(t, 1, reg.registered[1].localID)
}

func TestPropagateSingleTaskNeverPushes(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{{StartVar: 0, Duration: 6}})
	require.NoError(t, err)

	b := newFakeBounds([]int{4}, []int{9})
	require.NoError(t, p.Propagate(b))
	assert.Equal(t, 4, b.LowerBound(0))
	assert.Equal(t, 9, b.UpperBound(0))
}

// TestPropagateRaisesLowerBoundsAcrossAChainOfTasks reproduces a four-task
// chain (w, x, y, z), hand-verified slice-by-slice: the forward sweep
// schedules w, finds x blocking and postpones z behind it, then on resolving
// x pushes the postponed z; y later blocks on its own and is pushed past x.
func TestPropagateRaisesLowerBoundsAcrossAChainOfTasks(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 0, Duration: 2}, // w: [0,4]
		{StartVar: 1, Duration: 5}, // x: [3,5]
		{StartVar: 2, Duration: 5}, // y: [7,10]
		{StartVar: 3, Duration: 2}, // z: [4,18]
	})
	require.NoError(t, err)

	b := newFakeBounds(
		[]int{0, 3, 7, 4},
		[]int{4, 5, 10, 18},
	)
	require.NoError(t, p.Propagate(b))

	assert.Equal(t, 0, b.LowerBound(0), "w's lower bound is untouched")
	assert.Equal(t, 3, b.LowerBound(1), "x's lower bound is untouched")
	assert.Equal(t, 8, b.LowerBound(2), "y is pushed past x's completion")
	assert.Equal(t, 8, b.LowerBound(3), "z is pushed once y resolves the postponed queue")
}

// TestPropagateRaisesLowerBoundsWithAPostponedTask mirrors the same chain
// shape but with a task (y) that is provisionally postponed behind a
// different blocking task (z), after x and w are scheduled; resolving z then
// pushes the postponed y.
func TestPropagateRaisesLowerBoundsWithAPostponedTask(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 0, Duration: 4},  // w: [0,15]
		{StartVar: 1, Duration: 9},  // x: [2,13]
		{StartVar: 2, Duration: 7},  // y: [9,23]
		{StartVar: 3, Duration: 6},  // z: [12,14]
	})
	require.NoError(t, err)

	b := newFakeBounds(
		[]int{0, 2, 9, 12},
		[]int{15, 13, 23, 14},
	)
	require.NoError(t, p.Propagate(b))

	assert.Equal(t, 0, b.LowerBound(0))
	assert.Equal(t, 2, b.LowerBound(1), "x's lower bound is unchanged")
	assert.Equal(t, 19, b.LowerBound(2), "y is pushed once the postponed chain resolves")
	assert.Equal(t, 13, b.LowerBound(3), "z is pushed past x and w")
}

// TestPropagateLowersUpperBoundAcrossTheSameChain runs the reverse sweep
// over the same four tasks as TestPropagateRaisesLowerBoundsAcrossAChainOfTasks,
// hand-verified to find a single meaningful tightening: w cannot start at its
// original latest start of 4, since x and z both need room after it.
func TestPropagateLowersUpperBoundAcrossTheSameChain(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 0, Duration: 2}, // w: [0,4]
		{StartVar: 1, Duration: 5}, // x: [3,5]
		{StartVar: 2, Duration: 5}, // y: [7,10]
		{StartVar: 3, Duration: 2}, // z: [4,18]
	})
	require.NoError(t, err)

	b := newFakeBounds(
		[]int{0, 3, 7, 4},
		[]int{4, 5, 10, 18},
	)
	require.NoError(t, p.Propagate(b))

	assert.Equal(t, 3, b.UpperBound(0), "w's latest start is tightened")
	assert.Equal(t, 5, b.UpperBound(1))
	assert.Equal(t, 10, b.UpperBound(2))
	assert.Equal(t, 18, b.UpperBound(3))
}

// TestPropagateDetectsDirectSweepConflict constructs two forced, overlapping
// intervals (P must run [0,5], Q must run [1,6]) plus a loose third task (R)
// whose late latest start sorts it last by LST, so the sweep cursor (which
// stops before the last task in that order) can reach both P and Q and the
// forward sweep itself reports the collision rather than deferring to a
// rejected bound update.
func TestPropagateDetectsDirectSweepConflict(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 0, Duration: 5}, // P: [0,0]
		{StartVar: 1, Duration: 5}, // Q: [1,1]
		{StartVar: 2, Duration: 1}, // R: [0,20]
	})
	require.NoError(t, err)

	b := newFakeBounds(
		[]int{0, 1, 0},
		[]int{0, 1, 20},
	)
	err = p.Propagate(b)
	require.Error(t, err)
	conflict, ok := AsConflict(err)
	require.True(t, ok)
	assert.Len(t, conflict.Reason, 2)
}

// TestPropagateConvertsHostRejectionToConflict forces a push that the host's
// bound store cannot accept (it would empty the variable's domain), and
// checks Propagate surfaces that rejection as a *Conflict.
func TestPropagateConvertsHostRejectionToConflict(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{
		{StartVar: 0, Duration: 3}, // A: [0,0]
		{StartVar: 1, Duration: 3}, // B: [1,1]
	})
	require.NoError(t, err)

	b := newFakeBounds([]int{0, 1}, []int{0, 1})
	err = p.Propagate(b)
	require.Error(t, err)
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestDebugPropagateFromScratchFlagsEmptyDomain(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{{StartVar: 0, Duration: 1}})
	require.NoError(t, err)

	b := newFakeBounds([]int{5}, []int{3}) // LST < EST: already-empty domain
	err = p.DebugPropagateFromScratch(b)
	require.Error(t, err)
	_, ok := AsConflict(err)
	assert.True(t, ok)
}

func TestDebugPropagateFromScratchPassesConsistentBounds(t *testing.T) {
	p, err := NewDetectablePrecedencesPropagator([]TaskSpec{{StartVar: 0, Duration: 1}})
	require.NoError(t, err)

	b := newFakeBounds([]int{0}, []int{5})
	assert.NoError(t, p.DebugPropagateFromScratch(b))
}
