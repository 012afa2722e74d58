package disjunctive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskDerivedQuantities(t *testing.T) {
	b := newFakeBounds([]int{2}, []int{7})
	tasks := tasksFromSpecs([]TaskSpec{{StartVar: 0, Duration: 3}})
	tk := tasks[0]

	assert.Equal(t, 2, tk.est(b))
	assert.Equal(t, 7, tk.lst(b))
	assert.Equal(t, 5, tk.ect(b))  // EST + duration
	assert.Equal(t, 10, tk.lct(b)) // LST + duration
}

func TestTaskExplanationReflectsCurrentSnapshot(t *testing.T) {
	b := newFakeBounds([]int{0}, []int{4})
	tasks := tasksFromSpecs([]TaskSpec{{StartVar: 0, Duration: 1}})
	tk := tasks[0]

	pred := tk.explanation(b)
	assert.Equal(t, VarRef(0), pred.Var)
	assert.Equal(t, 0, pred.Lower)
	assert.Equal(t, 4, pred.Upper)

	b.lower[0] = 2
	pred = tk.explanation(b)
	assert.Equal(t, 2, pred.Lower)
}

func TestTasksFromSpecsAssignsDenseLocalIDs(t *testing.T) {
	specs := []TaskSpec{{StartVar: 5, Duration: 1}, {StartVar: 9, Duration: 2}}
	tasks := tasksFromSpecs(specs)
	assert.Equal(t, 0, tasks[0].localID)
	assert.Equal(t, 1, tasks[1].localID)
	assert.Equal(t, VarRef(5), tasks[0].varRef())
	assert.Equal(t, VarRef(9), tasks[1].varRef())
}
