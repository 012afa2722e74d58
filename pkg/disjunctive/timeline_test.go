package disjunctive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTimelineAggregatesEarliestCompletion schedules three tasks one at a
// time and checks the aggregate earliest-completion value after each,
// independently hand-computed against the slice/capacity construction.
func TestTimelineAggregatesEarliestCompletion(t *testing.T) {
	b := newFakeBounds(
		[]int{0, 1, 5},
		[]int{2, 4, 7},
	)
	tasks := tasksFromSpecs([]TaskSpec{
		{StartVar: 0, Duration: 3},
		{StartVar: 1, Duration: 2},
		{StartVar: 2, Duration: 1},
	})

	tl := newTimeline(tasks, b)
	assert.Equal(t, 0, tl.earliestCompletionTime(), "empty timeline reports 0")

	tl.scheduleTask(tasks[0])
	assert.Equal(t, 3, tl.earliestCompletionTime())

	tl.scheduleTask(tasks[1])
	assert.Equal(t, 5, tl.earliestCompletionTime())

	tl.scheduleTask(tasks[2])
	assert.Equal(t, 6, tl.earliestCompletionTime())
}

func TestTimelineSingleTaskMatchesItsOwnCompletion(t *testing.T) {
	b := newFakeBounds([]int{4}, []int{9})
	tasks := tasksFromSpecs([]TaskSpec{{StartVar: 0, Duration: 6}})

	tl := newTimeline(tasks, b)
	tl.scheduleTask(tasks[0])
	assert.Equal(t, 10, tl.earliestCompletionTime())
}
