package disjunctive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRevTimelineAggregatesLatestStart mirrors TestTimelineAggregatesEarliestCompletion
// over the same three tasks, scheduled in LCT-descending order, and checks
// the aggregate latest-start value after each schedule.
func TestRevTimelineAggregatesLatestStart(t *testing.T) {
	b := newFakeBounds(
		[]int{0, 1, 5},
		[]int{2, 4, 7},
	)
	tasks := tasksFromSpecs([]TaskSpec{
		{StartVar: 0, Duration: 3},
		{StartVar: 1, Duration: 2},
		{StartVar: 2, Duration: 1},
	})

	rt := newRevTimeline(tasks, b)
	assert.Equal(t, rt.t[0], rt.latestStartingTime(), "empty rev-timeline reports t[0]")

	rt.scheduleTask(tasks[2])
	assert.Equal(t, 7, rt.latestStartingTime())

	rt.scheduleTask(tasks[1])
	assert.Equal(t, 4, rt.latestStartingTime())

	rt.scheduleTask(tasks[0])
	assert.Equal(t, 1, rt.latestStartingTime())
}

func TestRevTimelineSingleTaskMatchesItsOwnLatestStart(t *testing.T) {
	b := newFakeBounds([]int{4}, []int{9})
	tasks := tasksFromSpecs([]TaskSpec{{StartVar: 0, Duration: 6}})

	rt := newRevTimeline(tasks, b)
	rt.scheduleTask(tasks[0])
	assert.Equal(t, 9, rt.latestStartingTime())
}
