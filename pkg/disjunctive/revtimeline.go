package disjunctive

import "sort"

// revTimeline mirrors timeline, maintaining the latest start time of a
// growing set of tasks driven by LCTs in descending order.
type revTimeline struct {
	t []int // strictly decreasing time points, sentinel-terminated
	c []int // c[k] = t[k] - t[k+1] (a positive "backward" length)
	m []int // m[localID] = index into t of that task's LCT
	e int
	s *unionFind
}

// newRevTimeline builds the reverse timeline: distinct LCTs sorted
// descending, padded with one sentinel point before the earliest possible
// start of any task.
func newRevTimeline(tasks []task, b Bounds) *revTimeline {
	order := make([]task, len(tasks))
	copy(order, tasks)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].lct(b) > order[j].lct(b)
	})

	t := make([]int, 0, len(order)+1)
	m := make([]int, len(tasks))
	for _, tk := range order {
		lct := tk.lct(b)
		if len(t) == 0 || t[len(t)-1] != lct {
			t = append(t, lct)
		}
		m[tk.localID] = len(t) - 1
	}

	lowestEST := tasks[0].est(b)
	totalDuration := 0
	for _, tk := range tasks {
		if est := tk.est(b); est < lowestEST {
			lowestEST = est
		}
		totalDuration += tk.duration
	}
	t = append(t, lowestEST-totalDuration)

	c := make([]int, len(t)-1)
	for k := range c {
		c[k] = t[k] - t[k+1]
	}

	return &revTimeline{t: t, c: c, m: m, e: -1, s: newUnionFind(len(t))}
}

// scheduleTask pours task.duration units of work into slices starting at the
// slice containing the task's LCT, identical in shape to timeline.scheduleTask.
func (rt *revTimeline) scheduleTask(tk task) {
	rho := tk.duration
	k := rt.s.find(rt.m[tk.localID])
	for rho > 0 {
		delta := rt.c[k]
		if rho < delta {
			delta = rho
		}
		rho -= delta
		rt.c[k] -= delta
		if rt.c[k] == 0 {
			rt.s.union(k, k+1)
			k = rt.s.find(k)
		}
	}
	if k > rt.e {
		rt.e = k
	}
}

// latestStartingTime returns the aggregate latest start of every task
// scheduled so far, or t[0] by convention when nothing has been scheduled.
func (rt *revTimeline) latestStartingTime() int {
	if rt.e == -1 {
		return rt.t[0]
	}
	return rt.t[rt.e+1] + rt.c[rt.e]
}
