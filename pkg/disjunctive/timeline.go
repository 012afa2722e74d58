package disjunctive

import "sort"

// timeline maintains the earliest completion time of a growing set of tasks
// scheduled onto it, over a fixed vector of time points built once from a
// bounds snapshot at construction. It is scratch: built fresh for one
// propagate() call and discarded at the end of that call.
type timeline struct {
	t []int // strictly increasing time points, sentinel-terminated
	c []int // c[k] = t[k+1] - t[k], mutated as work is scheduled
	m []int // m[localID] = index into t of that task's EST
	e int   // rightmost slice touched so far, -1 if none
	s *unionFind
}

// newTimeline builds the forward timeline from tasks and a bounds snapshot:
// distinct ESTs sorted ascending, padded with one sentinel point past the
// latest possible completion of any task.
func newTimeline(tasks []task, b Bounds) *timeline {
	order := make([]task, len(tasks))
	copy(order, tasks)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].est(b) < order[j].est(b)
	})

	t := make([]int, 0, len(order)+1)
	m := make([]int, len(tasks))
	for _, tk := range order {
		est := tk.est(b)
		if len(t) == 0 || t[len(t)-1] != est {
			t = append(t, est)
		}
		m[tk.localID] = len(t) - 1
	}

	highestLCT := tasks[0].lct(b)
	totalDuration := 0
	for _, tk := range tasks {
		if lct := tk.lct(b); lct > highestLCT {
			highestLCT = lct
		}
		totalDuration += tk.duration
	}
	t = append(t, highestLCT+totalDuration)

	c := make([]int, len(t)-1)
	for k := range c {
		c[k] = t[k+1] - t[k]
	}

	return &timeline{t: t, c: c, m: m, e: -1, s: newUnionFind(len(t))}
}

// scheduleTask pours task.duration units of work into slices starting at the
// slice containing the task's EST, merging fully-consumed slices into their
// right neighbor via the union-find.
func (tl *timeline) scheduleTask(tk task) {
	rho := tk.duration
	k := tl.s.find(tl.m[tk.localID])
	for rho > 0 {
		delta := tl.c[k]
		if rho < delta {
			delta = rho
		}
		rho -= delta
		tl.c[k] -= delta
		if tl.c[k] == 0 {
			tl.s.union(k, k+1)
			k = tl.s.find(k)
		}
	}
	if k > tl.e {
		tl.e = k
	}
}

// earliestCompletionTime returns the aggregate earliest completion of every
// task scheduled so far, or t[0] by convention when nothing has been
// scheduled (symmetric with revTimeline.latestStartingTime's t[0] sentinel:
// the loosest possible value in the push direction, so callers comparing it
// against a task's own bound see no forced change).
func (tl *timeline) earliestCompletionTime() int {
	if tl.e == -1 {
		return tl.t[0]
	}
	return tl.t[tl.e+1] - tl.c[tl.e]
}
