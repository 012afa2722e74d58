package minikanren

// monitor.go: lock-free search/propagation statistics for Solver.

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SolverStats holds statistics about a Solver's search process. The counter
// fields are written with atomic operations so they can be read concurrently
// with the search they track; SearchTime is set by FinishSearch with a plain,
// non-atomic write.
type SolverStats struct {
	NodesExplored  int64
	Backtracks     int64
	SolutionsFound int64
	SearchTime     time.Duration
	MaxDepth       int64

	PropagationCount int64
	PropagationTime  int64 // nanoseconds
}

// SolverMonitor collects SolverStats for a Solver without locking, matching
// the solver's own copy-on-write, lock-free architecture. A nil *SolverMonitor
// is valid and every method on it is a no-op, so Solver can call it
// unconditionally whether or not a caller attached one via SetMonitor.
type SolverMonitor struct {
	stats     SolverStats
	startTime time.Time
	propStart atomic.Int64
}

// NewSolverMonitor creates a monitor ready to attach to a Solver via
// Solver.SetMonitor.
func NewSolverMonitor() *SolverMonitor {
	return &SolverMonitor{startTime: time.Now()}
}

// GetStats returns a consistent snapshot of the current statistics, or nil
// if called on a nil monitor.
func (m *SolverMonitor) GetStats() *SolverStats {
	if m == nil {
		return nil
	}
	return &SolverStats{
		NodesExplored:    atomic.LoadInt64(&m.stats.NodesExplored),
		Backtracks:       atomic.LoadInt64(&m.stats.Backtracks),
		SolutionsFound:   atomic.LoadInt64(&m.stats.SolutionsFound),
		SearchTime:       m.stats.SearchTime,
		MaxDepth:         atomic.LoadInt64(&m.stats.MaxDepth),
		PropagationCount: atomic.LoadInt64(&m.stats.PropagationCount),
		PropagationTime:  atomic.LoadInt64(&m.stats.PropagationTime),
	}
}

// StartPropagation marks the start of a propagation pass.
func (m *SolverMonitor) StartPropagation() {
	if m == nil {
		return
	}
	m.propStart.Store(time.Now().UnixNano())
}

// EndPropagation marks the end of a propagation pass started with
// StartPropagation; a no-op if no pass is in flight.
func (m *SolverMonitor) EndPropagation() {
	if m == nil {
		return
	}
	startNano := m.propStart.Load()
	if startNano != 0 {
		elapsed := time.Now().UnixNano() - startNano
		atomic.AddInt64(&m.stats.PropagationTime, elapsed)
		atomic.AddInt64(&m.stats.PropagationCount, 1)
		m.propStart.Store(0)
	}
}

// RecordBacktrack records one search backtrack.
func (m *SolverMonitor) RecordBacktrack() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.Backtracks, 1)
}

// RecordNode records one explored search node.
func (m *SolverMonitor) RecordNode() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.NodesExplored, 1)
}

// RecordSolution records one solution found.
func (m *SolverMonitor) RecordSolution() {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.stats.SolutionsFound, 1)
}

// RecordDepth records the current search depth, keeping the running maximum.
func (m *SolverMonitor) RecordDepth(depth int) {
	if m == nil {
		return
	}
	depth64 := int64(depth)
	for {
		old := atomic.LoadInt64(&m.stats.MaxDepth)
		if depth64 <= old {
			break
		}
		if atomic.CompareAndSwapInt64(&m.stats.MaxDepth, old, depth64) {
			break
		}
	}
}

// FinishSearch marks the end of the search process.
func (m *SolverMonitor) FinishSearch() {
	if m == nil {
		return
	}
	m.stats.SearchTime = time.Since(m.startTime)
}

// String renders the statistics for human-readable debug output.
func (s *SolverStats) String() string {
	return fmt.Sprintf(
		"Solver Statistics:\n"+
			"  Nodes Explored:  %d\n"+
			"  Backtracks:      %d\n"+
			"  Solutions:       %d\n"+
			"  Max Depth:       %d\n"+
			"  Search Time:     %v\n"+
			"  Propagations:    %d\n"+
			"  Prop Time:       %v\n",
		s.NodesExplored,
		s.Backtracks,
		s.SolutionsFound,
		s.MaxDepth,
		s.SearchTime,
		s.PropagationCount,
		time.Duration(s.PropagationTime),
	)
}
