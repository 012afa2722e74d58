// Package disjunctive implements the core of a disjunctive-scheduling
// constraint propagator: given a set of unary-resource tasks, each with an
// integer-valued start-time variable and a fixed positive duration, it
// tightens those start-time bounds by detecting detectable precedences —
// pairs of tasks where one is forced to complete before the other can start.
//
// The algorithm is Vilím's Θ-free detectable-precedences propagation. A
// single Propagate call runs two sweeps over the task set, sorted by
// {earliest completion, latest start}:
//
//   - a forward sweep over a timeline aggregating earliest completion times,
//     producing lower-bound pushes;
//   - a reverse sweep over a mirrored timeline aggregating latest start
//     times, producing upper-bound pushes.
//
// Both timelines are scratch structures built fresh from a bounds snapshot
// at the start of each Propagate call and discarded at the end of it; they
// are backed by a union-find over time-slice indices so that scheduling a
// task onto an already-consumed slice costs amortized near-constant time.
//
// This package knows nothing about the host solver's trail, clause learning
// or event queue — it only consumes a small capability interface (Bounds,
// MutableBounds, Registrar) that any finite-domain CP solver can implement
// over its own variable store. See pkg/minikanren for one such host, and
// cmd/goschedcp for a runnable command-line front-end.
package disjunctive
