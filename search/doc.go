// Package search implements incremental graph search over a maze.Grid.
//
// What:
//
//   - NewBreadthFirst: FIFO frontier, shortest path in steps.
//   - NewAStar: frontier kept sorted by Cost + Heuristic, ties by Heuristic.
//   - Searcher.Step: one transition, returning a Snapshot of walls, open,
//     explored and frontier cells plus the partial path.
//   - Searcher.Run / BreadthFirst / AStar: step to completion, calling
//     OnStep and Yield between steps.
//
// The explored set is never reopened. In the ordered variant a new node's
// heuristic is the Manhattan distance from the node being expanded, so
// ordered results are valid but not always shortest.
//
// Complexity:
//
//   - Breadth-first: O(W×H) time and memory.
//   - Ordered: O(W×H × F) time, F = frontier size (sorted insertion).
//   - Snapshot: O(E + F) for explored and frontier copies.
//
// Options:
//
//   - WithContext: cancellation, checked once per step.
//   - WithCeiling: frontier size at which the search fails (default 10000).
//   - WithOnStep: per-step observer, e.g. a renderer.
//   - WithYield: between-steps yield (default runtime.Gosched).
//   - WithLogger: logrus.FieldLogger for progress and outcome.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrOptionViolation: invalid option.
//   - ErrFinished: Step called after termination.
//   - ErrStepHook: OnStep returned an error.
package search
