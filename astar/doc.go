// Package astar searches for a low-total-cost solution to a weighted Sokoban
// configuration using A* search over the shared search frame in
// internal/engine, guided by the Manhattan-distance estimate in
// package heuristic.
//
// What:
//
//   - Explores states via a min-priority queue keyed on f = g + h, where
//     g is accumulated cost and h is heuristic.Estimate of the remaining
//     distance.
//   - Uses the same finalize-on-pop discipline as ucs: a state is
//     settled the first time it is popped and is never reopened.
//   - The heuristic is not admissible (see heuristic's doc comment), so
//     neither the cost at which a state is settled nor the cost of the
//     returned solution is guaranteed to be minimal; A* here trades that
//     guarantee for a smaller explored frontier than ucs on most boards.
//     The root package's tests check that it matches ucs's solution
//     cost on the boards they use.
//
// Complexity:
//
//   - Time:   O(b^d log N), where N is the number of frontier entries.
//   - Memory: O(states visited) for the cost table, parent links, and heap.
//
// Errors:
//
//   - ErrBoardNil        board pointer is nil.
//   - ErrOptionViolation invalid Option supplied.
//   - engine.ErrNoSolution, engine.ErrSearchExhausted, engine.ErrCancelled.
package astar
