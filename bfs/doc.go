// Package bfs finds a shortest-in-actions solution to a weighted
// Sokoban configuration using breadth-first search over the shared
// search frame in internal/engine.
//
// What
//
//   - Explores states in non-decreasing number of actions from the
//     initial configuration.
//   - Visited states are marked at enqueue time (first-seen-wins); BFS
//     never reopens a state once it has been pushed.
//   - Returns the raw action sequence and the number of states expanded.
//
// Why
//
//   - BFS minimizes the number of actions (steps), not total cost — a
//     path that pushes a heavy stone first may be shorter in steps than
//     a cheaper path that walks around it. Use package ucs or package
//     astar for minimum-cost solutions.
//
// Determinism
//
//	Successors are enumerated in fixed U,L,D,R order (see package
//	successor), so repeated runs on the same input produce the same
//	action sequence.
//
// Complexity
//
//   - Time:  O(b^d), bounded by the reachable, deadlock-pruned state space.
//   - Memory: O(states visited) for the visited set and parent links.
//
// Options
//
//   - WithContext(ctx): cooperative cancellation, checked once per pop.
//   - WithNodeCap(n):   bound expansions before returning ErrSearchExhausted.
//
// Errors
//
//   - ErrBoardNil        if b is nil.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - engine.ErrNoSolution, engine.ErrSearchExhausted, engine.ErrCancelled.
package bfs
