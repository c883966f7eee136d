// Package dfs explores a weighted Sokoban configuration depth-first
// using the shared search frame in internal/engine.
//
// What:
//
//   - Explores states via a LIFO frontier. Successors are pushed in
//     U,L,D,R order (see package successor), so the pop order is
//     R,D,L,U.
//   - Visited states are marked at push time (first-seen-wins); DFS
//     never reopens a state.
//   - Not optimal in steps or cost; acceptable provided the search
//     terminates, which deadlock pruning and the finite state space
//     guarantee.
//
// Complexity:
//
//   - Time:   O(b^d), bounded by the reachable, deadlock-pruned state space.
//   - Memory: O(states visited) for the visited set and parent links.
//
// Errors:
//
//   - ErrBoardNil        board pointer is nil.
//   - ErrOptionViolation invalid Option supplied.
//   - engine.ErrNoSolution, engine.ErrSearchExhausted, engine.ErrCancelled.
package dfs
