// Package ucs finds a minimum-total-cost solution to a weighted Sokoban
// configuration using uniform-cost search over the shared search frame
// in internal/engine.
//
// What:
//
//   - Explores states via a min-priority queue keyed on accumulated cost
//     g, with insertion order as a stable tiebreak.
//   - A state is finalized the first time it is popped with the lowest
//     cost seen for it; cheaper paths discovered later for an
//     already-finalized state cannot occur because all edge costs are
//     positive (walk = 1, push = 1+weight ≥ 2), the same non-negative
//     guarantee Dijkstra's algorithm relies on.
//   - Optimal with respect to total cost.
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
package ucs
