// Package engine implements the single search frame shared by BFS, DFS,
// UCS, and A*: a generic expand/goal-test loop parameterized by a
// Frontier implementation, so the four search strategies differ only in
// which frontier discipline and priority function they supply.
//
// Complexity:
//
//   - Time:  O(b^d) in the worst case, where b is the branching factor
//     (at most 4) and d the solution depth; bounded in practice by the
//     reachable, deadlock-pruned state space.
//   - Memory: O(states visited) for the visited set and parent map.
//
// Concurrency: Run is single-threaded; the only suspension point is the
// context.Context check performed once per pop, matching the
// specification's single-threaded search core.
package engine
