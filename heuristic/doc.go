// Package heuristic estimates the remaining cost from a State to the
// goal for use by the A* search engine.
//
// The estimate sums, for each stone, its weight times the Manhattan
// distance to the nearest switch, plus the Manhattan distance from the
// agent to its nearest stone. Switches may be shared across the minima
// taken per stone, so the bound is not strictly admissible; it is an
// effective ordering heuristic rather than a proof-carrying lower bound,
// matching the reference implementation's intent.
package heuristic
