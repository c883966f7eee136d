// Package successor enumerates the legal moves and pushes available
// from a board.State: walking the agent into an empty, non-wall cell, or
// pushing a stone one cell further in the same direction when the cell
// beyond it is clear and the resulting configuration is not a deadlock.
//
// Transitions are emitted in the fixed order Up, Left, Down, Right so
// that frontier disciplines relying on stable emission order (DFS's
// LIFO pop order, priority-queue tie-breaks) are deterministic across
// runs.
package successor
