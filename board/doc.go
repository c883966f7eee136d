// Package board defines the static terrain model and the dynamic state
// tuple for a weighted Sokoban puzzle, and loads both from a text file.
//
// A Board is immutable once loaded: walls, floor, and switch cells never
// change during a run. A State is a value-typed snapshot of the agent
// position and the stone positions in their initial scan order; Key()
// renders the canonical (sorted) form, so two States with the same agent
// position and the same set of stone positions share one map key.
//
// Complexity:
//
//   - Load: O(rows*cols) to parse and validate the grid.
//   - State.Key: O(n log n) to sort n stones, O(n) to render the key.
//
// Errors:
//
//	ErrMissingFile          - the input path does not exist or cannot be opened.
//	ErrEmptyFile             - the input file has no content.
//	ErrMalformedHeader       - the first line is not whitespace-separated positive integers.
//	ErrStoneWeightMismatch   - the number of stones does not match the number of weights.
//	ErrNoAgent               - no '@' or '+' cell was found.
//	ErrMultipleAgents        - more than one '@'/'+' cell was found.
package board
