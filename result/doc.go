// Package result assembles the Result record a search engine produces
// into its externally-visible form: the action sequence, a replayed
// per-step cost trace, run statistics, and an on-disk file format for
// collecting results from multiple algorithms.
//
// What:
//
//   - Assemble packages an engine's raw (actions, nodes-expanded,
//     elapsed, peak-memory) tuple into a Result, replaying the action
//     sequence against the initial board to compute CostSteps and
//     TotalCost independently of whatever costs the search itself used
//     for ordering.
//   - Save/Load read and write the 3-line-per-record text format:
//     algorithm name, statistics line, action sequence.
//
// Why replay instead of trusting the search's own cost accounting: every
// engine accumulates path cost on its search nodes, but only UCS and A*
// use it (to order their frontiers), and keeping one path authoritative
// (replay) computes every algorithm's reported cost the same way. See
// doc comment on Replay for the mechanics.
//
// Errors:
//
//   - ErrUnreplayable  the action sequence could not be replayed against
//     the initial board (malformed action label or a push with no stone
//     at the expected position).
package result
