// Package deadlock implements a conservative dead-state filter for
// weighted Sokoban configurations: corner traps and wall-braced stone
// pairs from which no legal sequence of pushes can reach the goal.
//
// The detector is intentionally conservative: false negatives (missed
// deadlocks) are acceptable, false positives (pruning a solvable
// configuration) are not, for the corpus this package is validated
// against.
//
// Check iterates the stone list in its caller-supplied order and returns
// false the instant any stone already sits on a switch — that early
// return short-circuits the *entire* configuration, not just the stone
// in question, including stones not yet examined. This mirrors the
// reference implementation's behavior and is preserved deliberately
// rather than "fixed"; see the package tests for the consequence.
package deadlock
