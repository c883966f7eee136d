package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("bfs: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// NodeCap, if > 0, bounds the number of states expanded before
	// Search returns ErrSearchExhausted.
	NodeCap int

	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, no node cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		NodeCap: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNodeCap bounds the number of states expanded (0 disables the cap).
func WithNodeCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeCap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeCap = n
	}
}

// Result is the outcome of a BFS search: the raw action sequence and the
// number of states expanded.
type Result struct {
	Actions string
	Nodes   int
}
