package board

import "errors"

// Sentinel errors for grid loading. Each is wrapped by InvalidInputError
// so callers can both errors.Is against the sentinel and read a
// human-readable Reason.
var (
	// ErrMissingFile is returned when the input path cannot be opened.
	ErrMissingFile = errors.New("board: input file not found")

	// ErrEmptyFile is returned when the input file has no lines at all.
	ErrEmptyFile = errors.New("board: input file is empty")

	// ErrMalformedHeader is returned when the first line is not a
	// whitespace-separated list of positive integers.
	ErrMalformedHeader = errors.New("board: malformed stone-weight header")

	// ErrStoneWeightMismatch is returned when the stone count and weight
	// count disagree.
	ErrStoneWeightMismatch = errors.New("board: stone count does not match weight count")

	// ErrNoAgent is returned when the map contains no '@' or '+' cell.
	ErrNoAgent = errors.New("board: no agent cell found")

	// ErrMultipleAgents is returned when the map contains more than one
	// '@' or '+' cell.
	ErrMultipleAgents = errors.New("board: multiple agent cells found")
)

// InvalidInputError wraps one of the sentinel errors above with a
// human-readable detail string, matching the core API's
// InvalidInput(reason) error shape.
type InvalidInputError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return e.Err.Error() + ": " + e.Reason
}

// Unwrap allows errors.Is/errors.As to see through to the sentinel.
func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func invalidInput(err error, reason string) error {
	return &InvalidInputError{Reason: reason, Err: err}
}
