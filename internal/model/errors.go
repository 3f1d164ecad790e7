package model

import (
	"errors"
	"fmt"

	"github.com/mcoot/puzzlesolver/internal/decimal"
)

// Common errors used across the application
var (
	// Input errors
	ErrMalformedNumber  = decimal.ErrMalformedNumber
	ErrNegativeResult   = decimal.ErrNegativeResult
	ErrMalformedRange   = errors.New("malformed range")
	ErrMissingSeparator = errors.New("missing blank line between ranges and IDs")

	// Puzzle errors
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	ErrEmptyInput    = errors.New("input is empty")

	// Run errors
	ErrRunNotFound = errors.New("run not found")
	ErrCacheMiss   = errors.New("no cached result for input")
)

// InputError reports a fatal problem with a single line of puzzle input
type InputError struct {
	Line int    // 1-based line number within the whole input
	Text string // the offending line as read
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
