package model

import (
	"fmt"
	"time"
)

// PuzzleKind names one of the supported simulations
type PuzzleKind string

const (
	PuzzleDial      PuzzleKind = "dial"      // Safe dial rotation password
	PuzzleFreshness PuzzleKind = "freshness" // Fresh ID count over inclusive ranges
)

// PuzzleKinds lists every supported puzzle in display order
var PuzzleKinds = []PuzzleKind{PuzzleDial, PuzzleFreshness}

// ParsePuzzleKind validates a puzzle name
func ParsePuzzleKind(s string) (PuzzleKind, error) {
	for _, k := range PuzzleKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPuzzle, s)
}

// RunID uniquely identifies a solve run
type RunID string

// Run records one solved input
type Run struct {
	ID          RunID
	Puzzle      PuzzleKind
	InputDigest string // hex SHA-256 of the raw input
	Result      int
	LineCount   int
	Cached      bool // true when the result came from the result cache
	CreatedAt   time.Time
}

// CachedResult is the memoised answer for a (puzzle, input digest) pair
type CachedResult struct {
	Puzzle      PuzzleKind
	InputDigest string
	Result      int
	LineCount   int
	SolvedAt    time.Time
}
