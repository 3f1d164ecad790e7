package redis

import (
	"fmt"

	"github.com/mcoot/puzzlesolver/internal/model"
)

// Key prefix for all solver data
const keyPrefix = "puzzlesolver"

// runKey returns the Redis key for a Run
func runKey(id model.RunID) string {
	return fmt.Sprintf("%s:run:%s", keyPrefix, id)
}

// runsIndexKey returns the Redis key for the sorted set of runs, scored by creation time.
// An empty puzzle selects the index across all puzzles.
func runsIndexKey(puzzle model.PuzzleKind) string {
	if puzzle == "" {
		return fmt.Sprintf("%s:idx:runs", keyPrefix)
	}
	return fmt.Sprintf("%s:idx:runs:%s", keyPrefix, puzzle)
}

// resultKey returns the Redis key for a cached result
func resultKey(puzzle model.PuzzleKind, digest string) string {
	return fmt.Sprintf("%s:result:%s:%s", keyPrefix, puzzle, digest)
}
