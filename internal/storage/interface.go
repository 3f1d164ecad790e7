package storage

import (
	"context"

	"github.com/mcoot/puzzlesolver/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Run operations
	SaveRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id model.RunID) (*model.Run, error)
	// ListRuns returns runs newest first. An empty puzzle matches every
	// puzzle and a limit <= 0 returns all runs.
	ListRuns(ctx context.Context, puzzle model.PuzzleKind, limit int) ([]*model.Run, error)

	// Result cache operations
	GetCachedResult(ctx context.Context, puzzle model.PuzzleKind, digest string) (*model.CachedResult, error)
	SaveCachedResult(ctx context.Context, result *model.CachedResult) error
}
