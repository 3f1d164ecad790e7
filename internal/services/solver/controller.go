package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"

	"github.com/mcoot/puzzlesolver/internal/dependencies/clock"
	"github.com/mcoot/puzzlesolver/internal/dependencies/random"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/services/dial"
	"github.com/mcoot/puzzlesolver/internal/services/freshness"
	"github.com/mcoot/puzzlesolver/internal/storage"
	"github.com/mcoot/puzzlesolver/internal/textinput"
)

const (
	// RunIDLength is the length of generated run IDs
	RunIDLength = 12
	// RunIDAlphabet is the characters used in run IDs
	RunIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller dispatches inputs to the puzzle services and records every run
type Controller struct {
	storage          storage.Storage
	dialService      dial.ServiceInterface
	freshnessService freshness.ServiceInterface
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new SolverController
func NewController(
	storage storage.Storage,
	dialService dial.ServiceInterface,
	freshnessService freshness.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		dialService:      dialService,
		freshnessService: freshnessService,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// Digest returns the hex SHA-256 of an input, used as the result cache key
func Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Solve runs the named puzzle over input and records the run.
// Identical inputs are answered from the result cache. Nothing is stored
// when the input is rejected.
func (c *Controller) Solve(ctx context.Context, puzzle model.PuzzleKind, input string) (*model.Run, error) {
	if _, err := model.ParsePuzzleKind(string(puzzle)); err != nil {
		return nil, err
	}

	digest := Digest(input)
	now := c.clock.Now()

	run := &model.Run{
		ID:          model.RunID(c.random.String(RunIDLength, RunIDAlphabet)),
		Puzzle:      puzzle,
		InputDigest: digest,
		CreatedAt:   now,
	}

	cached, err := c.storage.GetCachedResult(ctx, puzzle, digest)
	switch {
	case err == nil:
		run.Result = cached.Result
		run.LineCount = cached.LineCount
		run.Cached = true
	case errors.Is(err, model.ErrCacheMiss):
		result, err := c.solve(ctx, puzzle, input)
		if err != nil {
			c.logger.Warn("puzzle rejected",
				slog.String("puzzle", string(puzzle)),
				slog.String("digest", digest),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		run.Result = result
		run.LineCount = len(textinput.Lines(input))

		if err := c.storage.SaveCachedResult(ctx, &model.CachedResult{
			Puzzle:      puzzle,
			InputDigest: digest,
			Result:      run.Result,
			LineCount:   run.LineCount,
			SolvedAt:    now,
		}); err != nil {
			c.logger.Error("failed to cache result",
				slog.String("puzzle", string(puzzle)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	default:
		return nil, err
	}

	if err := c.storage.SaveRun(ctx, run); err != nil {
		c.logger.Error("failed to save run",
			slog.String("run_id", string(run.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("puzzle solved",
		slog.String("run_id", string(run.ID)),
		slog.String("puzzle", string(puzzle)),
		slog.Int("result", run.Result),
		slog.Bool("cached", run.Cached),
		slog.Duration("duration", c.clock.Since(now)),
	)

	return run, nil
}

func (c *Controller) solve(ctx context.Context, puzzle model.PuzzleKind, input string) (int, error) {
	switch puzzle {
	case model.PuzzleDial:
		result, err := c.dialService.Solve(ctx, input)
		if err != nil {
			return 0, err
		}
		return result.Password, nil
	case model.PuzzleFreshness:
		result, err := c.freshnessService.Solve(ctx, input)
		if err != nil {
			return 0, err
		}
		return result.Fresh, nil
	default:
		return 0, model.ErrUnknownPuzzle
	}
}

// GetRun retrieves a run by ID
func (c *Controller) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	return c.storage.GetRun(ctx, id)
}

// ListRuns returns recorded runs newest first, optionally filtered by puzzle
func (c *Controller) ListRuns(ctx context.Context, puzzle model.PuzzleKind, limit int) ([]*model.Run, error) {
	if puzzle != "" {
		if _, err := model.ParsePuzzleKind(string(puzzle)); err != nil {
			return nil, err
		}
	}
	return c.storage.ListRuns(ctx, puzzle, limit)
}
