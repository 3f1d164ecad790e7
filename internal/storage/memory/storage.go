package memory

import (
	"context"
	"sync"

	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	runs     map[model.RunID]*model.Run
	runOrder []model.RunID // insertion order, oldest first
	results  map[resultKey]*model.CachedResult
}

type resultKey struct {
	puzzle model.PuzzleKind
	digest string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		runs:    make(map[model.RunID]*model.Run),
		results: make(map[resultKey]*model.CachedResult),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Run operations

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; !exists {
		s.runOrder = append(s.runOrder, run.ID)
	}
	stored := *run
	s.runs[run.ID] = &stored
	return nil
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	result := *run
	return &result, nil
}

func (s *Storage) ListRuns(ctx context.Context, puzzle model.PuzzleKind, limit int) ([]*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := []*model.Run{}
	for i := len(s.runOrder) - 1; i >= 0; i-- {
		if limit > 0 && len(runs) >= limit {
			break
		}
		run := s.runs[s.runOrder[i]]
		if puzzle != "" && run.Puzzle != puzzle {
			continue
		}
		copied := *run
		runs = append(runs, &copied)
	}
	return runs, nil
}

// Result cache operations

func (s *Storage) GetCachedResult(ctx context.Context, puzzle model.PuzzleKind, digest string) (*model.CachedResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.results[resultKey{puzzle: puzzle, digest: digest}]
	if !ok {
		return nil, model.ErrCacheMiss
	}
	result := *cached
	return &result, nil
}

func (s *Storage) SaveCachedResult(ctx context.Context, result *model.CachedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *result
	s.results[resultKey{puzzle: result.Puzzle, digest: result.InputDigest}] = &stored
	return nil
}
