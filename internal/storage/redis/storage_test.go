package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlesolver/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RunTTL = time.Hour
	cfg.ResultTTL = 0

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) saveRun(id model.RunID, puzzle model.PuzzleKind, offset time.Duration) {
	err := s.storage.SaveRun(s.ctx, &model.Run{
		ID:        id,
		Puzzle:    puzzle,
		CreatedAt: s.now.Add(offset),
	})
	s.Require().NoError(err)
}

// Run tests

func (s *StorageSuite) TestSaveAndGetRun() {
	run := &model.Run{
		ID:          "run-1",
		Puzzle:      model.PuzzleDial,
		InputDigest: "abc",
		Result:      3,
		LineCount:   10,
		Cached:      true,
		CreatedAt:   s.now,
	}

	err := s.storage.SaveRun(s.ctx, run)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	s.Equal(run.ID, retrieved.ID)
	s.Equal(run.Puzzle, retrieved.Puzzle)
	s.Equal(run.Result, retrieved.Result)
	s.Equal(run.LineCount, retrieved.LineCount)
	s.True(retrieved.Cached)
	s.True(run.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetRunNotFound() {
	_, err := s.storage.GetRun(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRunNotFound)
}

func (s *StorageSuite) TestRunHasTTL() {
	s.saveRun("run-1", model.PuzzleDial, 0)
	s.True(s.mini.TTL(runKey("run-1")) > 0, "Run should have TTL")
}

func (s *StorageSuite) TestListRunsNewestFirst() {
	s.saveRun("run-1", model.PuzzleDial, 0)
	s.saveRun("run-2", model.PuzzleFreshness, time.Second)
	s.saveRun("run-3", model.PuzzleDial, 2*time.Second)

	runs, err := s.storage.ListRuns(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Require().Len(runs, 3)
	s.Equal(model.RunID("run-3"), runs[0].ID)
	s.Equal(model.RunID("run-2"), runs[1].ID)
	s.Equal(model.RunID("run-1"), runs[2].ID)
}

func (s *StorageSuite) TestListRunsFiltersAndLimits() {
	s.saveRun("run-1", model.PuzzleDial, 0)
	s.saveRun("run-2", model.PuzzleFreshness, time.Second)
	s.saveRun("run-3", model.PuzzleDial, 2*time.Second)

	runs, err := s.storage.ListRuns(s.ctx, model.PuzzleDial, 0)
	s.Require().NoError(err)
	s.Len(runs, 2)

	runs, err = s.storage.ListRuns(s.ctx, model.PuzzleDial, 1)
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(model.RunID("run-3"), runs[0].ID)
}

func (s *StorageSuite) TestListRunsSkipsExpired() {
	s.saveRun("run-1", model.PuzzleDial, 0)
	s.saveRun("run-2", model.PuzzleDial, time.Second)

	s.mini.Del(runKey("run-1"))

	runs, err := s.storage.ListRuns(s.ctx, model.PuzzleDial, 0)
	s.Require().NoError(err)
	s.Require().Len(runs, 1)
	s.Equal(model.RunID("run-2"), runs[0].ID)

	// The stale index entry is cleaned up
	members, err := s.mini.ZMembers(runsIndexKey(model.PuzzleDial))
	s.Require().NoError(err)
	s.Equal([]string{runKey("run-2")}, members)
}

func (s *StorageSuite) TestListRunsEmpty() {
	runs, err := s.storage.ListRuns(s.ctx, "", 10)
	s.Require().NoError(err)
	s.Empty(runs)
}

// Result cache tests

func (s *StorageSuite) TestSaveAndGetCachedResult() {
	cached := &model.CachedResult{
		Puzzle:      model.PuzzleFreshness,
		InputDigest: "digest",
		Result:      3,
		LineCount:   11,
		SolvedAt:    s.now,
	}
	s.Require().NoError(s.storage.SaveCachedResult(s.ctx, cached))

	retrieved, err := s.storage.GetCachedResult(s.ctx, model.PuzzleFreshness, "digest")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Result)
	s.Equal(11, retrieved.LineCount)
}

func (s *StorageSuite) TestCachedResultMiss() {
	_, err := s.storage.GetCachedResult(s.ctx, model.PuzzleDial, "missing")
	s.ErrorIs(err, model.ErrCacheMiss)
}

func (s *StorageSuite) TestCachedResultTTL() {
	s.storage.cfg.ResultTTL = time.Minute
	cached := &model.CachedResult{Puzzle: model.PuzzleDial, InputDigest: "digest", Result: 1}
	s.Require().NoError(s.storage.SaveCachedResult(s.ctx, cached))

	s.mini.FastForward(2 * time.Minute)

	_, err := s.storage.GetCachedResult(s.ctx, model.PuzzleDial, "digest")
	s.ErrorIs(err, model.ErrCacheMiss)
}
