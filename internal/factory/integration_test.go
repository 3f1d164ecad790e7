package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlesolver/internal/model"
	redisstorage "github.com/mcoot/puzzlesolver/internal/storage/redis"
)

const (
	dialExample      = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82"
	freshnessExample = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32"
)

type IntegrationSuite struct {
	suite.Suite
	app      *TestApp
	ctx      context.Context
	newStore func() *TestApp
}

func TestIntegrationSuiteMemory(t *testing.T) {
	suite.Run(t, &IntegrationSuite{newStore: NewTestApp})
}

func TestIntegrationSuiteRedis(t *testing.T) {
	s := &IntegrationSuite{}
	s.newStore = func() *TestApp {
		mini := miniredis.RunT(s.T())
		client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
		return NewTestAppWithStorage(redisstorage.NewWithClient(client, redisstorage.DefaultConfig()))
	}
	suite.Run(t, s)
}

func (s *IntegrationSuite) SetupTest() {
	s.app = s.newStore()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.NoError(s.app.Close())
}

// Test: both puzzles solve, cache, and list through the wired app
func (s *IntegrationSuite) TestSolveFlow() {
	s.app.MockRandom.QueueString("RUNDIAL00001", "RUNFRESH0001", "RUNDIAL00002")

	// Step 1: Solve the dial example
	dialRun, err := s.app.SolverController.Solve(s.ctx, model.PuzzleDial, dialExample)
	s.Require().NoError(err)
	s.Equal(3, dialRun.Result)
	s.False(dialRun.Cached)

	// Step 2: Solve the freshness example
	s.app.MockClock.Advance(time.Second)
	freshRun, err := s.app.SolverController.Solve(s.ctx, model.PuzzleFreshness, freshnessExample)
	s.Require().NoError(err)
	s.Equal(3, freshRun.Result)

	// Step 3: Resubmit the dial input and hit the cache
	s.app.MockClock.Advance(time.Second)
	again, err := s.app.SolverController.Solve(s.ctx, model.PuzzleDial, dialExample)
	s.Require().NoError(err)
	s.True(again.Cached)
	s.Equal(3, again.Result)

	// Step 4: Runs come back newest first
	runs, err := s.app.SolverController.ListRuns(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Require().Len(runs, 3)
	s.Equal(model.RunID("RUNDIAL00002"), runs[0].ID)
	s.Equal(model.RunID("RUNFRESH0001"), runs[1].ID)
	s.Equal(model.RunID("RUNDIAL00001"), runs[2].ID)

	dialRuns, err := s.app.SolverController.ListRuns(s.ctx, model.PuzzleDial, 0)
	s.Require().NoError(err)
	s.Len(dialRuns, 2)

	// Step 5: Fetch by ID
	fetched, err := s.app.SolverController.GetRun(s.ctx, freshRun.ID)
	s.Require().NoError(err)
	s.Equal(model.PuzzleFreshness, fetched.Puzzle)
	s.Equal(freshRun.InputDigest, fetched.InputDigest)
}

// Test: malformed input leaves no trace in storage
func (s *IntegrationSuite) TestRejectedInputFlow() {
	s.app.MockRandom.QueueString("RUN000000001")

	_, err := s.app.SolverController.Solve(s.ctx, model.PuzzleDial, "L1\nR\n")
	s.Require().ErrorIs(err, model.ErrMalformedNumber)

	runs, err := s.app.SolverController.ListRuns(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Empty(runs)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.SolverController == nil || app.Storage == nil {
		t.Fatal("expected wired app")
	}
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	if _, err := New(Config{StorageType: "postgres"}); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
	if _, err := New(Config{StorageType: StorageTypeRedis}); err == nil {
		t.Fatal("expected error when RedisConfig is missing")
	}
}

func TestNewWithRedis(t *testing.T) {
	mini := miniredis.RunT(t)
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = app.Close() }()

	run, err := app.SolverController.Solve(context.Background(), model.PuzzleDial, dialExample)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if run.Result != 3 {
		t.Fatalf("expected password 3, got %d", run.Result)
	}
	if len(run.ID) != 12 {
		t.Fatalf("expected 12-char run ID, got %q", run.ID)
	}
}
