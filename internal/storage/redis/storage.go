package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Run operations

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	key := runKey(run.ID)
	score := float64(run.CreatedAt.UnixNano())

	// Save the run and add it to both indexes in one round trip
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, s.cfg.RunTTL)
	pipe.ZAdd(ctx, runsIndexKey(""), redis.Z{Score: score, Member: key})
	pipe.ZAdd(ctx, runsIndexKey(run.Puzzle), redis.Z{Score: score, Member: key})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	data, err := s.client.Get(ctx, runKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}

	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Storage) ListRuns(ctx context.Context, puzzle model.PuzzleKind, limit int) ([]*model.Run, error) {
	indexKey := runsIndexKey(puzzle)

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	// Newest first
	keys, err := s.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Run{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	runs := make([]*model.Run, 0, len(values))
	var expired []any
	for i, val := range values {
		if val == nil {
			expired = append(expired, keys[i])
			continue
		}
		var run model.Run
		if err := json.Unmarshal([]byte(val.(string)), &run); err != nil {
			continue // Skip invalid data
		}
		runs = append(runs, &run)
	}

	// Drop index entries whose runs have expired
	if len(expired) > 0 {
		_ = s.client.ZRem(ctx, indexKey, expired...).Err()
	}

	return runs, nil
}

// Result cache operations

func (s *Storage) GetCachedResult(ctx context.Context, puzzle model.PuzzleKind, digest string) (*model.CachedResult, error) {
	data, err := s.client.Get(ctx, resultKey(puzzle, digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCacheMiss
		}
		return nil, err
	}

	var cached model.CachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (s *Storage) SaveCachedResult(ctx context.Context, result *model.CachedResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, resultKey(result.Puzzle, result.InputDigest), data, s.cfg.ResultTTL).Err()
}
