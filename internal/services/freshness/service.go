package freshness

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/puzzlesolver/internal/decimal"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/textinput"
)

// Service counts IDs that fall outside a set of inclusive ranges
type Service struct {
	logger *slog.Logger
}

// New creates a new FreshnessService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// ParseRange parses a "min-max" line, splitting on the first '-'
func ParseRange(line string) (model.Range, error) {
	minText, maxText, found := strings.Cut(strings.TrimSpace(line), "-")
	if !found {
		return model.Range{}, fmt.Errorf("%w: no '-' separator", model.ErrMalformedRange)
	}

	lo, err := decimal.Parse(minText)
	if err != nil {
		return model.Range{}, err
	}
	hi, err := decimal.Parse(maxText)
	if err != nil {
		return model.Range{}, err
	}

	return model.Range{Min: lo, Max: hi}, nil
}

// InRange returns true if id lies within r, inclusive of both ends
func InRange(id decimal.Value, r model.Range) bool {
	return r.Contains(id)
}

// IsFresh returns true if id lies outside every range.
// Scanning stops at the first range that contains id.
func IsFresh(id decimal.Value, ranges []model.Range) bool {
	for _, r := range ranges {
		if InRange(id, r) {
			return false
		}
	}
	return true
}

// Solve parses the ranges block and the IDs block and counts fresh IDs.
// The blocks are separated by the first line that is blank after trimming.
func (s *Service) Solve(ctx context.Context, input string) (*model.FreshnessResult, error) {
	var (
		ranges     []model.Range
		inIDs      bool
		fresh      int
		total      int
		lineNumber int
	)

	for i, raw := range textinput.Lines(input) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNumber = i + 1
		line := strings.TrimSpace(raw)

		if !inIDs {
			if line == "" {
				inIDs = true
				continue
			}
			r, err := ParseRange(line)
			if err != nil {
				return nil, &model.InputError{Line: lineNumber, Text: raw, Err: err}
			}
			ranges = append(ranges, r)
			continue
		}

		if line == "" {
			continue
		}
		id, err := decimal.Parse(line)
		if err != nil {
			return nil, &model.InputError{Line: lineNumber, Text: raw, Err: err}
		}
		total++
		if IsFresh(id, ranges) {
			fresh++
		}
	}

	if !inIDs {
		return nil, model.ErrMissingSeparator
	}

	s.logger.Debug("freshness checked",
		slog.Int("fresh", fresh),
		slog.Int("ids", total),
		slog.Int("ranges", len(ranges)),
		slog.Int("lines", lineNumber),
	)

	return &model.FreshnessResult{
		Fresh:  fresh,
		Total:  total,
		Ranges: len(ranges),
	}, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Solve(ctx context.Context, input string) (*model.FreshnessResult, error)
}

var _ ServiceInterface = (*Service)(nil)
