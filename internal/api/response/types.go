package response

import (
	"time"

	"github.com/mcoot/puzzlesolver/internal/model"
)

// Run represents a solve run in API responses
type Run struct {
	ID          string    `json:"id"`
	Puzzle      string    `json:"puzzle"`
	Result      int       `json:"result"`
	InputDigest string    `json:"input_digest"`
	LineCount   int       `json:"line_count"`
	Cached      bool      `json:"cached"`
	CreatedAt   time.Time `json:"created_at"`
}

// RunFromModel converts a model.Run to a response Run
func RunFromModel(r *model.Run) Run {
	return Run{
		ID:          string(r.ID),
		Puzzle:      string(r.Puzzle),
		Result:      r.Result,
		InputDigest: r.InputDigest,
		LineCount:   r.LineCount,
		Cached:      r.Cached,
		CreatedAt:   r.CreatedAt,
	}
}

// RunList is the response for listing runs
type RunList struct {
	Runs []Run `json:"runs"`
}

// RunListFromModel converts a slice of runs, preserving order
func RunListFromModel(runs []*model.Run) RunList {
	list := RunList{Runs: make([]Run, 0, len(runs))}
	for _, r := range runs {
		list.Runs = append(list.Runs, RunFromModel(r))
	}
	return list
}

// Health is the response for the health endpoint
type Health struct {
	Status  string   `json:"status"`
	Puzzles []string `json:"puzzles,omitempty"`
}
