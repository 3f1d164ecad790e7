package batch

import (
	"context"
)

// Job outcomes
const (
	StatusPass     = "pass"     // answer matched expect
	StatusMismatch = "mismatch" // answer differed from expect
	StatusSolved   = "solved"   // no expectation given
	StatusError    = "error"    // input could not be read or solved
)

// SolveFunc solves one input and returns its answer
type SolveFunc func(ctx context.Context, job Job, input string) (int, error)

// Result is the outcome of one job
type Result struct {
	Name   string `json:"name"`
	Puzzle string `json:"puzzle"`
	Status string `json:"status"`
	Answer *int   `json:"answer,omitempty"`
	Expect *int   `json:"expect,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report summarises a manifest run
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every job passed or solved without an expectation
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run solves every job in order. A failing job does not stop the rest.
func Run(ctx context.Context, m *Manifest, solve SolveFunc) (*Report, error) {
	report := &Report{Results: make([]Result, 0, len(m.Jobs))}

	for _, job := range m.Jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := Result{
			Name:   job.Name,
			Puzzle: string(job.Puzzle),
			Expect: job.Expect,
		}

		answer, err := runJob(ctx, job, solve)
		switch {
		case err != nil:
			result.Status = StatusError
			result.Error = err.Error()
		case job.Expect == nil:
			result.Status = StatusSolved
			result.Answer = &answer
		case *job.Expect == answer:
			result.Status = StatusPass
			result.Answer = &answer
		default:
			result.Status = StatusMismatch
			result.Answer = &answer
		}

		if result.Status == StatusError || result.Status == StatusMismatch {
			report.Failed++
		} else {
			report.Passed++
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func runJob(ctx context.Context, job Job, solve SolveFunc) (int, error) {
	input, err := job.ReadInput()
	if err != nil {
		return 0, err
	}
	return solve(ctx, job, input)
}
