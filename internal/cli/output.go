package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/puzzlesolver/internal/batch"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		apiErr := APIError{Message: err.Error()}
		if e, ok := err.(*APIError); ok {
			apiErr = *e
		}
		data, _ := json.Marshal(ErrorResponse{Error: apiErr})
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SolveResult:
		o.printSolveResult(v)
	case Run:
		o.printRun(v)
	case RunList:
		o.printRunList(v)
	case *batch.Report:
		o.printBatchReport(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SolveResult is the outcome of the solve command
type SolveResult struct {
	Puzzle    string      `json:"puzzle"`
	Answer    int         `json:"answer"`
	LineCount int         `json:"line_count"`
	RunID     string      `json:"run_id,omitempty"`
	Cached    bool        `json:"cached,omitempty"`
	Trace     []TraceStep `json:"trace,omitempty"`
}

// TraceStep is one dial line in verbose output
type TraceStep struct {
	Line     int    `json:"line"`
	Text     string `json:"text"`
	Applied  bool   `json:"applied"`
	Position int    `json:"position"`
	Password int    `json:"password"`
}

// Run response type (matches API)
type Run struct {
	ID          string    `json:"id"`
	Puzzle      string    `json:"puzzle"`
	Result      int       `json:"result"`
	InputDigest string    `json:"input_digest"`
	LineCount   int       `json:"line_count"`
	Cached      bool      `json:"cached"`
	CreatedAt   time.Time `json:"created_at"`
}

// RunList response type
type RunList struct {
	Runs []Run `json:"runs"`
}

// HealthResult response type
type HealthResult struct {
	Status  string   `json:"status"`
	Puzzles []string `json:"puzzles,omitempty"`
}

func (o *Output) printSolveResult(r SolveResult) {
	for _, s := range r.Trace {
		marker := " "
		if !s.Applied {
			marker = "-"
		}
		fmt.Fprintf(o.out, "%5d %s %-12s -> %2d  (zeros: %d)\n", s.Line, marker, s.Text, s.Position, s.Password)
	}
	if r.RunID != "" {
		cached := ""
		if r.Cached {
			cached = " (cached)"
		}
		fmt.Fprintf(o.out, "Run: %s%s\n", r.RunID, cached)
	}
	fmt.Fprintf(o.out, "Answer: %d\n", r.Answer)
}

func (o *Output) printRun(r Run) {
	fmt.Fprintf(o.out, "Run: %s\n", r.ID)
	fmt.Fprintf(o.out, "Puzzle: %s\n", r.Puzzle)
	fmt.Fprintf(o.out, "Result: %d\n", r.Result)
	fmt.Fprintf(o.out, "Lines: %d\n", r.LineCount)
	fmt.Fprintf(o.out, "Cached: %t\n", r.Cached)
	fmt.Fprintf(o.out, "Digest: %s\n", r.InputDigest)
	fmt.Fprintf(o.out, "Created: %s\n", r.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printRunList(l RunList) {
	if len(l.Runs) == 0 {
		fmt.Fprintln(o.out, "No runs")
		return
	}
	for _, r := range l.Runs {
		fmt.Fprintf(o.out, "%s  %-9s  %6d  %s\n", r.ID, r.Puzzle, r.Result, r.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printBatchReport(r *batch.Report) {
	for _, res := range r.Results {
		switch res.Status {
		case batch.StatusError:
			fmt.Fprintf(o.out, "ERROR     %s (%s): %s\n", res.Name, res.Puzzle, res.Error)
		case batch.StatusMismatch:
			fmt.Fprintf(o.out, "MISMATCH  %s (%s): got %d, want %d\n", res.Name, res.Puzzle, *res.Answer, *res.Expect)
		case batch.StatusPass:
			fmt.Fprintf(o.out, "PASS      %s (%s): %d\n", res.Name, res.Puzzle, *res.Answer)
		default:
			fmt.Fprintf(o.out, "SOLVED    %s (%s): %d\n", res.Name, res.Puzzle, *res.Answer)
		}
	}
	fmt.Fprintf(o.out, "%d passed, %d failed\n", r.Passed, r.Failed)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.out, "Status: %s\n", h.Status)
	if len(h.Puzzles) > 0 {
		fmt.Fprintf(o.out, "Puzzles: %v\n", h.Puzzles)
	}
}
