package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/puzzlesolver/internal/factory"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/textinput"
)

func newSolveCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "solve PUZZLE [FILE|-]",
		Short: "Solve a puzzle input",
		Long: `Solve a dial or freshness puzzle input read from FILE, or from stdin when
FILE is omitted or "-". With --verbose the dial position after every line
is printed as well.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{string(model.PuzzleDial), string(model.PuzzleFreshness)},
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := model.ParsePuzzleKind(args[0])
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 2 {
				path = args[1]
			}
			input, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			var result *SolveResult
			if remote {
				result, err = solveRemote(cmd.Context(), puzzle, input)
			} else {
				result, err = solveLocal(cmd.Context(), puzzle, input, cfg.Verbose)
			}
			if err != nil {
				return err
			}

			newOutput(cmd).Print(*result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Solve on the server instead of in-process")

	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// newLocalApp wires an in-memory app for solving without a server
func newLocalApp() (*factory.App, error) {
	return factory.New(factory.Config{
		Logger:      logger,
		StorageType: factory.StorageTypeMemory,
	})
}

func solveLocal(ctx context.Context, puzzle model.PuzzleKind, input string, trace bool) (*SolveResult, error) {
	app, err := newLocalApp()
	if err != nil {
		return nil, err
	}
	defer func() { _ = app.Close() }()

	run, err := app.SolverController.Solve(ctx, puzzle, input)
	if err != nil {
		return nil, err
	}

	result := &SolveResult{
		Puzzle:    string(run.Puzzle),
		Answer:    run.Result,
		LineCount: run.LineCount,
	}

	if trace && puzzle == model.PuzzleDial {
		steps, err := app.DialService.Trace(ctx, input)
		if err != nil {
			return nil, err
		}
		result.Trace = make([]TraceStep, 0, len(steps))
		for _, s := range steps {
			result.Trace = append(result.Trace, TraceStep{
				Line:     s.Line,
				Text:     s.Text,
				Applied:  s.Applied,
				Position: s.Position,
				Password: s.Password,
			})
		}
	}

	return result, nil
}

func solveRemote(ctx context.Context, puzzle model.PuzzleKind, input string) (*SolveResult, error) {
	logger.Debug("submitting input",
		slog.String("server", cfg.ServerURL),
		slog.String("puzzle", string(puzzle)),
		slog.Int("lines", len(textinput.Lines(input))),
	)

	run, err := client.Solve(ctx, string(puzzle), input)
	if err != nil {
		return nil, err
	}

	return &SolveResult{
		Puzzle:    run.Puzzle,
		Answer:    run.Result,
		LineCount: run.LineCount,
		RunID:     run.ID,
		Cached:    run.Cached,
	}, nil
}
