package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/puzzlesolver/internal/batch"
)

func newBatchCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Solve every job in a YAML manifest",
		Long: `Solve every job listed in a YAML manifest and compare answers with the
expected values it declares. Exits non-zero if any job errors or mismatches.

Example manifest:

  jobs:
    - name: dial-example
      puzzle: dial
      input_file: inputs/dial.txt
      expect: 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			var solve batch.SolveFunc
			if remote {
				solve = func(ctx context.Context, job batch.Job, input string) (int, error) {
					run, err := client.Solve(ctx, string(job.Puzzle), input)
					if err != nil {
						return 0, err
					}
					return run.Result, nil
				}
			} else {
				app, err := newLocalApp()
				if err != nil {
					return err
				}
				defer func() { _ = app.Close() }()

				solve = func(ctx context.Context, job batch.Job, input string) (int, error) {
					run, err := app.SolverController.Solve(ctx, job.Puzzle, input)
					if err != nil {
						return 0, err
					}
					return run.Result, nil
				}
			}

			report, err := batch.Run(cmd.Context(), manifest, solve)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(report)
			if !report.OK() {
				return fmt.Errorf("%d of %d jobs failed: %w", report.Failed, len(report.Results), errReported)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Solve on the server instead of in-process")

	return cmd
}
