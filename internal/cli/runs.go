package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect runs recorded by the server",
	}

	cmd.AddCommand(newRunsGetCmd())
	cmd.AddCommand(newRunsListCmd())

	return cmd
}

func newRunsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var run Run
			if err := client.Get(cmd.Context(), "/api/v1/runs/"+url.PathEscape(args[0]), &run); err != nil {
				return err
			}

			newOutput(cmd).Print(run)
			return nil
		},
	}
}

func newRunsListCmd() *cobra.Command {
	var (
		puzzle string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			query := url.Values{}
			if puzzle != "" {
				query.Set("puzzle", puzzle)
			}
			if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}

			path := "/api/v1/runs"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var list RunList
			if err := client.Get(cmd.Context(), path, &list); err != nil {
				return err
			}

			newOutput(cmd).Print(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&puzzle, "puzzle", "", "Only list runs of this puzzle")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs (0 for all)")

	return cmd
}
