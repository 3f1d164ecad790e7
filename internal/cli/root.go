package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
	logger *slog.Logger
)

// errReported marks failures whose details were already printed
var errReported = errors.New("failures reported")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "puzzlesolver",
		Short: "Solve dial and freshness puzzle inputs",
		Long: `puzzlesolver runs the safe dial and ingredient freshness simulations over
arbitrarily large decimal inputs.

Inputs are solved in-process by default. Use --remote to submit them to a
puzzlesolver server, which records every run and caches repeated inputs.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PUZZLESOLVER_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		}
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
