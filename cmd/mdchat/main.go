// Package main provides the entry point for the mdchat CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalAPIKey string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mdchat",
		Short:         "Turn unstructured text into structured data with an LLM",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalAPIKey, "api-key", "", "LLM API key (overrides config and OPENAI_API_KEY)")

	rootCmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newEvaluateCmd(),
		newExtractCmd(),
		newGraphCmd(),
		newRunCmd(),
		newModelsCmd(),
		newTokenCmd(),
	)

	return rootCmd
}
