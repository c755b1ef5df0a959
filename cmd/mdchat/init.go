package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize mdchat in the current directory",
		Long:  "Creates a .mdchat directory with default configuration and a schemas directory holding an example data model.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Schema catalog: %s\n", result.SchemasDir)
	fmt.Fprintf(out, "Example model: %s\n", handlers.ExampleModel)
	fmt.Fprintln(out, "mdchat initialized successfully!")

	return nil
}
