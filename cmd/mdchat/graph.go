package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
)

func newGraphCmd() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "graph <file|->",
		Short: "Build a knowledge graph of triplets from a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return withDeps(func(deps *Deps) error {
				graph, err := deps.GraphHandler.Handle(cmd.Context(), text, flags.preprompt, deps.Config.LLM.APIKey)
				if err != nil {
					return fmt.Errorf("building graph: %w", err)
				}

				if asJSON {
					return handlers.WriteJSON(cmd.OutOrStdout(), graph)
				}
				return printGraph(cmd.OutOrStdout(), graph)
			})
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the graph as JSON")

	return cmd
}
