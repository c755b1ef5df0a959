package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
)

func newEvaluateCmd() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate <file|->",
		Short: "Check whether a text fits a data model",
		Long:  "Asks the LLM whether the text contains the information the schema describes, and prints the verdict with its reasoning.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return withDeps(func(deps *Deps) error {
				result, err := deps.EvaluateHandler.Handle(cmd.Context(), handlers.EvaluateInput{
					Text:         text,
					Schema:       flags.schemaRef(),
					APIKey:       deps.Config.LLM.APIKey,
					SystemPrompt: flags.preprompt,
				})
				if err != nil {
					return fmt.Errorf("evaluating: %w", err)
				}

				if asJSON {
					return handlers.WriteJSON(cmd.OutOrStdout(), result)
				}
				return printVerdict(cmd.OutOrStdout(), result)
			})
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the verdict as JSON")

	return cmd
}
