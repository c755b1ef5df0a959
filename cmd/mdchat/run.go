package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
	"github.com/ersonp/mdchat/internal/domain/entities"
)

func newRunCmd() *cobra.Command {
	var (
		model     string
		preprompt string
		multiple  bool
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "run <file|->",
		Short: "Evaluate, graph and extract a text in one go",
		Long: `Runs the evaluator, knowledge graph builder and extractor concurrently
against the selected data model and prints all three results as JSON.
If any of them fails the extraction is left empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return withDeps(func(deps *Deps) error {
				state, runErr := deps.RunHandler.Handle(cmd.Context(), entities.Submission{
					Model:     model,
					Text:      text,
					Preprompt: preprompt,
					Multiple:  multiple,
					APIKey:    deps.Config.LLM.APIKey,
				})

				if outPath != "" && runErr == nil {
					if err := handlers.WriteJSONFile(outPath, state.Extraction); err != nil {
						return err
					}
				}
				if err := handlers.WriteJSON(cmd.OutOrStdout(), state); err != nil {
					return err
				}
				if runErr != nil {
					return fmt.Errorf("running: %w", runErr)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Data model name from the schema catalog (required)")
	cmd.Flags().StringVarP(&preprompt, "preprompt", "p", "", "Extra instructions sent before each fixed prompt")
	cmd.Flags().BoolVar(&multiple, "multiple", false, "Extract every instance of the model as an items array")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Also write the extracted data to a file")

	return cmd
}
