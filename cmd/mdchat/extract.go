package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
)

func newExtractCmd() *cobra.Command {
	var (
		flags    inputFlags
		multiple bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "extract <file|->",
		Short: "Extract structured data conforming to a data model",
		Long: `Extracts a JSON value conforming to the schema from the text.
With --multiple, every instance found is returned under an "items" array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return withDeps(func(deps *Deps) error {
				data, err := deps.ExtractHandler.Handle(cmd.Context(), handlers.ExtractInput{
					Text:         text,
					Schema:       flags.schemaRef(),
					APIKey:       deps.Config.LLM.APIKey,
					SystemPrompt: flags.preprompt,
					Multiple:     multiple,
				})
				if err != nil {
					return fmt.Errorf("extracting: %w", err)
				}

				if outPath != "" {
					if err := handlers.WriteJSONFile(outPath, data); err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
					return nil
				}
				return handlers.WriteJSON(cmd.OutOrStdout(), data)
			})
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&multiple, "multiple", false, "Extract every instance of the model as an items array")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the result to a file instead of stdout")

	return cmd
}
