package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/application/handlers"
)

// inputFlags are the flags shared by commands that read a text and a schema.
type inputFlags struct {
	model     string
	schema    string
	preprompt string
}

func (f *inputFlags) register(cmd *cobra.Command, withSchema bool) {
	if withSchema {
		cmd.Flags().StringVarP(&f.model, "model", "m", "", "Data model name from the schema catalog")
		cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Path to a JSON or YAML schema file (overrides --model)")
	}
	cmd.Flags().StringVarP(&f.preprompt, "preprompt", "p", "", "Extra instructions sent before the fixed prompt")
}

func (f *inputFlags) schemaRef() handlers.SchemaRef {
	return handlers.SchemaRef{Model: f.model, File: f.schema}
}

// readInput reads the text named by the first argument ("-" for stdin).
func readInput(cmd *cobra.Command, args []string) (string, error) {
	return handlers.ReadText(args[0], cmd.InOrStdin())
}
