package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the data models in the schema catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				models, err := deps.ModelsHandler.Handle(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(models) == 0 {
					fmt.Fprintf(out, "No data models found in %s\n", deps.Config.Schemas.Dir)
					return nil
				}
				for _, m := range models {
					fmt.Fprintln(out, m)
				}
				return nil
			})
		},
	}
}
