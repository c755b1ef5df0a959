package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/api"
	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/infrastructure/auth"
	"github.com/ersonp/mdchat/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation endpoint over HTTP",
		Long:  "Starts an HTTP server exposing POST /api/evaluate behind bearer token authentication.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEvaluator(func(deps *Deps, evaluator ports.SchemaEvaluator, model string) error {
				verifier, err := auth.NewVerifier(deps.Config.Auth)
				if err != nil {
					return err
				}

				serverCfg := deps.Config.Server
				if addr != "" {
					serverCfg.Addr = addr
				}

				router := api.NewRouter(api.Deps{
					Evaluator:     evaluator,
					Verifier:      verifier,
					ResolveAPIKey: deps.Config.ResolveAPIKey,
					Logger:        deps.Logger,
				})

				deps.Logger.Info("serving evaluation endpoint", "addr", serverCfg.Addr, "model", model)
				if err := server.New(serverCfg, router, deps.Logger).Start(cmd.Context()); err != nil {
					return fmt.Errorf("running server: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
