package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/mdchat/internal/infrastructure/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP endpoint",
		Long:  "Signs an HS256 token with the configured secret. A zero --ttl uses auth.token_ttl from config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			verifier, err := auth.NewVerifier(cfg.Auth)
			if err != nil {
				return err
			}

			token, err := verifier.Issue(subject, ttl)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", DefaultTokenSubject, "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (0 uses the configured TTL)")

	return cmd
}
