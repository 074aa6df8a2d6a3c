// Command token mints bearer tokens for the task API, signed with the
// server's JWT_SECRET.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a bearer token for the task API",
		Long:  `Signs an HS256 token whose user_id claim becomes the default actor for created_by, author and attached_by.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.AuthEnabled() {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := auth.NewTokenManager(cfg.JWTSecret).GenerateToken(args[0], ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
