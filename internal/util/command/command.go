package command

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/config"
)

const shutdownTimeout = 5 * time.Second

// NewSubcommandGroup returns a group command that only serves as parent for
// the given subcommands and prints its usage when invoked directly.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Fatal().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes a fully wired server from the given config, runs the
// closure against it and tears the server down again. Intended for one-shot
// commands (probes, tooling), not for serving traffic.
func WithServer(ctx context.Context, cfg config.Server, closure func(ctx context.Context, s *api.Server) error) error {
	s, err := api.InitNewServer(cfg)
	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Warn().Errs("errs", errs).Msg("Errors while shutting down server")
		}
	}()

	return closure(ctx, s)
}
