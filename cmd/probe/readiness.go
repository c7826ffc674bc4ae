package probe

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/config"
	"github/uniagent/go-broker/internal/util"
	"github/uniagent/go-broker/internal/util/command"
)

type ReadinessFlags struct {
	Verbose bool
}

func newReadiness() *cobra.Command {
	var flags ReadinessFlags

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Runs connection readiness probes

	This command triggers the same readiness probes as in
	/-/healthy (apart from the actual server.ready
	probe) and prints the results to stdout. Fails with
	non zero exitcode on encountered errors.

	A typical usecase of this command are readiness probes
	to ensure the execution engine is reachable before
	starting the app server.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			readinessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func readinessCmdFunc(flags ReadinessFlags) {
	err := command.WithServer(context.Background(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		log := util.LogFromContext(ctx)

		if err := s.Engine.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Readiness check failed: engine unreachable")
		}

		if flags.Verbose {
			log.Info().Msg("Readiness check passed")
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run readiness probes")
	}
}
