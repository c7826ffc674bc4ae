package probe

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/config"
)

type LivenessFlags struct {
	Verbose bool
}

func newLiveness() *cobra.Command {
	var flags LivenessFlags

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs local liveness probes

	This command only checks that the process environment
	is sane (config resolvable), it deliberately touches
	no external dependency. Fails with non zero exitcode
	on encountered errors.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			livenessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func livenessCmdFunc(flags LivenessFlags) {
	cfg := config.DefaultServiceConfigFromEnv()

	if cfg.Echo.ListenAddress == "" {
		log.Fatal().Msg("Liveness check failed: no listen address configured")
	}

	if flags.Verbose {
		log.Info().Msg("Liveness check passed")
	}
}
