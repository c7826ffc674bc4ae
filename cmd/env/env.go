package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the effective server config",
		Long: `Prints the server environment configuration.

	This command resolves the full server config from the
	current environment (including .env) and prints it as
	JSON to stdout. Sensitive fields are redacted.`,
		Run: func(_ *cobra.Command, _ []string) {
			envCmdFunc()
		},
	}
}

func envCmdFunc() {
	cfg := config.DefaultServiceConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal the config")
	}

	fmt.Println(string(c))
}
