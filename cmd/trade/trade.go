package trade

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github/uniagent/go-broker/internal/util/command"
)

const (
	urlFlag        = "url"
	apiKeyFlag     = "api-key"
	privateKeyFlag = "private-key"
	ownerFlag      = "owner"
	chainFlag      = "chain"
	tokenFlag      = "token"
	assetFlag      = "asset"
	amountFlag     = "amount"
	receiverFlag   = "receiver"
	slippageFlag   = "slippage-bps"
	noSubmitFlag   = "no-submit"
	rootHashFlag   = "root-hash"
	signatureFlag  = "signature"
	pageFlag       = "page"
	pageSizeFlag   = "page-size"
)

// v resolves the client flags, overridable through TRADE_* env vars
// (e.g. TRADE_PRIVATE_KEY, TRADE_API_KEY).
var v = viper.New()

// New returns the trade client command group. It talks to a running broker
// over HTTP and optionally signs and submits built transactions locally.
func New() *cobra.Command {
	cmd := command.NewSubcommandGroup("trade",
		newBuy(),
		newSell(),
		newConvert(),
		newTransfer(),
		newSubmit(),
		newBalance(),
		newHistory(),
		newChains(),
	)

	cmd.PersistentFlags().String(urlFlag, "http://localhost:3069", "Base URL of the broker.")
	cmd.PersistentFlags().String(apiKeyFlag, "", "Static API key of the broker, if configured.")
	cmd.PersistentFlags().String(privateKeyFlag, "", "Hex private key used to sign root hashes locally.")
	cmd.PersistentFlags().String(ownerFlag, "", "Owner address, derived from the private key if unset.")

	v.SetEnvPrefix("TRADE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	return cmd
}
