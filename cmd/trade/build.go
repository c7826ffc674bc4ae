package trade

import (
	"context"

	"github.com/go-openapi/swag"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/types"
)

type buildFlags struct {
	Chain       string
	Token       string
	Asset       string
	Amount      string
	Receiver    string
	SlippageBps int64
	NoSubmit    bool
}

func addBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVar(&flags.Chain, chainFlag, "", "Chain name or alias, e.g. base.")
	cmd.Flags().Int64Var(&flags.SlippageBps, slippageFlag, 0, "Slippage tolerance in basis points.")
	cmd.Flags().BoolVar(&flags.NoSubmit, noSubmitFlag, false, "Only build and print the rootHash, do not sign and submit.")

	if err := cmd.MarkFlagRequired(chainFlag); err != nil {
		panic(err)
	}
}

func newBuy() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buys a token, amount denominated in USD",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			runBuild(func(owner string) (string, any) {
				return "/buy", &types.PostBuyPayload{
					OwnerAddress: swag.String(owner),
					Chain:        swag.String(flags.Chain),
					Token:        swag.String(flags.Token),
					AmountInUSD:  swag.String(flags.Amount),
					SlippageBps:  flags.SlippageBps,
				}
			}, flags)
		},
	}

	addBuildFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.Token, tokenFlag, "", "Token address on the chain, or \"native\".")
	cmd.Flags().StringVar(&flags.Amount, amountFlag, "", "Amount to spend in USD.")

	return cmd
}

func newSell() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Sells a token, amount denominated in the token",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			runBuild(func(owner string) (string, any) {
				return "/sell", &types.PostSellPayload{
					OwnerAddress: swag.String(owner),
					Chain:        swag.String(flags.Chain),
					Token:        swag.String(flags.Token),
					Amount:       swag.String(flags.Amount),
					SlippageBps:  flags.SlippageBps,
				}
			}, flags)
		},
	}

	addBuildFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.Token, tokenFlag, "", "Token address on the chain, or \"native\".")
	cmd.Flags().StringVar(&flags.Amount, amountFlag, "", "Amount of the token to sell.")

	return cmd
}

func newConvert() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Converts between primary assets",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			runBuild(func(owner string) (string, any) {
				return "/convert", &types.PostConvertPayload{
					OwnerAddress: swag.String(owner),
					Chain:        swag.String(flags.Chain),
					Asset:        swag.String(flags.Asset),
					Amount:       swag.String(flags.Amount),
					SlippageBps:  flags.SlippageBps,
				}
			}, flags)
		},
	}

	addBuildFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.Asset, assetFlag, "", "Target primary asset symbol, e.g. USDC.")
	cmd.Flags().StringVar(&flags.Amount, amountFlag, "", "Amount of the asset to convert.")

	return cmd
}

func newTransfer() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfers a token to a receiver address",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			runBuild(func(owner string) (string, any) {
				return "/transfer", &types.PostTransferPayload{
					OwnerAddress: swag.String(owner),
					Chain:        swag.String(flags.Chain),
					Token:        swag.String(flags.Token),
					Amount:       swag.String(flags.Amount),
					Receiver:     swag.String(flags.Receiver),
					SlippageBps:  flags.SlippageBps,
				}
			}, flags)
		},
	}

	addBuildFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.Token, tokenFlag, "", "Token address on the chain, or \"native\".")
	cmd.Flags().StringVar(&flags.Amount, amountFlag, "", "Amount of the token to transfer.")
	cmd.Flags().StringVar(&flags.Receiver, receiverFlag, "", "Receiver address.")

	return cmd
}

// runBuild drives the full two-phase flow: build the unsigned transaction,
// then (unless disabled or no key is configured) sign the root hash locally
// and submit it.
func runBuild(makeRequest func(owner string) (string, any), flags buildFlags) {
	ctx := context.Background()

	s, err := newSigner()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load signer")
	}

	owner, err := ownerAddress(s)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve owner address")
	}

	c := newClient()

	path, body := makeRequest(owner)

	created, err := c.createTransaction(ctx, path, body)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to build transaction")
	}

	if err := printJSON(created); err != nil {
		log.Fatal().Err(err).Msg("Failed to print response")
	}

	if s == nil || flags.NoSubmit {
		return
	}

	signature, err := s.signRootHash(*created.RootHash)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign root hash")
	}

	receipt, err := c.submit(ctx, *created.RootHash, signature)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to submit transaction")
	}

	if err := printJSON(receipt); err != nil {
		log.Fatal().Err(err).Msg("Failed to print receipt")
	}
}
