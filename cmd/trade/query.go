package trade

import (
	"context"

	"github.com/go-openapi/swag"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/uniagent/go-broker/internal/types"
)

func newBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Shows the unified balance of the owner address",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			s, err := newSigner()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load signer")
			}

			owner, err := ownerAddress(s)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to resolve owner address")
			}

			var res types.BalanceResponse
			err = newClient().post(context.Background(), "/balance", &types.PostBalancePayload{
				OwnerAddress: swag.String(owner),
			}, &res)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get balance")
			}

			if err := printJSON(&res); err != nil {
				log.Fatal().Err(err).Msg("Failed to print balance")
			}
		},
	}
}

func newHistory() *cobra.Command {
	var page, pageSize int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Shows the transaction history of the owner address",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			s, err := newSigner()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load signer")
			}

			owner, err := ownerAddress(s)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to resolve owner address")
			}

			var res types.HistoryResponse
			err = newClient().post(context.Background(), "/history", &types.PostHistoryPayload{
				OwnerAddress: swag.String(owner),
				Page:         page,
				PageSize:     pageSize,
			}, &res)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get history")
			}

			if err := printJSON(&res); err != nil {
				log.Fatal().Err(err).Msg("Failed to print history")
			}
		},
	}

	cmd.Flags().Int64Var(&page, pageFlag, 1, "Page to fetch.")
	cmd.Flags().Int64Var(&pageSize, pageSizeFlag, 20, "Items per page.")

	return cmd
}

func newChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "Lists supported chains and primary assets",
		Run: func(_ *cobra.Command, _ []string /* args */) {
			var res types.GetChainsResponse
			if err := newClient().get(context.Background(), "/chains", &res); err != nil {
				log.Fatal().Err(err).Msg("Failed to get chains")
			}

			if err := printJSON(&res); err != nil {
				log.Fatal().Err(err).Msg("Failed to print chains")
			}
		},
	}
}
