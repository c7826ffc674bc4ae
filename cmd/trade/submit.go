package trade

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type submitFlags struct {
	RootHash  string
	Signature string
}

func newSubmit() *cobra.Command {
	var flags submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submits a previously built transaction",
		Long: `Submits a previously built transaction by its rootHash.

	The signature is taken from the --signature flag, or
	produced locally from the configured private key when
	the flag is unset.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			submitCmdFunc(flags)
		},
	}

	cmd.Flags().StringVar(&flags.RootHash, rootHashFlag, "", "Root hash of the pending transaction.")
	cmd.Flags().StringVar(&flags.Signature, signatureFlag, "", "Hex signature over the root hash.")

	if err := cmd.MarkFlagRequired(rootHashFlag); err != nil {
		panic(err)
	}

	return cmd
}

func submitCmdFunc(flags submitFlags) {
	ctx := context.Background()

	signature := flags.Signature
	if signature == "" {
		s, err := newSigner()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load signer")
		}

		if s == nil {
			log.Fatal().Msg("No signature given and no private key configured")
		}

		signature, err = s.signRootHash(flags.RootHash)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to sign root hash")
		}
	}

	receipt, err := newClient().submit(ctx, flags.RootHash, signature)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to submit transaction")
	}

	if err := printJSON(receipt); err != nil {
		log.Fatal().Err(err).Msg("Failed to print receipt")
	}
}
