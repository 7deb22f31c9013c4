package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
)

func newMintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mint <cw721_address> <token_id>",
		Short: "Mint a CW721 token owned by ADDRESS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, opts, true)
			if err != nil {
				return err
			}
			cfg := env.config

			mint, err := msgs.NewMintNFT(cfg.Prefix, cfg.Address, args[0], args[1], cfg.Address)
			if err != nil {
				return argumentError("cw721_address/token_id", err)
			}

			return signAndBroadcast(cmd.Context(), cmd, env, []msgs.Message{mint})
		},
	}
}
