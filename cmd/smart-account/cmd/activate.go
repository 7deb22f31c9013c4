package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
	"github.com/aura-nw/smart-account-sample/crypto"
)

func newActivateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <code_id> <salt> <pub_key_json> <init_msg>",
		Short: "Activate ADDRESS as a smart account",
		Example: `  smart-account activate 42 account1 \
    '{"@type":"/cosmos.crypto.secp256k1.PubKey","key":"A/2t0ru/iZ4HoiX0DkTDCTA2/oLqLjzUkwHlEt/G2dI8"}' '{}'`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, opts, false)
			if err != nil {
				return err
			}
			cfg := env.config

			codeID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return argumentError("code_id", err)
			}

			pubKey, err := crypto.ParsePubKeyJSON(args[2])
			if err != nil {
				return argumentError("pub_key_json", err)
			}

			activate, err := msgs.NewActivateAccount(cfg.Prefix, cfg.Address, codeID, args[1], pubKey, []byte(args[3]))
			if err != nil {
				return argumentError("activate", err)
			}

			return signAndBroadcast(cmd.Context(), cmd, env, []msgs.Message{activate})
		},
	}
}
