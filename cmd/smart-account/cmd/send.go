package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send <to_address> <amount>",
		Short: "Send DENOM from the smart account, followed by its after_execute validation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, opts, true)
			if err != nil {
				return err
			}
			cfg := env.config

			send, err := msgs.NewBankSend(cfg.Prefix, cfg.Address, args[0], cfg.Denom, args[1])
			if err != nil {
				return argumentError("to_address/amount", err)
			}

			// The validation hook must run after the transfer it checks.
			validate, err := msgs.NewAfterExecute(cfg.Prefix, cfg.Address, send)
			if err != nil {
				return argumentError("to_address/amount", err)
			}

			return signAndBroadcast(cmd.Context(), cmd, env, []msgs.Message{send, validate})
		},
	}
}
