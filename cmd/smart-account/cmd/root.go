package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

func InitRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "smart-account",
		Short: "Build, sign and broadcast smart account transactions",
		Long: `Build, sign and broadcast smart account transactions.

Transaction commands read MNEMONIC, PREFIX, ADDRESS, ENDPOINT, GAS_PRICE and GAS_WANTED
(plus DENOM for send and mint) from the environment, seeded from --env-file if it exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to seed the environment from")

	cmd.AddCommand(newSendCmd(opts))
	cmd.AddCommand(newActivateCmd(opts))
	cmd.AddCommand(newMintCmd(opts))
	cmd.AddCommand(newKeygenCmd())

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	rootCmd := InitRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}
