package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-nw/smart-account-sample/config"
	"github.com/aura-nw/smart-account-sample/crypto"
	"github.com/aura-nw/smart-account-sample/log"
)

const keyFileHeader = `Generated by smart-account keygen.
Keep this file secret: the mnemonic controls the account.`

// generatedKey is the keygen output. The yaml keys line up with the environment variables
// transaction commands read.
type generatedKey struct {
	Mnemonic       string `yaml:"MNEMONIC" comment:"BIP39 mnemonic, derived at m/44'/118'/0'/0/0"`
	Address        string `yaml:"ADDRESS" comment:"Plain account address of the key"`
	PubKey         string `yaml:"PUB_KEY" comment:"Public key, as accepted by the activate command"`
	DerivationPath string `yaml:"DERIVATION_PATH"`
}

func newKeygenCmd() *cobra.Command {
	var (
		prefix string
		output string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a mnemonic with its address and public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := generateKey(prefix)
			if err != nil {
				return err
			}

			if output != "" {
				logger := log.NewLoggerWithWriter("info", []string{"[keygen]"}, cmd.ErrOrStderr())
				if err := config.WriteYamlWithComments(key, keyFileHeader, config.ExpandHomeDir(output), logger); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Key written to %s", output))
				return nil
			}

			return printKey(cmd.OutOrStdout(), key)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "aura", "bech32 prefix of the printed address")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the key to a new YAML file instead of stdout")

	return cmd
}

func generateKey(prefix string) (*generatedKey, error) {
	mnemonic, err := crypto.GenerateMnemonic()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	keyPair, err := crypto.NewKeyPairFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	pubKey, err := crypto.PubKeyJSON(keyPair.GetPublicKey())
	if err != nil {
		return nil, err
	}

	return &generatedKey{
		Mnemonic:       mnemonic,
		Address:        keyPair.GetAddress(prefix),
		PubKey:         pubKey,
		DerivationPath: crypto.DerivationPath,
	}, nil
}
