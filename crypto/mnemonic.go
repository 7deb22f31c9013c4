package crypto

import (
	"github.com/cosmos/go-bip39"
)

// Bits of entropy for generated mnemonics, giving 24 words.
const mnemonicEntropyBits = 256

// GenerateMnemonic returns a fresh BIP39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}
