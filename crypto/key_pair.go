package crypto

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// CosmosCoinType is the SLIP44 coin type used for every derived key.
const CosmosCoinType = 118

// DerivationPath is the fixed HD path keys are derived at: m/44'/118'/0'/0/0
var DerivationPath = hd.CreateHDPath(CosmosCoinType, 0, 0).String()

type KeyPair struct {
	Public  cryptotypes.PubKey
	Private cryptotypes.PrivKey
}

var _ BytesSigner = (*KeyPair)(nil)

// NewKeyPairFromMnemonic returns a secp256k1 key pair derived from the given mnemonic at DerivationPath.
func NewKeyPairFromMnemonic(mnemonic string) (*KeyPair, error) {
	algo := hd.Secp256k1
	derivedPriv, err := algo.Derive()(mnemonic, keyring.DefaultBIP39Passphrase, DerivationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key at %s: %w", DerivationPath, err)
	}
	privKey := algo.Generate()(derivedPriv)
	pubKey := privKey.PubKey()

	return &KeyPair{
		Public:  pubKey,
		Private: privKey,
	}, nil
}

func (kp *KeyPair) GetAddress(prefix string) string {
	address := sdk.AccAddress(kp.Public.Address())
	encoded, _ := bech32.ConvertAndEncode(prefix, address)
	return encoded
}

func (kp *KeyPair) SignBytes(
	bytesToSign []byte,
) ([]byte, error) {
	return kp.Private.Sign(bytesToSign)
}

func (kp *KeyPair) GetPublicKey() cryptotypes.PubKey {
	return kp.Public
}
