package crypto

import cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"

// BytesSigner is the identity used to sign transactions.
type BytesSigner interface {
	GetAddress(prefix string) string
	SignBytes(
		bytesToSign []byte,
	) ([]byte, error)
	GetPublicKey() cryptotypes.PubKey
}
