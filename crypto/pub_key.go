package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	btcec "github.com/btcsuite/btcd/btcec/v2"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/gogoproto/proto"
)

// Secp256k1PubKeyTypeURL is the Any type URL of a cosmos secp256k1 public key.
var Secp256k1PubKeyTypeURL = "/" + proto.MessageName(&secp256k1.PubKey{})

var ErrInvalidPubKey = errors.New("invalid public key")

// anyPubKey is the JSON shape of a public key as printed by `keygen` and accepted by `activate`.
type anyPubKey struct {
	Type string `json:"@type"`
	Key  string `json:"key"`
}

// ParsePubKeyJSON parses {"@type":"/cosmos.crypto.secp256k1.PubKey","key":"<base64>"} into a
// secp256k1 public key. The key must be a compressed point on the curve.
func ParsePubKeyJSON(raw string) (*secp256k1.PubKey, error) {
	var parsed anyPubKey
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPubKey, err)
	}

	if parsed.Type != Secp256k1PubKeyTypeURL {
		return nil, fmt.Errorf("%w: unsupported type %q, expected %q", ErrInvalidPubKey, parsed.Type, Secp256k1PubKeyTypeURL)
	}

	keyBytes, err := base64.StdEncoding.DecodeString(parsed.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not base64: %s", ErrInvalidPubKey, err)
	}

	if len(keyBytes) != secp256k1.PubKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPubKey, secp256k1.PubKeySize, len(keyBytes))
	}

	if _, err := btcec.ParsePubKey(keyBytes); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPubKey, err)
	}

	return &secp256k1.PubKey{Key: keyBytes}, nil
}

// PubKeyJSON renders a public key in the format ParsePubKeyJSON accepts.
func PubKeyJSON(pubKey cryptotypes.PubKey) (string, error) {
	encoded, err := json.Marshal(anyPubKey{
		Type: "/" + proto.MessageName(pubKey),
		Key:  base64.StdEncoding.EncodeToString(pubKey.Bytes()),
	})
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}
