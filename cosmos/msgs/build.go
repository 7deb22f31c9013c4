package msgs

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params carries the union of inputs any Kind may need. Fields irrelevant to a kind are ignored.
type Params struct {
	Prefix string

	// Bank send
	From   string
	To     string
	Denom  string
	Amount string

	// Contract execution and minting
	Sender   string
	Contract string
	Msg      []byte
	Funds    sdk.Coins
	TokenID  string
	Owner    string

	// Activation
	Account string
	CodeID  uint64
	Salt    string
	PubKey  *secp256k1.PubKey
	InitMsg []byte
}

// Build dispatches to the constructor for kind.
func Build(kind Kind, params Params) (Message, error) {
	switch kind {
	case KindBankSend:
		message, err := NewBankSend(params.Prefix, params.From, params.To, params.Denom, params.Amount)
		if err != nil {
			return nil, err
		}
		return message, nil
	case KindExecuteContract:
		message, err := NewExecuteContract(params.Prefix, params.Sender, params.Contract, params.Msg, params.Funds)
		if err != nil {
			return nil, err
		}
		return message, nil
	case KindActivateAccount:
		message, err := NewActivateAccount(params.Prefix, params.Account, params.CodeID, params.Salt, params.PubKey, params.InitMsg)
		if err != nil {
			return nil, err
		}
		return message, nil
	case KindMintNFT:
		message, err := NewMintNFT(params.Prefix, params.Sender, params.Contract, params.TokenID, params.Owner)
		if err != nil {
			return nil, err
		}
		return message, nil
	default:
		return nil, fmt.Errorf("unknown message kind: %s", kind)
	}
}
