package msgs

import (
	"fmt"

	"github.com/aura-nw/smart-account-sample/cosmos/smartaccount"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ActivateAccount turns Account into a smart account backed by contract code CodeID.
type ActivateAccount struct {
	Account string
	CodeID  uint64
	Salt    []byte
	PubKey  *secp256k1.PubKey
	InitMsg []byte
}

var _ Message = (*ActivateAccount)(nil)

func NewActivateAccount(prefix, account string, codeID uint64, salt string, pubKey *secp256k1.PubKey, initMsg []byte) (*ActivateAccount, error) {
	if err := ValidateAddress(prefix, account); err != nil {
		return nil, err
	}
	if codeID == 0 {
		return nil, fmt.Errorf("%w: code id must be positive", ErrInvalidPayload)
	}
	if pubKey == nil {
		return nil, fmt.Errorf("%w: public key is required", ErrInvalidPayload)
	}
	if err := ValidateJSON(initMsg); err != nil {
		return nil, err
	}

	return &ActivateAccount{
		Account: account,
		CodeID:  codeID,
		Salt:    []byte(salt),
		PubKey:  pubKey,
		InitMsg: append([]byte{}, initMsg...),
	}, nil
}

func (*ActivateAccount) Kind() Kind      { return KindActivateAccount }
func (*ActivateAccount) TypeURL() string { return TypeURLActivateAccount }
func (*ActivateAccount) isMessage()      {}

func (m *ActivateAccount) ToSdkMsg() (sdk.Msg, error) {
	pubKey, err := codectypes.NewAnyWithValue(m.PubKey)
	if err != nil {
		return nil, err
	}

	return &smartaccount.MsgActivateAccount{
		AccountAddress: m.Account,
		CodeID:         m.CodeID,
		Salt:           m.Salt,
		InitMsg:        m.InitMsg,
		PubKey:         pubKey,
	}, nil
}
