package msgs

import (
	"fmt"

	"github.com/aura-nw/smart-account-sample/coding"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintNFT mints TokenID on a CW721 contract to Owner.
type MintNFT struct {
	Sender   string
	Contract string
	TokenID  string
	Owner    string
}

var _ Message = (*MintNFT)(nil)

type mintPayload struct {
	Mint struct {
		TokenID string `json:"token_id"`
		Owner   string `json:"owner"`
	} `json:"mint"`
}

func NewMintNFT(prefix, sender, contract, tokenID, owner string) (*MintNFT, error) {
	if err := ValidateAddress(prefix, sender); err != nil {
		return nil, err
	}
	if err := ValidateAddress(prefix, contract); err != nil {
		return nil, err
	}
	if err := ValidateAddress(prefix, owner); err != nil {
		return nil, err
	}
	if tokenID == "" {
		return nil, fmt.Errorf("%w: token id is empty", ErrInvalidPayload)
	}

	return &MintNFT{
		Sender:   sender,
		Contract: contract,
		TokenID:  tokenID,
		Owner:    owner,
	}, nil
}

func (*MintNFT) Kind() Kind      { return KindMintNFT }
func (*MintNFT) TypeURL() string { return TypeURLExecuteContract }
func (*MintNFT) isMessage()      {}

// Payload is the JSON the CW721 contract receives.
func (m *MintNFT) Payload() ([]byte, error) {
	payload := mintPayload{}
	payload.Mint.TokenID = m.TokenID
	payload.Mint.Owner = m.Owner

	return coding.MarshalJSON(payload)
}

func (m *MintNFT) ToSdkMsg() (sdk.Msg, error) {
	payload, err := m.Payload()
	if err != nil {
		return nil, err
	}

	execute := &ExecuteContract{
		Sender:   m.Sender,
		Contract: m.Contract,
		Msg:      payload,
	}
	return execute.ToSdkMsg()
}
