package msgs

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// BankSend transfers Amount from From to To.
type BankSend struct {
	From   string
	To     string
	Amount sdk.Coins
}

var _ Message = (*BankSend)(nil)

// NewBankSend validates its inputs and builds a single-coin transfer.
func NewBankSend(prefix, from, to, denom, amount string) (*BankSend, error) {
	if err := ValidateAddress(prefix, from); err != nil {
		return nil, err
	}
	if err := ValidateAddress(prefix, to); err != nil {
		return nil, err
	}

	coin, err := ParseCoin(denom, amount)
	if err != nil {
		return nil, err
	}

	return &BankSend{
		From:   from,
		To:     to,
		Amount: sdk.Coins{coin},
	}, nil
}

func (*BankSend) Kind() Kind      { return KindBankSend }
func (*BankSend) TypeURL() string { return TypeURLBankSend }
func (*BankSend) isMessage()      {}

func (m *BankSend) ToSdkMsg() (sdk.Msg, error) {
	return &banktypes.MsgSend{
		FromAddress: m.From,
		ToAddress:   m.To,
		Amount:      m.Amount,
	}, nil
}
