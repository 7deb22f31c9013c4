package msgs

import (
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/aura-nw/smart-account-sample/arrays"
	"github.com/aura-nw/smart-account-sample/coding"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ExecuteContract calls Contract with a JSON message on behalf of Sender.
type ExecuteContract struct {
	Sender   string
	Contract string
	Msg      []byte
	Funds    sdk.Coins
}

var _ Message = (*ExecuteContract)(nil)

// NewExecuteContract validates addresses, the JSON payload and attached funds.
func NewExecuteContract(prefix, sender, contract string, msg []byte, funds sdk.Coins) (*ExecuteContract, error) {
	if err := ValidateAddress(prefix, sender); err != nil {
		return nil, err
	}
	if err := ValidateAddress(prefix, contract); err != nil {
		return nil, err
	}
	if err := ValidateJSON(msg); err != nil {
		return nil, err
	}
	if err := funds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: funds: %s", ErrInvalidAmount, err)
	}

	return &ExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      append([]byte{}, msg...),
		Funds:    funds,
	}, nil
}

func (*ExecuteContract) Kind() Kind      { return KindExecuteContract }
func (*ExecuteContract) TypeURL() string { return TypeURLExecuteContract }
func (*ExecuteContract) isMessage()      {}

func (m *ExecuteContract) ToSdkMsg() (sdk.Msg, error) {
	return &wasmtypes.MsgExecuteContract{
		Sender:   m.Sender,
		Contract: m.Contract,
		Msg:      wasmtypes.RawContractMessage(m.Msg),
		Funds:    m.Funds,
	}, nil
}

// Smart account hook payloads

type coinPayload struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type bankSendPayload struct {
	FromAddress string        `json:"from_address"`
	ToAddress   string        `json:"to_address"`
	Amount      []coinPayload `json:"amount"`
}

type anyPayload struct {
	TypeURL string `json:"type_url"`
	Value   string `json:"value"`
}

type afterExecutePayload struct {
	AfterExecute struct {
		Msgs []anyPayload `json:"msgs"`
	} `json:"after_execute"`
}

// NewAfterExecute builds the execute message a smart account runs on itself after the given
// transfers, letting its contract validate them. Each transfer is passed as a JSON string.
func NewAfterExecute(prefix, account string, sends ...*BankSend) (*ExecuteContract, error) {
	if len(sends) == 0 {
		return nil, fmt.Errorf("%w: after_execute needs at least one message", ErrInvalidPayload)
	}

	payload := afterExecutePayload{}
	for _, send := range sends {
		value, err := coding.MarshalJSON(bankSendPayload{
			FromAddress: send.From,
			ToAddress:   send.To,
			Amount: arrays.Map(send.Amount, func(coin sdk.Coin) coinPayload {
				return coinPayload{Denom: coin.Denom, Amount: coin.Amount.String()}
			}),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}

		payload.AfterExecute.Msgs = append(payload.AfterExecute.Msgs, anyPayload{
			TypeURL: send.TypeURL(),
			Value:   string(value),
		})
	}

	msg, err := coding.MarshalJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	return NewExecuteContract(prefix, account, account, msg, nil)
}
