package msgs

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Kind identifies one of the message variants the tool can build.
type Kind int

const (
	KindBankSend Kind = iota
	KindExecuteContract
	KindActivateAccount
	KindMintNFT
)

func (k Kind) String() string {
	switch k {
	case KindBankSend:
		return "bank_send"
	case KindExecuteContract:
		return "execute_contract"
	case KindActivateAccount:
		return "activate_account"
	case KindMintNFT:
		return "mint_nft"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Canonical type URLs of the wire messages.
const (
	TypeURLBankSend        = "/cosmos.bank.v1beta1.MsgSend"
	TypeURLExecuteContract = "/cosmwasm.wasm.v1.MsgExecuteContract"
	TypeURLActivateAccount = "/aura.smartaccount.v1beta1.MsgActivateAccount"
)

// Message is a validated, immutable operation. It only becomes an sdk.Msg when the tx is assembled.
type Message interface {
	Kind() Kind
	TypeURL() string
	ToSdkMsg() (sdk.Msg, error)

	isMessage()
}

// ToSdkMsgs converts messages in order.
func ToSdkMsgs(messages []Message) ([]sdk.Msg, error) {
	sdkMsgs := make([]sdk.Msg, 0, len(messages))
	for i, message := range messages {
		sdkMsg, err := message.ToSdkMsg()
		if err != nil {
			return nil, fmt.Errorf("message %d (%s): %w", i, message.Kind(), err)
		}
		sdkMsgs = append(sdkMsgs, sdkMsg)
	}
	return sdkMsgs, nil
}
