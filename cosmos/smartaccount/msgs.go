package smartaccount

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"google.golang.org/protobuf/encoding/protowire"
)

// Fully qualified protobuf names of the smart account module's messages.
const (
	MsgActivateAccountName = "aura.smartaccount.v1beta1.MsgActivateAccount"
	SmartAccountName       = "aura.smartaccount.v1beta1.SmartAccount"
)

// Field numbers of MsgActivateAccount.
const (
	fieldAccountAddress protowire.Number = 1
	fieldCodeID         protowire.Number = 2
	fieldSalt           protowire.Number = 3
	fieldInitMsg        protowire.Number = 4
	fieldPubKey         protowire.Number = 5
)

// MsgActivateAccount turns a funded address into a smart account by instantiating the contract
// identified by CodeID at that address.
type MsgActivateAccount struct {
	AccountAddress string          `protobuf:"bytes,1,opt,name=account_address,json=accountAddress,proto3" json:"account_address,omitempty"`
	CodeID         uint64          `protobuf:"varint,2,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Salt           []byte          `protobuf:"bytes,3,opt,name=salt,proto3" json:"salt,omitempty"`
	InitMsg        []byte          `protobuf:"bytes,4,opt,name=init_msg,json=initMsg,proto3" json:"init_msg,omitempty"`
	PubKey         *codectypes.Any `protobuf:"bytes,5,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
}

var (
	_ sdk.Msg                            = (*MsgActivateAccount)(nil)
	_ codectypes.UnpackInterfacesMessage = (*MsgActivateAccount)(nil)
)

func (m *MsgActivateAccount) Reset()                { *m = MsgActivateAccount{} }
func (*MsgActivateAccount) ProtoMessage()           {}
func (*MsgActivateAccount) XXX_MessageName() string { return MsgActivateAccountName }

func (m *MsgActivateAccount) String() string {
	pubKeyType := ""
	if m.PubKey != nil {
		pubKeyType = m.PubKey.TypeUrl
	}
	return fmt.Sprintf("account_address:%q code_id:%d salt:%q init_msg:%q pub_key:%q", m.AccountAddress, m.CodeID, m.Salt, m.InitMsg, pubKeyType)
}

// ValidateBasic performs structural checks only.
func (m *MsgActivateAccount) ValidateBasic() error {
	if _, _, err := bech32.DecodeAndConvert(m.AccountAddress); err != nil {
		return fmt.Errorf("invalid account address %q: %w", m.AccountAddress, err)
	}
	if m.CodeID == 0 {
		return errors.New("code id must be positive")
	}
	if !json.Valid(m.InitMsg) {
		return errors.New("init msg must be valid json")
	}
	if m.PubKey == nil {
		return errors.New("public key is required")
	}
	return nil
}

func (m *MsgActivateAccount) GetSigners() []sdk.AccAddress {
	_, addressBytes, err := bech32.DecodeAndConvert(m.AccountAddress)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addressBytes}
}

func (m *MsgActivateAccount) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	var pubKey cryptotypes.PubKey
	return unpacker.UnpackAny(m.PubKey, &pubKey)
}

// Wire encoding

func (m *MsgActivateAccount) Marshal() ([]byte, error) {
	var encoded []byte

	if m.AccountAddress != "" {
		encoded = protowire.AppendTag(encoded, fieldAccountAddress, protowire.BytesType)
		encoded = protowire.AppendString(encoded, m.AccountAddress)
	}
	if m.CodeID != 0 {
		encoded = protowire.AppendTag(encoded, fieldCodeID, protowire.VarintType)
		encoded = protowire.AppendVarint(encoded, m.CodeID)
	}
	if len(m.Salt) > 0 {
		encoded = protowire.AppendTag(encoded, fieldSalt, protowire.BytesType)
		encoded = protowire.AppendBytes(encoded, m.Salt)
	}
	if len(m.InitMsg) > 0 {
		encoded = protowire.AppendTag(encoded, fieldInitMsg, protowire.BytesType)
		encoded = protowire.AppendBytes(encoded, m.InitMsg)
	}
	if m.PubKey != nil {
		pubKeyBytes, err := m.PubKey.Marshal()
		if err != nil {
			return nil, err
		}
		encoded = protowire.AppendTag(encoded, fieldPubKey, protowire.BytesType)
		encoded = protowire.AppendBytes(encoded, pubKeyBytes)
	}

	return encoded, nil
}

func (m *MsgActivateAccount) MarshalTo(dAtA []byte) (int, error) {
	encoded, err := m.Marshal()
	if err != nil {
		return 0, err
	}
	if len(dAtA) < len(encoded) {
		return 0, io.ErrShortBuffer
	}
	return copy(dAtA, encoded), nil
}

func (m *MsgActivateAccount) MarshalToSizedBuffer(dAtA []byte) (int, error) {
	encoded, err := m.Marshal()
	if err != nil {
		return 0, err
	}
	if len(dAtA) < len(encoded) {
		return 0, io.ErrShortBuffer
	}
	copy(dAtA[len(dAtA)-len(encoded):], encoded)
	return len(encoded), nil
}

func (m *MsgActivateAccount) Size() int {
	encoded, err := m.Marshal()
	if err != nil {
		return 0
	}
	return len(encoded)
}

func (m *MsgActivateAccount) Unmarshal(dAtA []byte) error {
	*m = MsgActivateAccount{}

	for len(dAtA) > 0 {
		number, wireType, n := protowire.ConsumeTag(dAtA)
		if n < 0 {
			return protowire.ParseError(n)
		}
		dAtA = dAtA[n:]

		switch {
		case number == fieldAccountAddress && wireType == protowire.BytesType:
			value, n := protowire.ConsumeString(dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.AccountAddress = value
			dAtA = dAtA[n:]
		case number == fieldCodeID && wireType == protowire.VarintType:
			value, n := protowire.ConsumeVarint(dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.CodeID = value
			dAtA = dAtA[n:]
		case number == fieldSalt && wireType == protowire.BytesType:
			value, n := protowire.ConsumeBytes(dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Salt = append([]byte{}, value...)
			dAtA = dAtA[n:]
		case number == fieldInitMsg && wireType == protowire.BytesType:
			value, n := protowire.ConsumeBytes(dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.InitMsg = append([]byte{}, value...)
			dAtA = dAtA[n:]
		case number == fieldPubKey && wireType == protowire.BytesType:
			value, n := protowire.ConsumeBytes(dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			pubKey := &codectypes.Any{}
			if err := pubKey.Unmarshal(value); err != nil {
				return err
			}
			m.PubKey = pubKey
			dAtA = dAtA[n:]
		default:
			// Skip unknown fields
			n := protowire.ConsumeFieldValue(number, wireType, dAtA)
			if n < 0 {
				return protowire.ParseError(n)
			}
			dAtA = dAtA[n:]
		}
	}

	return nil
}
