package smartaccount_test

import (
	"testing"

	"github.com/aura-nw/smart-account-sample/cosmos/smartaccount"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/std"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"

func newRegistry() codectypes.InterfaceRegistry {
	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	smartaccount.RegisterInterfaces(registry)
	return registry
}

func newActivateMsg(t *testing.T) *smartaccount.MsgActivateAccount {
	t.Helper()

	pubKey := secp256k1.GenPrivKeyFromSecret([]byte("smart account")).PubKey()
	pubKeyAny, err := codectypes.NewAnyWithValue(pubKey)
	require.NoError(t, err)

	return &smartaccount.MsgActivateAccount{
		AccountAddress: testAddress,
		CodeID:         42,
		Salt:           []byte("account1"),
		InitMsg:        []byte(`{"owner":"me"}`),
		PubKey:         pubKeyAny,
	}
}

func TestMsgActivateAccount_MessageName(t *testing.T) {
	assert.Equal(t, "aura.smartaccount.v1beta1.MsgActivateAccount", proto.MessageName(&smartaccount.MsgActivateAccount{}))
	assert.Equal(t, "aura.smartaccount.v1beta1.SmartAccount", proto.MessageName(&smartaccount.SmartAccount{}))
}

func TestMsgActivateAccount_MarshalRoundTrip(t *testing.T) {
	msg := newActivateMsg(t)

	encoded, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, len(encoded), msg.Size())

	decoded := &smartaccount.MsgActivateAccount{}
	require.NoError(t, decoded.Unmarshal(encoded))

	assert.Equal(t, msg.AccountAddress, decoded.AccountAddress)
	assert.Equal(t, msg.CodeID, decoded.CodeID)
	assert.Equal(t, msg.Salt, decoded.Salt)
	assert.Equal(t, msg.InitMsg, decoded.InitMsg)
	assert.Equal(t, msg.PubKey.TypeUrl, decoded.PubKey.TypeUrl)
	assert.Equal(t, msg.PubKey.Value, decoded.PubKey.Value)
}

func TestMsgActivateAccount_MarshalFieldOrder(t *testing.T) {
	msg := &smartaccount.MsgActivateAccount{AccountAddress: "a", CodeID: 1}

	encoded, err := msg.Marshal()
	require.NoError(t, err)

	// field 1 (bytes) "a", then field 2 (varint) 1
	assert.Equal(t, []byte{0x0a, 0x01, 'a', 0x10, 0x01}, encoded)
}

func TestMsgActivateAccount_MarshalToSizedBuffer(t *testing.T) {
	msg := newActivateMsg(t)
	expected, err := msg.Marshal()
	require.NoError(t, err)

	buffer := make([]byte, len(expected)+4)
	n, err := msg.MarshalToSizedBuffer(buffer)
	require.NoError(t, err)
	assert.Equal(t, len(expected), n)
	assert.Equal(t, expected, buffer[4:])

	_, err = msg.MarshalTo(make([]byte, 1))
	assert.Error(t, err)
}

func TestMsgActivateAccount_UnmarshalSkipsUnknownFields(t *testing.T) {
	encoded, err := (&smartaccount.MsgActivateAccount{CodeID: 7}).Marshal()
	require.NoError(t, err)

	// field 9 (varint) 1
	encoded = append(encoded, 0x48, 0x01)

	decoded := &smartaccount.MsgActivateAccount{}
	require.NoError(t, decoded.Unmarshal(encoded))
	assert.Equal(t, uint64(7), decoded.CodeID)
}

func TestMsgActivateAccount_UnmarshalTruncated(t *testing.T) {
	decoded := &smartaccount.MsgActivateAccount{}
	assert.Error(t, decoded.Unmarshal([]byte{0x0a, 0x05, 'a'}))
}

func TestMsgActivateAccount_ValidateBasic(t *testing.T) {
	assert.NoError(t, newActivateMsg(t).ValidateBasic())

	badAddress := newActivateMsg(t)
	badAddress.AccountAddress = "not-an-address"
	assert.Error(t, badAddress.ValidateBasic())

	zeroCode := newActivateMsg(t)
	zeroCode.CodeID = 0
	assert.Error(t, zeroCode.ValidateBasic())

	badInit := newActivateMsg(t)
	badInit.InitMsg = []byte("{")
	assert.Error(t, badInit.ValidateBasic())

	noPubKey := newActivateMsg(t)
	noPubKey.PubKey = nil
	assert.Error(t, noPubKey.ValidateBasic())
}

func TestMsgActivateAccount_GetSigners(t *testing.T) {
	signers := newActivateMsg(t).GetSigners()
	require.Len(t, signers, 1)
	assert.Len(t, signers[0].Bytes(), 20)
}

func TestMsgActivateAccount_UnpackInterfaces(t *testing.T) {
	msg := newActivateMsg(t)
	encoded, err := msg.Marshal()
	require.NoError(t, err)

	cdc := codec.NewProtoCodec(newRegistry())
	decoded := &smartaccount.MsgActivateAccount{}
	require.NoError(t, cdc.Unmarshal(encoded, decoded))
	assert.NotNil(t, decoded.PubKey.GetCachedValue())
}

func TestSmartAccount_UnpackAsAccount(t *testing.T) {
	account := &smartaccount.SmartAccount{
		BaseAccount: authtypes.BaseAccount{
			Address:       testAddress,
			AccountNumber: 12,
			Sequence:      3,
		},
	}
	value, err := proto.Marshal(account)
	require.NoError(t, err)

	// Construct the Any by hand so the registry resolves the type from its URL
	accountAny := &codectypes.Any{TypeUrl: "/" + smartaccount.SmartAccountName, Value: value}

	cdc := codec.NewProtoCodec(newRegistry())
	var unpacked authtypes.AccountI
	require.NoError(t, cdc.UnpackAny(accountAny, &unpacked))

	assert.IsType(t, &smartaccount.SmartAccount{}, unpacked)
	assert.Equal(t, uint64(12), unpacked.GetAccountNumber())
	assert.Equal(t, uint64(3), unpacked.GetSequence())
}
