package rpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aura-nw/smart-account-sample/cosmos/encoding"
	"github.com/aura-nw/smart-account-sample/cosmos/smartaccount"
	"github.com/aura-nw/smart-account-sample/log"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testAddress = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		input     string
		transport Transport
		address   string
		tls       bool
	}{
		{"http://localhost:26657", TransportCometRPC, "http://localhost:26657", false},
		{"https://rpc.euphoria.aura.network", TransportCometRPC, "https://rpc.euphoria.aura.network", true},
		{"tcp://127.0.0.1:26657", TransportCometRPC, "tcp://127.0.0.1:26657", false},
		{"grpc://localhost:9090", TransportGrpc, "localhost:9090", false},
		{"grpcs://grpc.aura.network:443", TransportGrpc, "grpc.aura.network:443", true},
	}

	for _, tc := range cases {
		endpoint, err := ParseEndpoint(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.transport, endpoint.Transport, tc.input)
		assert.Equal(t, tc.address, endpoint.Address, tc.input)
		assert.Equal(t, tc.tls, endpoint.TLS, tc.input)
	}
}

func TestParseEndpoint_Invalid(t *testing.T) {
	for _, input := range []string{"", "localhost:26657", "ftp://host:21", "grpc://localhost", "http://"} {
		_, err := ParseEndpoint(input)
		assert.ErrorIs(t, err, ErrUnsupportedEndpoint, input)
	}
}

func TestNewClient_DoesNotDial(t *testing.T) {
	cdc := encoding.MakeEncodingConfig().Codec
	logger := log.NewLogger("error")

	client, err := NewClient("http://localhost:26657", cdc, logger)
	require.NoError(t, err)
	assert.IsType(t, &cometClient{}, client)
	assert.NoError(t, client.Close())

	client, err = NewClient("grpc://localhost:9090", cdc, logger)
	require.NoError(t, err)
	assert.IsType(t, &grpcClient{}, client)
	assert.NoError(t, client.Close())

	_, err = NewClient("ws://localhost:26657", cdc, logger)
	assert.ErrorIs(t, err, ErrUnsupportedEndpoint)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, isNotFoundError(status.Error(codes.NotFound, "account cosmos1 not found")))
	assert.True(t, isNotFoundError(errors.New("rpc error: code = NotFound desc = account not found")))

	assert.False(t, isNotFoundError(nil))
	assert.False(t, isNotFoundError(status.Error(codes.Unavailable, "connection refused")))
	assert.False(t, isNotFoundError(errors.New("connection refused")))
}

func TestIsNotFoundResponse(t *testing.T) {
	assert.True(t, isNotFoundResponse(sdkerrors.RootCodespace, sdkerrors.ErrKeyNotFound.ABCICode(), ""))
	assert.True(t, isNotFoundResponse(sdkerrors.RootCodespace, sdkerrors.ErrUnknownAddress.ABCICode(), ""))
	assert.True(t, isNotFoundResponse("", 1, fmt.Sprintf("account %s not found", testAddress)))

	assert.True(t, isNotFoundResponse("", 1, fmt.Sprintf("rpc error: code = NotFound desc = account %s not found: key not found", testAddress)))
	assert.True(t, isNotFoundResponse("", 1, "rpc error: code = NotFound desc = unknown"))

	assert.False(t, isNotFoundResponse(sdkerrors.RootCodespace, sdkerrors.ErrOutOfGas.ABCICode(), "out of gas"))
	// Unrelated failures that merely mention "not found" stay errors
	assert.False(t, isNotFoundResponse("wasm", 2, "codec not found for type"))
	assert.False(t, isNotFoundResponse("", 1, "route not found: /cosmos.auth.v1beta1.Query/Account"))
}

func TestUnpackAccount(t *testing.T) {
	cdc := encoding.MakeEncodingConfig().Codec

	base := &authtypes.BaseAccount{Address: testAddress, AccountNumber: 5, Sequence: 9}
	smart := &smartaccount.SmartAccount{BaseAccount: authtypes.BaseAccount{Address: testAddress, AccountNumber: 6, Sequence: 10}}

	for _, account := range []proto.Message{base, smart} {
		value, err := proto.Marshal(account)
		require.NoError(t, err)
		accountAny := &codectypes.Any{TypeUrl: "/" + proto.MessageName(account), Value: value}

		unpacked, err := unpackAccount(cdc, testAddress, accountAny)
		require.NoError(t, err)
		assert.IsType(t, account, unpacked)
	}

	unpacked, err := unpackAccount(cdc, testAddress, &codectypes.Any{TypeUrl: "/" + smartaccount.SmartAccountName, Value: mustMarshal(t, smart)})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), unpacked.GetAccountNumber())
	assert.Equal(t, uint64(10), unpacked.GetSequence())
}

func TestUnpackAccount_Missing(t *testing.T) {
	cdc := encoding.MakeEncodingConfig().Codec

	_, err := unpackAccount(cdc, testAddress, nil)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = unpackAccount(cdc, testAddress, &codectypes.Any{TypeUrl: "/unknown.Account", Value: []byte{}})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestBroadcastResult_IsSuccess(t *testing.T) {
	assert.True(t, (&BroadcastResult{Code: 0}).IsSuccess())
	assert.False(t, (&BroadcastResult{Code: 5}).IsSuccess())
}

func mustMarshal(t *testing.T, message proto.Message) []byte {
	t.Helper()

	value, err := proto.Marshal(message)
	require.NoError(t, err)
	return value
}
