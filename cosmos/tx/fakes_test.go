package tx_test

import (
	"context"
	"errors"

	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// fakeRpcClient records calls and serves canned responses.
type fakeRpcClient struct {
	chainID    string
	account    authtypes.AccountI
	accountErr error

	broadcastResult *rpc.BroadcastResult
	broadcastErr    error
	broadcasted     [][]byte

	// GetTx serves these in order, then keeps returning the last one.
	txResults []*rpc.BroadcastResult
	txErr     error
	txQueries int

	calls []string
}

var _ rpc.RpcClient = (*fakeRpcClient)(nil)

func (f *fakeRpcClient) ChainID(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "chain_id")
	return f.chainID, nil
}

func (f *fakeRpcClient) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	f.calls = append(f.calls, "account")
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.account, nil
}

func (f *fakeRpcClient) Broadcast(ctx context.Context, txBytes []byte) (*rpc.BroadcastResult, error) {
	f.calls = append(f.calls, "broadcast")
	f.broadcasted = append(f.broadcasted, txBytes)
	if f.broadcastErr != nil {
		return nil, f.broadcastErr
	}
	return f.broadcastResult, nil
}

func (f *fakeRpcClient) GetTx(ctx context.Context, txHash string) (*rpc.BroadcastResult, error) {
	f.calls = append(f.calls, "get_tx")
	f.txQueries++
	if f.txErr != nil {
		return nil, f.txErr
	}
	if len(f.txResults) == 0 {
		return nil, nil
	}

	index := f.txQueries - 1
	if index >= len(f.txResults) {
		index = len(f.txResults) - 1
	}
	return f.txResults[index], nil
}

func (f *fakeRpcClient) Close() error {
	return nil
}

// brokenSigner has a public key but cannot sign.
type brokenSigner struct {
	publicKey cryptotypes.PubKey
}

func (s *brokenSigner) GetAddress(prefix string) string  { return "" }
func (s *brokenSigner) GetPublicKey() cryptotypes.PubKey { return s.publicKey }
func (s *brokenSigner) SignBytes(bytesToSign []byte) ([]byte, error) {
	return nil, errors.New("corrupt key material")
}
