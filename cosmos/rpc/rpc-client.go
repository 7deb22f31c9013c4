package rpc

import (
	"context"
	"errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// ErrAccountNotFound is returned when the chain has no record of the queried address.
var ErrAccountNotFound = errors.New("account not found")

// BroadcastResult is the transport independent view of a submitted or included transaction.
type BroadcastResult struct {
	TxHash    string `yaml:"tx_hash"`
	Code      uint32 `yaml:"code"`
	Codespace string `yaml:"codespace,omitempty"`
	Log       string `yaml:"log,omitempty"`
	Height    int64  `yaml:"height,omitempty"`
	GasWanted int64  `yaml:"gas_wanted,omitempty"`
	GasUsed   int64  `yaml:"gas_used,omitempty"`
}

// IsSuccess reports whether the chain returned code 0.
func (r *BroadcastResult) IsSuccess() bool {
	return r.Code == 0
}

// RpcClient is the chain surface the transaction pipeline depends on.
type RpcClient interface {
	ChainID(ctx context.Context) (string, error)
	Account(ctx context.Context, address string) (authtypes.AccountI, error)

	// Broadcast submits in sync mode, returning once CheckTx has run.
	Broadcast(ctx context.Context, txBytes []byte) (*BroadcastResult, error)

	// GetTx returns (nil, nil) when the tx is not (yet) included.
	GetTx(ctx context.Context, txHash string) (*BroadcastResult, error)

	Close() error
}
