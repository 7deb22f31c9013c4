package tx

import (
	"fmt"

	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
)

// SigningError means the identity could not produce a signature.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed: %s", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// BroadcastError is a transport failure. The tx may or may not have reached the chain; TxHash is
// set when the node had already accepted it.
type BroadcastError struct {
	TxHash string
	Err    error
}

func (e *BroadcastError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("broadcast of %s failed, state unknown: %s", e.TxHash, e.Err)
	}
	return fmt.Sprintf("broadcast failed, state unknown: %s", e.Err)
}

func (e *BroadcastError) Unwrap() error {
	return e.Err
}

// Stage is where in the tx lifecycle a rejection happened.
type Stage string

const (
	StageCheckTx   Stage = "check_tx"
	StageDeliverTx Stage = "deliver_tx"
)

// ChainRejection is a delivered tx the chain answered with a non-zero code. It is a known, terminal
// outcome.
type ChainRejection struct {
	Stage  Stage
	Result *rpc.BroadcastResult
}

func (e *ChainRejection) Error() string {
	return fmt.Sprintf("chain rejected tx %s at %s with codespace %q code %d: %s", e.Result.TxHash, e.Stage, e.Result.Codespace, e.Result.Code, e.Result.Log)
}

// IsGasRelated reports whether raising the fee or gas limit might get the tx through.
func (e *ChainRejection) IsGasRelated() bool {
	return IsGasRelatedError(e.Result.Codespace, e.Result.Code)
}
