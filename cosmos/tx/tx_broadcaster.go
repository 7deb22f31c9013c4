package tx

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/log"
)

var errNotIncluded = errors.New("transaction not yet included")

// Broadcaster submits signed txs exactly once, then optionally polls for inclusion. Polling only
// queries by hash and never resubmits.
type Broadcaster struct {
	rpcClient rpc.RpcClient
	logger    *log.Logger

	pollAttempts uint
	pollDelay    time.Duration
}

// NewBroadcaster returns a Broadcaster. A pollAttempts of zero returns as soon as CheckTx passes.
func NewBroadcaster(rpcClient rpc.RpcClient, logger *log.Logger, pollAttempts uint, pollDelay time.Duration) *Broadcaster {
	return &Broadcaster{
		rpcClient: rpcClient,
		logger:    logger,

		pollAttempts: pollAttempts,
		pollDelay:    pollDelay,
	}
}

// Broadcast returns a *BroadcastError if the transport failed and a *ChainRejection if the chain
// answered with a non-zero code. On rejection the result is returned alongside the error.
func (b *Broadcaster) Broadcast(ctx context.Context, txBytes []byte) (*rpc.BroadcastResult, error) {
	result, err := b.rpcClient.Broadcast(ctx, txBytes)
	if err != nil {
		b.logger.Error("failed to broadcast transaction", "error", err.Error())
		return nil, &BroadcastError{Err: err}
	}

	logger := b.logger.With("tx_hash", result.TxHash)
	logger.Info("📣 attempted to broadcast transaction", "code", result.Code, "codespace", result.Codespace)

	if !result.IsSuccess() {
		rejection := &ChainRejection{Stage: StageCheckTx, Result: result}
		logger.Error("node rejected transaction", "code", result.Code, "codespace", result.Codespace, "logs", result.Log, "gas_related", rejection.IsGasRelated())
		return result, rejection
	}

	if b.pollAttempts == 0 {
		return result, nil
	}

	included, err := b.pollForInclusion(ctx, logger, result.TxHash)
	if err != nil {
		logger.Error("failed to get tx status", "error", err.Error())
		return result, &BroadcastError{TxHash: result.TxHash, Err: err}
	}

	if included == nil {
		logger.Warn("transaction accepted but not included after exhausting all polling attempts", "max_attempts", b.pollAttempts)
		return result, nil
	}

	if !included.IsSuccess() {
		rejection := &ChainRejection{Stage: StageDeliverTx, Result: included}
		logger.Error("transaction landed on chain but failed", "code", included.Code, "codespace", included.Codespace, "logs", included.Log, "gas_related", rejection.IsGasRelated())
		return included, rejection
	}

	logger.Info("transaction sent and landed on chain, successfully", "height", included.Height, "gas_used", included.GasUsed, "gas_wanted", included.GasWanted)
	return included, nil
}

// pollForInclusion returns (nil, nil) if the tx is still unknown after all attempts.
func (b *Broadcaster) pollForInclusion(ctx context.Context, logger *log.Logger, txHash string) (*rpc.BroadcastResult, error) {
	logger.Info("polling for inclusion")

	var included *rpc.BroadcastResult
	err := retry.Do(
		func() error {
			txStatus, err := b.rpcClient.GetTx(ctx, txHash)
			if err != nil {
				// Something more fundamental than "not found" went wrong
				return retry.Unrecoverable(err)
			}
			if txStatus == nil {
				return errNotIncluded
			}

			included = txStatus
			return nil
		},
		retry.Attempts(b.pollAttempts),
		retry.Delay(b.pollDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Debug("transaction still not included", "attempt", attempt+1, "max_attempts", b.pollAttempts)
		}),
	)

	if errors.Is(err, errNotIncluded) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return included, nil
}
