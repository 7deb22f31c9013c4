package tx

import (
	"context"
	"fmt"

	"github.com/aura-nw/smart-account-sample/arrays"
	"github.com/aura-nw/smart-account-sample/chains"
	"github.com/aura-nw/smart-account-sample/coding"
	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Assembler runs the single-shot pipeline: fetch sign data, sign, encode, broadcast. Nothing is
// retried and sign data is never reused between calls.
type Assembler struct {
	address string
	prefix  string

	chainRegistry           *chains.OfflineChainRegistry
	signingMetadataProvider *SigningMetadataProvider
	txProvider              TxProvider
	broadcaster             *Broadcaster

	logger *log.Logger
}

// NewAssembler acts on behalf of address, which need not be the signer's own address.
func NewAssembler(
	address string,
	prefix string,
	chainRegistry *chains.OfflineChainRegistry,
	signingMetadataProvider *SigningMetadataProvider,
	txProvider TxProvider,
	broadcaster *Broadcaster,
	logger *log.Logger,
) *Assembler {
	return &Assembler{
		address: address,
		prefix:  prefix,

		chainRegistry:           chainRegistry,
		signingMetadataProvider: signingMetadataProvider,
		txProvider:              txProvider,
		broadcaster:             broadcaster,

		logger: logger,
	}
}

// SignAndBroadcast submits messages as one tx, in the order given.
func (a *Assembler) SignAndBroadcast(ctx context.Context, messages []msgs.Message, fee Fee, memo string) (*rpc.BroadcastResult, error) {
	logger := a.logger.With("address", a.address)

	sdkMsgs, err := msgs.ToSdkMsgs(messages)
	if err != nil {
		return nil, err
	}
	logger.Info("assembled messages", "type_urls", arrays.Map(messages, func(message msgs.Message) string { return message.TypeURL() }))

	// Sign data goes stale as soon as another tx from the account lands, so fetch it last.
	signData, err := a.signingMetadataProvider.FetchSignData(ctx, a.address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sign data for %s: %w", a.address, err)
	}
	a.warnOnMismatches(signData.ChainID, fee)

	txBytes, err := a.txProvider.SignAndEncode(sdkMsgs, fee, memo, signData)
	if err != nil {
		return nil, err
	}
	logger.Debug("encoded transaction", "tx", coding.PayloadFingerprint(txBytes), "fee", fee.Amount.String(), "gas_wanted", fee.GasWanted)

	return a.broadcaster.Broadcast(ctx, txBytes)
}

func (a *Assembler) warnOnMismatches(chainID string, fee Fee) {
	denoms := arrays.Map(fee.Amount, func(coin sdk.Coin) string { return coin.Denom })
	for _, mismatch := range a.chainRegistry.Mismatches(chainID, a.prefix, denoms...) {
		a.logger.Warn("configuration does not match known network", "chain_id", chainID, "mismatch", mismatch)
	}
}
