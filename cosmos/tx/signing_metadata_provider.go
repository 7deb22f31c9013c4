package tx

import (
	"context"

	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/log"
)

type SigningMetadataProvider struct {
	rpcClient rpc.RpcClient
	logger    *log.Logger
}

func NewSigningMetadataProvider(rpcClient rpc.RpcClient, logger *log.Logger) *SigningMetadataProvider {
	return &SigningMetadataProvider{
		rpcClient: rpcClient,
		logger:    logger,
	}
}

// FetchSignData queries the chain id and the account's current number and sequence. Errors wrap
// rpc.ErrAccountNotFound when the account has no on-chain record.
func (smp *SigningMetadataProvider) FetchSignData(ctx context.Context, address string) (*SignData, error) {
	chainID, err := smp.rpcClient.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	account, err := smp.rpcClient.Account(ctx, address)
	if err != nil {
		return nil, err
	}

	signData := &SignData{
		ChainID:       chainID,
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
	}
	smp.logger.Info("fetched sign data", "address", address, "chain_id", signData.ChainID, "account_number", signData.AccountNumber, "sequence", signData.Sequence)

	return signData, nil
}
