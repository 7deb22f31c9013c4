package rpc

import (
	"context"
	"fmt"
	"strings"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/aura-nw/smart-account-sample/coding"
	"github.com/aura-nw/smart-account-sample/log"
)

const accountQueryPath = "/cosmos.auth.v1beta1.Query/Account"

// cometClient talks to a node's CometBFT RPC server, routing module queries through abci_query.
type cometClient struct {
	cdc    *codec.ProtoCodec
	client *rpchttp.HTTP

	logger *log.Logger
}

// Ensure that cometClient implements RpcClient
var _ RpcClient = (*cometClient)(nil)

func NewCometClient(endpoint string, cdc *codec.ProtoCodec, logger *log.Logger) (RpcClient, error) {
	client, err := rpchttp.New(endpoint, "/websocket")
	if err != nil {
		logger.Error("unable to create rpc client", "error", err.Error())
		return nil, err
	}

	return &cometClient{
		cdc:    cdc,
		client: client,

		logger: logger,
	}, nil
}

func (c *cometClient) ChainID(ctx context.Context) (string, error) {
	status, err := c.client.Status(ctx)
	if err != nil {
		return "", err
	}

	return status.NodeInfo.Network, nil
}

func (c *cometClient) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	query := &authtypes.QueryAccountRequest{Address: address}
	queryBytes, err := query.Marshal()
	if err != nil {
		return nil, err
	}

	result, err := c.client.ABCIQuery(ctx, accountQueryPath, queryBytes)
	if err != nil {
		if isNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
		}
		return nil, err
	}

	response := result.Response
	if !response.IsOK() {
		c.logger.Debug("account query returned an error", "codespace", response.Codespace, "code", response.Code, "log", response.Log)
		if isNotFoundResponse(response.Codespace, response.Code, response.Log) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
		}
		return nil, fmt.Errorf("account query failed with codespace %q code %d: %s", response.Codespace, response.Code, response.Log)
	}

	var accountResponse authtypes.QueryAccountResponse
	if err := c.cdc.Unmarshal(response.Value, &accountResponse); err != nil {
		return nil, err
	}

	return unpackAccount(c.cdc, address, accountResponse.Account)
}

func (c *cometClient) Broadcast(ctx context.Context, txBytes []byte) (*BroadcastResult, error) {
	result, err := c.client.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	return &BroadcastResult{
		TxHash:    result.Hash.String(),
		Code:      result.Code,
		Codespace: result.Codespace,
		Log:       result.Log,
	}, nil
}

func (c *cometClient) GetTx(ctx context.Context, txHash string) (*BroadcastResult, error) {
	hash, err := coding.DecodeHex(txHash)
	if err != nil {
		return nil, fmt.Errorf("invalid tx hash %q: %w", txHash, err)
	}

	result, err := c.client.Tx(ctx, hash, false)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, nil
		}
		return nil, err
	}

	return &BroadcastResult{
		TxHash:    result.Hash.String(),
		Code:      result.TxResult.Code,
		Codespace: result.TxResult.Codespace,
		Log:       result.TxResult.Log,
		Height:    result.Height,
		GasWanted: result.TxResult.GasWanted,
		GasUsed:   result.TxResult.GasUsed,
	}, nil
}

// The HTTP transport holds no long lived connection.
func (c *cometClient) Close() error {
	return nil
}
