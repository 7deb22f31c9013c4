package rpc

import (
	"context"
	"fmt"

	"github.com/aura-nw/smart-account-sample/grpc"
	"github.com/aura-nw/smart-account-sample/log"

	"github.com/cosmos/cosmos-sdk/client/grpc/tmservice"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	grpclib "google.golang.org/grpc"
)

// grpcClient talks to a node's gRPC server.
type grpcClient struct {
	cdc  *codec.ProtoCodec
	conn *grpclib.ClientConn

	authClient authtypes.QueryClient
	nodeClient tmservice.ServiceClient
	txClient   txtypes.ServiceClient

	logger *log.Logger
}

// Ensure that grpcClient implements RpcClient
var _ RpcClient = (*grpcClient)(nil)

func NewGrpcClient(address string, useTLS bool, cdc *codec.ProtoCodec, logger *log.Logger) (RpcClient, error) {
	conn, err := grpc.GetGrpcConnection(address, useTLS)
	if err != nil {
		logger.Error("unable to connect to gRPC", "grpc_url", address, "error", err.Error())
		return nil, err
	}

	return &grpcClient{
		cdc:  cdc,
		conn: conn,

		authClient: authtypes.NewQueryClient(conn),
		nodeClient: tmservice.NewServiceClient(conn),
		txClient:   txtypes.NewServiceClient(conn),

		logger: logger,
	}, nil
}

func (r *grpcClient) ChainID(ctx context.Context) (string, error) {
	response, err := r.nodeClient.GetNodeInfo(ctx, &tmservice.GetNodeInfoRequest{})
	if err != nil {
		return "", err
	}
	if response.DefaultNodeInfo == nil {
		return "", fmt.Errorf("node info response did not include node info")
	}

	return response.DefaultNodeInfo.Network, nil
}

func (r *grpcClient) Account(ctx context.Context, address string) (authtypes.AccountI, error) {
	query := &authtypes.QueryAccountRequest{Address: address}
	response, err := r.authClient.Account(ctx, query)
	if err != nil {
		if isNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
		}
		return nil, err
	}

	return unpackAccount(r.cdc, address, response.Account)
}

func (r *grpcClient) Broadcast(ctx context.Context, txBytes []byte) (*BroadcastResult, error) {
	query := &txtypes.BroadcastTxRequest{
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
		TxBytes: txBytes,
	}

	response, err := r.txClient.BroadcastTx(ctx, query)
	if err != nil {
		return nil, err
	}
	if response.TxResponse == nil {
		return nil, fmt.Errorf("received nil tx response in broadcast tx result")
	}

	return fromTxResponse(response.TxResponse), nil
}

func (r *grpcClient) GetTx(ctx context.Context, txHash string) (*BroadcastResult, error) {
	response, err := r.txClient.GetTx(ctx, &txtypes.GetTxRequest{Hash: txHash})
	if err != nil {
		if isNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	if response.TxResponse == nil {
		return nil, nil
	}

	return fromTxResponse(response.TxResponse), nil
}

func (r *grpcClient) Close() error {
	return r.conn.Close()
}

func fromTxResponse(txResponse *sdk.TxResponse) *BroadcastResult {
	return &BroadcastResult{
		TxHash:    txResponse.TxHash,
		Code:      txResponse.Code,
		Codespace: txResponse.Codespace,
		Log:       txResponse.RawLog,
		Height:    txResponse.Height,
		GasWanted: txResponse.GasWanted,
		GasUsed:   txResponse.GasUsed,
	}
}
