package rpc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// unpackAccount decodes the account Any into a BaseAccount, SmartAccount or any other registered
// AccountI.
func unpackAccount(cdc *codec.ProtoCodec, address string, accountAny *codectypes.Any) (authtypes.AccountI, error) {
	if accountAny == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}

	var account authtypes.AccountI
	if err := cdc.UnpackAny(accountAny, &account); err != nil {
		return nil, fmt.Errorf("unable to decode account %s of type %s: %w", address, accountAny.TypeUrl, err)
	}

	return account, nil
}

// isNotFoundError matches gRPC NotFound statuses, including ones flattened into strings by
// intermediaries.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	grpcErr, ok := status.FromError(err)
	if ok && grpcErr.Code() == codes.NotFound {
		return true
	}

	return strings.Contains(err.Error(), "code = NotFound")
}

// Matches the auth module's "account <address> not found".
var accountNotFoundLog = regexp.MustCompile(`account \S+ not found`)

// isNotFoundResponse classifies a failed ABCI query.
func isNotFoundResponse(codespace string, code uint32, log string) bool {
	if codespace == sdkerrors.RootCodespace {
		if code == sdkerrors.ErrKeyNotFound.ABCICode() || code == sdkerrors.ErrUnknownAddress.ABCICode() {
			return true
		}
	}

	return strings.Contains(log, "code = NotFound") || accountNotFoundLog.MatchString(log)
}
