package tx

import (
	"errors"
	"fmt"
	"math"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	ErrInvalidGasPrice  = errors.New("invalid gas price")
	ErrInvalidGasWanted = errors.New("invalid gas wanted")
)

// ParseGasPrice parses "<decimal><denom>", e.g. "0.025uaura".
func ParseGasPrice(gasPrice string) (sdk.DecCoin, error) {
	parsed, err := sdk.ParseDecCoin(strings.TrimSpace(gasPrice))
	if err != nil {
		return sdk.DecCoin{}, fmt.Errorf("%w %q: %s", ErrInvalidGasPrice, gasPrice, err)
	}

	return parsed, nil
}

// CalculateFee charges ceil(price * gasWanted) of the price denom. A zero price yields no fee coins.
func CalculateFee(gasWanted uint64, gasPrice sdk.DecCoin) (Fee, error) {
	if gasWanted == 0 {
		return Fee{}, fmt.Errorf("%w: must be positive", ErrInvalidGasWanted)
	}
	if gasWanted > math.MaxInt64 {
		return Fee{}, fmt.Errorf("%w: %d is too large", ErrInvalidGasWanted, gasWanted)
	}
	if gasPrice.Amount.IsNil() || gasPrice.Amount.IsNegative() {
		return Fee{}, fmt.Errorf("%w: %s", ErrInvalidGasPrice, gasPrice)
	}

	amount := gasPrice.Amount.MulInt64(int64(gasWanted)).Ceil().TruncateInt()

	return Fee{
		GasWanted: gasWanted,
		Amount:    sdk.NewCoins(sdk.NewCoin(gasPrice.Denom, amount)),
	}, nil
}

// Helper function to know if an error had to do with gas.
func IsGasRelatedError(codespace string, code uint32) bool {
	return IsGasPriceError(codespace, code) || isGasAmountError(codespace, code)
}

// Helper function to determine if an error is related to too small of a gas price
func IsGasPriceError(codespace string, code uint32) bool {
	return codespace == "sdk" && code == 13
}

// Helper function to determine if an error is related to to few gas units
func isGasAmountError(codespace string, code uint32) bool {
	return codespace == "sdk" && code == 11
}
