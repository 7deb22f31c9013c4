package msgs

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidDenom   = errors.New("invalid denom")
	ErrInvalidPayload = errors.New("invalid payload")
)

var amountRegex = regexp.MustCompile(`^[0-9]+$`)

// ValidateAddress checks that address is bech32 with the given human readable prefix.
func ValidateAddress(prefix, address string) error {
	hrp, addressBytes, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidAddress, address, err)
	}
	if hrp != prefix {
		return fmt.Errorf("%w %q: expected prefix %q, got %q", ErrInvalidAddress, address, prefix, hrp)
	}
	if err := sdk.VerifyAddressFormat(addressBytes); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidAddress, address, err)
	}
	return nil
}

// ParseAmount parses a non-negative integer amount in the smallest unit of a denom.
func ParseAmount(amount string) (math.Int, error) {
	if !amountRegex.MatchString(amount) {
		return math.Int{}, fmt.Errorf("%w %q: must be a non-negative integer", ErrInvalidAmount, amount)
	}

	parsed, ok := math.NewIntFromString(amount)
	if !ok {
		return math.Int{}, fmt.Errorf("%w %q: out of range", ErrInvalidAmount, amount)
	}
	return parsed, nil
}

// ParseCoin validates denom and amount and pairs them.
func ParseCoin(denom, amount string) (sdk.Coin, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return sdk.Coin{}, fmt.Errorf("%w %q: %s", ErrInvalidDenom, denom, err)
	}

	parsed, err := ParseAmount(amount)
	if err != nil {
		return sdk.Coin{}, err
	}

	return sdk.Coin{Denom: denom, Amount: parsed}, nil
}

// ValidateJSON checks that payload is UTF-8 and syntactically valid JSON.
func ValidateJSON(payload []byte) error {
	if !utf8.Valid(payload) {
		return fmt.Errorf("%w: not utf-8", ErrInvalidPayload)
	}
	if !json.Valid(payload) {
		return fmt.Errorf("%w: not valid json: %s", ErrInvalidPayload, payload)
	}
	return nil
}
