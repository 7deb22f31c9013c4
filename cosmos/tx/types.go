package tx

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SignData is the (chain id, account number, sequence) triple a signature commits to. It is only
// valid until the next tx from the account is accepted, so it is fetched right before signing and
// never reused.
type SignData struct {
	ChainID       string `yaml:"chain_id"`
	AccountNumber uint64 `yaml:"account_number"`
	Sequence      uint64 `yaml:"sequence"`
}

// Fee is the gas limit and the amount paid for it.
type Fee struct {
	GasWanted uint64
	Amount    sdk.Coins
}
