package smartaccount

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// SmartAccount is the account type the smart account module stores for activated accounts. Its wire
// layout is identical to BaseAccount (address, pub_key, account_number, sequence), so all behaviour
// is inherited and only the registered name differs.
type SmartAccount struct {
	authtypes.BaseAccount
}

var _ authtypes.AccountI = (*SmartAccount)(nil)

func (*SmartAccount) XXX_MessageName() string { return SmartAccountName }
