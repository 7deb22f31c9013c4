package chains

import "github.com/aura-nw/smart-account-sample/arrays"

// Provides offline chain data for the Aura networks, so configuration can be sanity checked without
// another network round trip.
type OfflineChainRegistry struct {
	ChainIDToData       map[string]*ChainData
	AccountPrefixToData map[string]*ChainData
}

func NewOfflineChainRegistry() *OfflineChainRegistry {
	chainRegistry := &OfflineChainRegistry{
		ChainIDToData:       make(map[string]*ChainData),
		AccountPrefixToData: make(map[string]*ChainData),
	}

	chainRegistry.addToRegistry("aura", "xstaxy-1", "aura", "uaura")
	chainRegistry.addToRegistry("aura-euphoria", "euphoria-2", "aura", "ueaura")
	chainRegistry.addToRegistry("aura-serenity", "serenity-testnet-001", "aura", "utaura")

	return chainRegistry
}

func (cr *OfflineChainRegistry) addToRegistry(
	chainName string,
	chainID string,
	accountPrefix string,
	nativeToken string,
) {
	chainData := &ChainData{
		ChainID:       chainID,
		ChainName:     chainName,
		AccountPrefix: accountPrefix,

		NativeToken: nativeToken,
	}

	cr.ChainIDToData[chainID] = chainData
	// All networks share a prefix; the mainnet entry wins.
	if _, ok := cr.AccountPrefixToData[accountPrefix]; !ok {
		cr.AccountPrefixToData[accountPrefix] = chainData
	}
}

// ChainByID returns the known network with the given chain id.
func (cr *OfflineChainRegistry) ChainByID(chainID string) (*ChainData, bool) {
	chainData, ok := cr.ChainIDToData[chainID]
	return chainData, ok
}

// Mismatches lists human readable disagreements between the configured prefix and denoms and what
// is known about chainID. An unknown chain only mismatches when prefix belongs to a known network.
func (cr *OfflineChainRegistry) Mismatches(chainID, prefix string, denoms ...string) []string {
	chainData, ok := cr.ChainByID(chainID)
	if !ok {
		if known, ok := cr.AccountPrefixToData[prefix]; ok {
			return []string{"chain id " + chainID + " is not a known " + prefix + " network such as " + known.ChainID + " (" + known.ChainName + ")"}
		}
		return nil
	}

	mismatches := []string{}
	if prefix != chainData.AccountPrefix {
		mismatches = append(mismatches, "prefix "+prefix+" differs from "+chainData.AccountPrefix)
	}
	foreign := arrays.Filter(denoms, func(denom string) bool { return denom != chainData.NativeToken })
	for _, denom := range foreign {
		mismatches = append(mismatches, "denom "+denom+" differs from "+chainData.NativeToken)
	}

	return mismatches
}
