package chains_test

import (
	"testing"

	"github.com/aura-nw/smart-account-sample/chains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineChainRegistry_ChainByID(t *testing.T) {
	registry := chains.NewOfflineChainRegistry()

	euphoria, ok := registry.ChainByID("euphoria-2")
	require.True(t, ok)
	assert.Equal(t, "aura", euphoria.AccountPrefix)
	assert.Equal(t, "ueaura", euphoria.NativeToken)

	_, ok = registry.ChainByID("cosmoshub-4")
	assert.False(t, ok)

	assert.Equal(t, "xstaxy-1", registry.AccountPrefixToData["aura"].ChainID)
}

func TestOfflineChainRegistry_Mismatches(t *testing.T) {
	registry := chains.NewOfflineChainRegistry()

	assert.Empty(t, registry.Mismatches("euphoria-2", "aura", "ueaura"))
	assert.Len(t, registry.Mismatches("euphoria-2", "aura", "uaura"), 1)
	assert.Len(t, registry.Mismatches("euphoria-2", "cosmos", "uatom", "ueaura"), 2)
	assert.Empty(t, registry.Mismatches("localnet", "cosmos", "stake"))
}

func TestOfflineChainRegistry_UnknownChainWithKnownPrefix(t *testing.T) {
	registry := chains.NewOfflineChainRegistry()

	mismatches := registry.Mismatches("aura-devnet", "aura", "uaura")
	require.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0], "aura-devnet")
	assert.Contains(t, mismatches[0], "xstaxy-1")
}
