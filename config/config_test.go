package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aura-nw/smart-account-sample/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testAddress  = "cosmos19rl4cm2hmr8afy4kldpxz3fka4jguq0auqdal4"
)

var allVariables = []string{
	"MNEMONIC", "PREFIX", "ADDRESS", "ENDPOINT", "GAS_PRICE", "GAS_WANTED", "DENOM", "MEMO",
	"LOG_LEVEL", "TX_POLL_ATTEMPTS", "TX_POLL_DELAY",
}

// setValidEnv sets a complete environment, clearing anything inherited from the test runner.
func setValidEnv(t *testing.T) {
	t.Helper()

	for _, variable := range allVariables {
		t.Setenv(variable, "")
		require.NoError(t, os.Unsetenv(variable))
	}

	t.Setenv("MNEMONIC", testMnemonic)
	t.Setenv("PREFIX", "cosmos")
	t.Setenv("ADDRESS", testAddress)
	t.Setenv("ENDPOINT", "http://localhost:26657")
	t.Setenv("GAS_PRICE", "0.025uatom")
	t.Setenv("GAS_WANTED", "200000")
}

func requireConfigurationError(t *testing.T, err error, field string) {
	t.Helper()

	var configErr *config.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, field, configErr.Field)
}

func TestLoad(t *testing.T) {
	setValidEnv(t)

	cfg, err := config.Load(false)
	require.NoError(t, err)

	assert.Equal(t, testMnemonic, cfg.Mnemonic)
	assert.Equal(t, "cosmos", cfg.Prefix)
	assert.Equal(t, testAddress, cfg.Address)
	assert.Equal(t, uint64(200000), cfg.GasWanted)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint(20), cfg.TxPollAttempts)
	assert.Equal(t, 3*time.Second, cfg.TxPollDelay)
	assert.Empty(t, cfg.Memo)

	fee, err := cfg.Fee()
	require.NoError(t, err)
	assert.Equal(t, "5000uatom", fee.Amount.String())
	assert.Equal(t, uint64(200000), fee.GasWanted)
}

func TestLoad_MissingGasPrice(t *testing.T) {
	setValidEnv(t)
	require.NoError(t, os.Unsetenv("GAS_PRICE"))

	cfg, err := config.Load(false)
	assert.Nil(t, cfg)
	requireConfigurationError(t, err, "GAS_PRICE")
}

func TestLoad_EmptyRequiredVariable(t *testing.T) {
	setValidEnv(t)
	t.Setenv("MNEMONIC", " ")

	_, err := config.Load(false)
	requireConfigurationError(t, err, "MNEMONIC")
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		variable string
		value    string
	}{
		{"GAS_WANTED", "lots"},
		{"GAS_WANTED", "-1"},
		{"GAS_WANTED", "0"},
		{"GAS_PRICE", "cheap"},
		{"ADDRESS", "aura1notanaddress"},
		{"ENDPOINT", "localhost:26657"},
		{"LOG_LEVEL", "chatty"},
		{"TX_POLL_DELAY", "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.variable+"="+tc.value, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tc.variable, tc.value)

			_, err := config.Load(false)
			requireConfigurationError(t, err, tc.variable)
		})
	}
}

func TestLoad_Denom(t *testing.T) {
	setValidEnv(t)

	_, err := config.Load(true)
	requireConfigurationError(t, err, "DENOM")

	t.Setenv("DENOM", "u")
	_, err = config.Load(true)
	requireConfigurationError(t, err, "DENOM")

	t.Setenv("DENOM", "uatom")
	cfg, err := config.Load(true)
	require.NoError(t, err)
	assert.Equal(t, "uatom", cfg.Denom)
}

func TestLoadEnvFile(t *testing.T) {
	setValidEnv(t)
	require.NoError(t, os.Unsetenv("GAS_WANTED"))
	t.Setenv("MEMO", "from the environment")
	require.NoError(t, os.Unsetenv("MEMO"))
	t.Setenv("GAS_PRICE", "0.05uatom")

	envFile := filepath.Join(t.TempDir(), ".env")
	contents := "GAS_WANTED=300000\nGAS_PRICE=0.5uatom\nMEMO=\"from file\"\n"
	require.NoError(t, os.WriteFile(envFile, []byte(contents), 0o600))

	require.NoError(t, config.LoadEnvFile(envFile, true))

	cfg, err := config.Load(false)
	require.NoError(t, err)
	assert.Equal(t, uint64(300000), cfg.GasWanted)
	assert.Equal(t, "from file", cfg.Memo)
	// The process environment takes precedence over the file
	assert.Equal(t, "0.05uatom", cfg.GasPrice)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")

	assert.NoError(t, config.LoadEnvFile(missing, false))

	err := config.LoadEnvFile(missing, true)
	requireConfigurationError(t, err, "env-file")
}
