package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/cosmos/tx"
	"github.com/aura-nw/smart-account-sample/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ConfigurationError is a missing or malformed environment variable or argument. It is always
// raised before any network call.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Err)
	}
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Config is read once from the environment at startup and passed down explicitly.
type Config struct {
	Mnemonic  string `envconfig:"MNEMONIC" required:"true"`
	Prefix    string `envconfig:"PREFIX" required:"true"`
	Address   string `envconfig:"ADDRESS" required:"true"`
	Endpoint  string `envconfig:"ENDPOINT" required:"true"`
	GasPrice  string `envconfig:"GAS_PRICE" required:"true"`
	GasWanted uint64 `envconfig:"GAS_WANTED" required:"true"`

	// Only needed by commands that move tokens.
	Denom string `envconfig:"DENOM"`

	Memo           string        `envconfig:"MEMO"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	TxPollAttempts uint          `envconfig:"TX_POLL_ATTEMPTS" default:"20"`
	TxPollDelay    time.Duration `envconfig:"TX_POLL_DELAY" default:"3s"`
}

// LoadEnvFile seeds the environment from a dotenv file. Variables already set win. A missing file
// is only an error when required.
func LoadEnvFile(path string, required bool) error {
	expanded := ExpandHomeDir(path)
	if !FileExists(expanded) {
		if required {
			return &ConfigurationError{Field: "env-file", Err: fmt.Errorf("file %s does not exist", path)}
		}
		return nil
	}

	if err := godotenv.Load(expanded); err != nil {
		return &ConfigurationError{Field: "env-file", Err: err}
	}
	return nil
}

// Load reads and validates the environment. requireDenom is set by commands that transfer tokens.
func Load(requireDenom bool) (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, toConfigurationError(err)
	}

	if err := config.Validate(requireDenom); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate performs the local, structural checks on every field.
func (c *Config) Validate(requireDenom bool) error {
	required := []struct {
		field string
		value string
	}{
		{"MNEMONIC", c.Mnemonic},
		{"PREFIX", c.Prefix},
		{"ADDRESS", c.Address},
		{"ENDPOINT", c.Endpoint},
		{"GAS_PRICE", c.GasPrice},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ConfigurationError{Field: r.field, Err: errors.New("must be set")}
		}
	}

	if err := msgs.ValidateAddress(c.Prefix, c.Address); err != nil {
		return &ConfigurationError{Field: "ADDRESS", Err: err}
	}
	if _, err := rpc.ParseEndpoint(c.Endpoint); err != nil {
		return &ConfigurationError{Field: "ENDPOINT", Err: err}
	}
	if _, err := tx.ParseGasPrice(c.GasPrice); err != nil {
		return &ConfigurationError{Field: "GAS_PRICE", Err: err}
	}
	if c.GasWanted == 0 || c.GasWanted > math.MaxInt64 {
		return &ConfigurationError{Field: "GAS_WANTED", Err: fmt.Errorf("must be a positive integer, got %d", c.GasWanted)}
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return &ConfigurationError{Field: "LOG_LEVEL", Err: err}
	}

	if requireDenom {
		if c.Denom == "" {
			return &ConfigurationError{Field: "DENOM", Err: errors.New("must be set")}
		}
		if err := sdk.ValidateDenom(c.Denom); err != nil {
			return &ConfigurationError{Field: "DENOM", Err: err}
		}
	}

	return nil
}

// Fee derives the tx fee from GAS_PRICE and GAS_WANTED.
func (c *Config) Fee() (tx.Fee, error) {
	gasPrice, err := tx.ParseGasPrice(c.GasPrice)
	if err != nil {
		return tx.Fee{}, &ConfigurationError{Field: "GAS_PRICE", Err: err}
	}

	fee, err := tx.CalculateFee(c.GasWanted, gasPrice)
	if err != nil {
		return tx.Fee{}, &ConfigurationError{Field: "GAS_WANTED", Err: err}
	}
	return fee, nil
}

func toConfigurationError(err error) error {
	var parseErr *envconfig.ParseError
	if errors.As(err, &parseErr) {
		return &ConfigurationError{Field: parseErr.KeyName, Err: parseErr.Err}
	}

	// envconfig reports missing variables as "required key X missing value"
	var key string
	if _, scanErr := fmt.Sscanf(err.Error(), "required key %s missing value", &key); scanErr == nil {
		return &ConfigurationError{Field: key, Err: errors.New("must be set")}
	}

	return &ConfigurationError{Err: err}
}
