package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aura-nw/smart-account-sample/chains"
	"github.com/aura-nw/smart-account-sample/config"
	"github.com/aura-nw/smart-account-sample/cosmos/encoding"
	"github.com/aura-nw/smart-account-sample/cosmos/msgs"
	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/cosmos/tx"
	"github.com/aura-nw/smart-account-sample/crypto"
	"github.com/aura-nw/smart-account-sample/log"
	"github.com/aura-nw/smart-account-sample/util"
)

// Overridden in tests.
var newRpcClient = rpc.NewClient

// environment is everything a transaction command needs, resolved before any network call.
type environment struct {
	config         *config.Config
	fee            tx.Fee
	logger         *log.Logger
	encodingConfig encoding.EncodingConfig
}

func loadEnvironment(cmd *cobra.Command, opts *rootOptions, requireDenom bool) (*environment, error) {
	envFileFlag := cmd.Flag("env-file")
	if err := config.LoadEnvFile(opts.envFile, envFileFlag != nil && envFileFlag.Changed); err != nil {
		return nil, err
	}

	cfg, err := config.Load(requireDenom)
	if err != nil {
		return nil, err
	}

	fee, err := cfg.Fee()
	if err != nil {
		return nil, err
	}

	encoding.ConfigureBech32Prefix(cfg.Prefix)

	return &environment{
		config:         cfg,
		fee:            fee,
		logger:         log.NewLoggerWithWriter(cfg.LogLevel, []string{fmt.Sprintf("[%s]", cmd.Name())}, cmd.ErrOrStderr()),
		encodingConfig: encoding.MakeEncodingConfig(),
	}, nil
}

// argumentError marks a malformed positional argument.
func argumentError(argument string, err error) error {
	return &config.ConfigurationError{Field: argument, Err: err}
}

// signAndBroadcast runs the pipeline for messages built by the command.
func signAndBroadcast(ctx context.Context, cmd *cobra.Command, env *environment, messages []msgs.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = util.InterfaceToError(r)
		}
	}()

	cfg := env.config
	logger := env.logger

	keyPair, err := crypto.NewKeyPairFromMnemonic(cfg.Mnemonic)
	if err != nil {
		return &tx.SigningError{Err: err}
	}
	logger.Info("loaded signing key", "signer", keyPair.GetAddress(cfg.Prefix), "account", cfg.Address)

	client, err := newRpcClient(cfg.Endpoint, env.encodingConfig.Codec, logger)
	if err != nil {
		return &tx.BroadcastError{Err: err}
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn("failed to close client", "error", closeErr.Error())
		}
	}()

	assembler := tx.NewAssembler(
		cfg.Address,
		cfg.Prefix,
		chains.NewOfflineChainRegistry(),
		tx.NewSigningMetadataProvider(client, logger),
		tx.NewTxProvider(keyPair, logger, env.encodingConfig.TxConfig),
		tx.NewBroadcaster(client, logger, cfg.TxPollAttempts, cfg.TxPollDelay),
		logger,
	)

	result, err := assembler.SignAndBroadcast(ctx, messages, env.fee, cfg.Memo)
	if result != nil {
		if printErr := printResult(cmd.OutOrStdout(), result); printErr != nil {
			logger.Warn("failed to print result", "error", printErr.Error())
		}
	}
	return acceptedByNode(logger, err)
}

// acceptedByNode clears a DeliverTx rejection: the node accepted the tx, so the command succeeded
// even though execution failed on chain. The failed result has already been printed.
func acceptedByNode(logger *log.Logger, err error) error {
	var rejection *tx.ChainRejection
	if errors.As(err, &rejection) && rejection.Stage == tx.StageDeliverTx {
		logger.Warn("transaction was accepted by the node but failed on chain", "tx_hash", rejection.Result.TxHash, "code", rejection.Result.Code, "codespace", rejection.Result.Codespace)
		return nil
	}
	return err
}
