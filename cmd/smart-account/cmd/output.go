package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"

	"github.com/aura-nw/smart-account-sample/config"
	"github.com/aura-nw/smart-account-sample/cosmos/rpc"
	"github.com/aura-nw/smart-account-sample/cosmos/tx"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

func printSuccess(w io.Writer, message string) {
	successColor.Fprintln(w, message)
}

func printResult(w io.Writer, result *rpc.BroadcastResult) error {
	if result.IsSuccess() {
		successColor.Fprintf(w, "✅ %s\n", result.TxHash)
	} else {
		failureColor.Fprintf(w, "❌ %s\n", result.TxHash)
	}

	encoded, err := yaml.Marshal(result)
	if err != nil {
		return err
	}

	_, err = w.Write(encoded)
	return err
}

func printKey(w io.Writer, key *generatedKey) error {
	rows := []struct {
		label string
		value string
	}{
		{"mnemonic", key.Mnemonic},
		{"address", key.Address},
		{"pub_key", key.PubKey},
		{"derivation_path", key.DerivationPath},
	}

	for _, row := range rows {
		labelColor.Fprintf(w, "%-16s", row.label)
		if _, err := fmt.Fprintln(w, row.value); err != nil {
			return err
		}
	}
	return nil
}

// printError prints err with a short classification of where the pipeline stopped.
func printError(w io.Writer, err error) {
	var (
		configErr    *config.ConfigurationError
		signingErr   *tx.SigningError
		broadcastErr *tx.BroadcastError
		rejection    *tx.ChainRejection
	)

	stage := "error"
	switch {
	case errors.As(err, &configErr):
		stage = "configuration error"
	case errors.As(err, &signingErr):
		stage = "signing error"
	case errors.As(err, &broadcastErr):
		stage = "broadcast error"
	case errors.As(err, &rejection):
		stage = "rejected by chain"
	}

	failureColor.Fprintf(w, "%s: ", stage)
	fmt.Fprintln(w, err.Error())
}
