package tx

import (
	"errors"

	"github.com/aura-nw/smart-account-sample/crypto"
	"github.com/aura-nw/smart-account-sample/log"

	"github.com/cosmos/cosmos-sdk/client"
	cosmostx "github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
)

type TxProvider interface {
	// SignAndEncode signs messages, in order, under fee, memo and signData and returns TxRaw bytes.
	SignAndEncode(messages []sdk.Msg, fee Fee, memo string, signData *SignData) ([]byte, error)
}

// txProvider is the default implementation of the TxProvider interface
type txProvider struct {
	bytesSigner crypto.BytesSigner

	logger *log.Logger

	txConfig client.TxConfig
}

// Assert type conformance
var _ TxProvider = (*txProvider)(nil)

func NewTxProvider(bytesSigner crypto.BytesSigner, logger *log.Logger, txConfig client.TxConfig) TxProvider {
	return &txProvider{
		bytesSigner: bytesSigner,

		logger: logger,

		txConfig: txConfig,
	}
}

func (txp *txProvider) SignAndEncode(messages []sdk.Msg, fee Fee, memo string, signData *SignData) ([]byte, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to sign")
	}
	if signData == nil {
		return nil, errors.New("sign data is required")
	}

	publicKey := txp.bytesSigner.GetPublicKey()
	if publicKey == nil {
		return nil, &SigningError{Err: errors.New("identity has no public key")}
	}

	// Build a transaction
	txFactory := cosmostx.Factory{}.WithChainID(signData.ChainID).WithTxConfig(txp.txConfig)
	txb, err := txFactory.BuildUnsignedTx(messages...)
	if err != nil {
		return nil, err
	}

	txb.SetMemo(memo)
	txb.SetGasLimit(fee.GasWanted)
	txb.SetFeeAmount(fee.Amount)

	// The signer info is part of the signed auth info, so it goes in before computing sign bytes.
	signMode := signing.SignMode_SIGN_MODE_DIRECT
	signatureProto := signing.SignatureV2{
		PubKey: publicKey,
		Data: &signing.SingleSignatureData{
			SignMode:  signMode,
			Signature: nil,
		},
		Sequence: signData.Sequence,
	}
	err = txb.SetSignatures(signatureProto)
	if err != nil {
		return nil, err
	}

	// Shim metadata into the format Cosmos SDK wants
	signerData := authsigning.SignerData{
		ChainID:       signData.ChainID,
		AccountNumber: signData.AccountNumber,
		Sequence:      signData.Sequence,
		PubKey:        publicKey,
	}

	// Encode to bytes to sign
	unsignedTxBytes, err := txp.txConfig.SignModeHandler().GetSignBytes(signMode, signerData, txb.GetTx())
	if err != nil {
		return nil, err
	}

	// Sign the bytes
	signatureBytes, err := txp.bytesSigner.SignBytes(unsignedTxBytes)
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	// Reconstruct the signature proto
	signatureProto = signing.SignatureV2{
		PubKey: publicKey,
		Data: &signing.SingleSignatureData{
			SignMode:  signMode,
			Signature: signatureBytes,
		},
		Sequence: signData.Sequence,
	}
	err = txb.SetSignatures(signatureProto)
	if err != nil {
		return nil, err
	}

	txp.logger.Debug("signed transaction", "num_msgs", len(messages), "chain_id", signData.ChainID, "account_number", signData.AccountNumber, "sequence", signData.Sequence)

	// Encode to bytes
	encoder := txp.txConfig.TxEncoder()
	return encoder(txb.GetTx())
}
