package eth

import (
	"errors"
	"fmt"
	"strings"
)

// No wallet/signer available or the user rejected signing. Not retried.
type WalletError struct {
	Reason string
	Err    error
}

func (self *WalletError) Error() string {
	if self.Err != nil {
		return fmt.Sprintf("wallet: %s: %s", self.Reason, self.Err)
	}
	return fmt.Sprintf("wallet: %s", self.Reason)
}

func (self *WalletError) Unwrap() error { return self.Err }

// Transaction reverted or the node rejected it. Not retried automatically.
type ChainError struct {
	Err error
}

func (self *ChainError) Error() string { return fmt.Sprintf("chain: %s", self.Err) }

func (self *ChainError) Unwrap() error { return self.Err }

// A known benign RPC race, e.g. a stale account-nonce read during wallet
// state refresh. The payment most likely went through despite the error.
type TransientRpcError struct {
	Signature string
	Err       error
}

func (self *TransientRpcError) Error() string {
	return fmt.Sprintf("transient rpc (%s): %s", self.Signature, self.Err)
}

func (self *TransientRpcError) Unwrap() error { return self.Err }

// Error message fragments of RPC races observed to be benign
var transientSignatures = []string{
	"eth_getTransactionCount",
}

// Error message fragments meaning the user's wallet refused to sign
var walletSignatures = []string{
	"user denied",
	"user rejected",
	"unknown account",
}

// Classify maps a raw provider error onto the adapter's error taxonomy.
// Keeps the matching logic in one place instead of inline string checks at
// call sites. Already classified errors pass through untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var walletErr *WalletError
	var chainErr *ChainError
	var transientErr *TransientRpcError
	if errors.As(err, &walletErr) || errors.As(err, &chainErr) || errors.As(err, &transientErr) {
		return err
	}

	msg := err.Error()
	for _, signature := range transientSignatures {
		if strings.Contains(msg, signature) {
			return &TransientRpcError{Signature: signature, Err: err}
		}
	}

	lower := strings.ToLower(msg)
	for _, signature := range walletSignatures {
		if strings.Contains(lower, signature) {
			return &WalletError{Reason: "signing rejected", Err: err}
		}
	}

	return &ChainError{Err: err}
}

func IsTransient(err error) bool {
	var transientErr *TransientRpcError
	return errors.As(err, &transientErr)
}

func IsWalletError(err error) bool {
	var walletErr *WalletError
	return errors.As(err, &walletErr)
}
