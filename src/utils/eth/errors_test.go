package eth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyNil(t *testing.T) {
	require.Nil(t, Classify(nil))
}

func TestClassifyTransient(t *testing.T) {
	err := Classify(errors.New("Internal JSON-RPC error: eth_getTransactionCount failed"))

	var transientErr *TransientRpcError
	require.ErrorAs(t, err, &transientErr)
	require.Equal(t, "eth_getTransactionCount", transientErr.Signature)
	require.True(t, IsTransient(err))
}

func TestClassifyWallet(t *testing.T) {
	for _, msg := range []string{
		"MetaMask Tx Signature: User denied transaction signature",
		"user rejected the request",
		"unknown account",
	} {
		err := Classify(errors.New(msg))
		require.True(t, IsWalletError(err), msg)
	}
}

func TestClassifyDefaultsToChainError(t *testing.T) {
	err := Classify(errors.New("execution reverted: insufficient payment"))

	var chainErr *ChainError
	require.ErrorAs(t, err, &chainErr)
	require.False(t, IsTransient(err))
	require.False(t, IsWalletError(err))
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	original := &WalletError{Reason: "no signing key configured"}
	require.Same(t, error(original), Classify(original))

	wrapped := fmt.Errorf("sending: %w", &TransientRpcError{Signature: "eth_getTransactionCount", Err: errors.New("race")})
	require.Equal(t, wrapped, Classify(wrapped))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	require.ErrorIs(t, &ChainError{Err: cause}, cause)
	require.ErrorIs(t, &WalletError{Reason: "rejected", Err: cause}, cause)
	require.ErrorIs(t, &TransientRpcError{Signature: "x", Err: cause}, cause)
}
