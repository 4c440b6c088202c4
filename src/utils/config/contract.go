package config

import (
	"time"

	"github.com/spf13/viper"
)

type Contract struct {
	// Address of the marketplace contract
	Address string

	// JSON-RPC endpoint used for every chain call
	RpcProviderUrl string

	// Chain id used for transaction signing
	ChainId int64

	// Hex encoded private key of the purchasing wallet.
	// Empty means no wallet is available and chain calls fail with a wallet error.
	PrivateKey string

	// Gas limit for marketplace transactions
	GasLimit uint64

	// Max time between failed retries when dialing the RPC provider
	DialBackoffInterval time.Duration
}

func setContractDefaults() {
	viper.SetDefault("Contract.Address", "0x60155DF180066aD68ee39D64B5AeBF1440971Ccf")
	viper.SetDefault("Contract.RpcProviderUrl", "https://ethereum-sepolia-rpc.publicnode.com")
	viper.SetDefault("Contract.ChainId", 11155111)
	viper.SetDefault("Contract.PrivateKey", "")
	viper.SetDefault("Contract.GasLimit", 300000)
	viper.SetDefault("Contract.DialBackoffInterval", "3s")
}
