package eth

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Receipt is a transport-safe projection of a transaction receipt.
// Every numeric field is a decimal string, receipts carry values outside the
// safe-integer range and have to survive JSON serialization to the record
// store and to downloadable artifacts.
type Receipt struct {
	TransactionHash   string                   `json:"transaction_hash"`
	TransactionIndex  string                   `json:"transaction_index"`
	BlockHash         string                   `json:"block_hash"`
	BlockNumber       string                   `json:"block_number"`
	ContractAddress   string                   `json:"contract_address,omitempty"`
	GasUsed           string                   `json:"gas_used"`
	CumulativeGasUsed string                   `json:"cumulative_gas_used"`
	EffectiveGasPrice string                   `json:"effective_gas_price"`
	Status            string                   `json:"status"`
	Logs              []map[string]interface{} `json:"logs"`
}

var zeroAddress = "0x0000000000000000000000000000000000000000"

// SanitizeReceipt converts a raw receipt into its serializable form
func SanitizeReceipt(receipt *types.Receipt) (self *Receipt) {
	self = &Receipt{
		TransactionHash:   receipt.TxHash.Hex(),
		TransactionIndex:  strconv.FormatUint(uint64(receipt.TransactionIndex), 10),
		BlockHash:         receipt.BlockHash.Hex(),
		GasUsed:           strconv.FormatUint(receipt.GasUsed, 10),
		CumulativeGasUsed: strconv.FormatUint(receipt.CumulativeGasUsed, 10),
		Status:            strconv.FormatUint(receipt.Status, 10),
		Logs:              make([]map[string]interface{}, 0, len(receipt.Logs)),
	}

	if receipt.BlockNumber != nil {
		self.BlockNumber = receipt.BlockNumber.String()
	}
	if receipt.EffectiveGasPrice != nil {
		self.EffectiveGasPrice = receipt.EffectiveGasPrice.String()
	}
	if contractAddress := receipt.ContractAddress.Hex(); contractAddress != zeroAddress {
		self.ContractAddress = contractAddress
	}

	for _, log := range receipt.Logs {
		topics := make([]interface{}, 0, len(log.Topics))
		for _, topic := range log.Topics {
			topics = append(topics, topic.Hex())
		}
		self.Logs = append(self.Logs, Sanitize(map[string]interface{}{
			"address":      log.Address.Hex(),
			"topics":       topics,
			"data":         hexutil.Encode(log.Data),
			"block_number": log.BlockNumber,
			"tx_hash":      log.TxHash.Hex(),
			"tx_index":     uint64(log.TxIndex),
			"log_index":    uint64(log.Index),
			"removed":      log.Removed,
		}).(map[string]interface{}))
	}

	return
}

// Sanitize walks an arbitrary value and rewrites every big integer into a
// decimal string, recursively. Applied before any serialization.
func Sanitize(value interface{}) interface{} {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil
		}
		return v.String()
	case big.Int:
		return v.String()
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = Sanitize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, Sanitize(item))
		}
		return out
	default:
		return value
	}
}
