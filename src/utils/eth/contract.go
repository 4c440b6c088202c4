package eth

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// ABI of the marketplace contract, limited to the two entry points this
// service invokes. Has to match the deployed contract exactly.
const MarketplaceAbi = `[
  {
    "type": "function",
    "name": "safeMint",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "to", "type": "address"},
      {"name": "uri", "type": "string"}
    ],
    "outputs": []
  },
  {
    "type": "function",
    "name": "purchaseTranslation",
    "stateMutability": "payable",
    "inputs": [
      {"name": "contentId", "type": "string"},
      {"name": "language", "type": "string"},
      {"name": "creator", "type": "address"},
      {"name": "creatorShare", "type": "uint256"},
      {"name": "agentShare", "type": "uint256"}
    ],
    "outputs": [
      {"name": "", "type": "bool"}
    ]
  }
]`

// TranslationPrice is the fixed price of one translation: 0.01 ETH.
// It is a protocol constant, never user supplied.
func TranslationPrice() *big.Int {
	return big.NewInt(params.Ether / 100)
}
