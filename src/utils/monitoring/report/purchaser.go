package report

import "go.uber.org/atomic"

type PurchaserErrors struct {
	WalletFailures       atomic.Uint64 `json:"wallet_failures"`
	ChainFailures        atomic.Uint64 `json:"chain_failures"`
	TranslationFailures  atomic.Uint64 `json:"translation_failures"`
	ContentMissing       atomic.Uint64 `json:"content_missing"`
	StoreReadFailures    atomic.Uint64 `json:"store_read_failures"`
	StoreWriteFailures   atomic.Uint64 `json:"store_write_failures"`
	MintFailures         atomic.Uint64 `json:"mint_failures"`
	MetadataBuildFailure atomic.Uint64 `json:"metadata_build_failure"`
}

type PurchaserState struct {
	PurchasesSucceeded    atomic.Uint64 `json:"purchases_succeeded"`
	PurchasesPreview      atomic.Uint64 `json:"purchases_preview"`
	IdempotentHits        atomic.Uint64 `json:"idempotent_hits"`
	TransientRpcSwallowed atomic.Uint64 `json:"transient_rpc_swallowed"`
	TranslationsPersisted atomic.Uint64 `json:"translations_persisted"`
	MintsSucceeded        atomic.Uint64 `json:"mints_succeeded"`
	MetadataExports       atomic.Uint64 `json:"metadata_exports"`
}

type PurchaserReport struct {
	State  PurchaserState  `json:"state"`
	Errors PurchaserErrors `json:"errors"`
}
