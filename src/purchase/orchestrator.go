package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"babel/src/utils/config"
	"babel/src/utils/eth"
	"babel/src/utils/monitoring"
	"babel/src/utils/task"

	"github.com/rs/xid"
)

var ErrContentNotFound = errors.New("content not found")

// Orchestrator runs the translation-purchase flow:
// one payment attempt on chain, one translation, at most one store write.
// It keeps no state between invocations.
type Orchestrator struct {
	*task.Task

	chain      ChainClient
	translator Translator
	store      ContentStore
	monitor    monitoring.Monitor
	events     chan *Event
}

func NewOrchestrator(config *config.Config) (self *Orchestrator) {
	self = new(Orchestrator)

	self.Task = task.NewTask(config, "orchestrator")

	return
}

func (self *Orchestrator) WithChainClient(chain ChainClient) *Orchestrator {
	self.chain = chain
	return self
}

func (self *Orchestrator) WithTranslator(translator Translator) *Orchestrator {
	self.translator = translator
	return self
}

func (self *Orchestrator) WithStore(store ContentStore) *Orchestrator {
	self.store = store
	return self
}

func (self *Orchestrator) WithMonitor(monitor monitoring.Monitor) *Orchestrator {
	self.monitor = monitor
	return self
}

func (self *Orchestrator) WithEventsChannel(events chan *Event) *Orchestrator {
	self.events = events
	return self
}

// Purchase buys a translation of the content into the given language.
// The wallet is only a capability check here, signing happens with the
// configured service key. Runs to completion on the task context, a caller
// going away mid-flight does not abort the payment.
func (self *Orchestrator) Purchase(ctx context.Context, wallet Wallet, contentId, language string) (result *Result, err error) {
	attemptId := xid.New().String()
	log := self.Log.WithField("attempt_id", attemptId).
		WithField("content_id", contentId).
		WithField("language", language)

	if !wallet.IsConnected || wallet.Address == "" {
		self.monitor.GetReport().Purchaser.Errors.WalletFailures.Inc()
		return nil, &eth.WalletError{Reason: "wallet not connected"}
	}

	content, err := self.store.Get(ctx, contentId)
	if err != nil {
		self.monitor.GetReport().Purchaser.Errors.StoreReadFailures.Inc()
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	data, err := content.GetData()
	if err != nil {
		self.monitor.GetReport().Purchaser.Errors.StoreReadFailures.Inc()
		return nil, err
	}

	// Already purchased, don't touch the chain or the store again
	if existing := FindAttribute(&data, language); existing != nil {
		self.monitor.GetReport().Purchaser.State.IdempotentHits.Inc()
		log.Debug("Translation already present")
		return &Result{
			AttemptId:      attemptId,
			ContentId:      contentId,
			Language:       language,
			TranslatedText: existing.Value,
			Mode:           ModePurchased,
			Persisted:      true,
		}, nil
	}

	log.Info("Purchasing")
	mode := ModePurchased
	persist := true
	receipt, err := self.chain.PayForTranslation(self.Ctx, contentId, language, content.CreatorId, content.CreatorShare, content.AgentShare)
	switch {
	case err == nil && receipt != nil:
		// Payment confirmed
	case err == nil && receipt == nil:
		// Transient RPC race swallowed by the client, payment presumed
		// delivered. Persist, but mark the result as provisional.
		self.monitor.GetReport().Purchaser.State.TransientRpcSwallowed.Inc()
		mode = ModePreview
	case eth.IsWalletError(err):
		self.monitor.GetReport().Purchaser.Errors.WalletFailures.Inc()
		return nil, err
	default:
		// Payment failed on chain, the buyer still gets a one-off preview
		self.monitor.GetReport().Purchaser.Errors.ChainFailures.Inc()
		log.WithError(err).Warn("Payment failed, falling back to preview")
		mode = ModePreview
		persist = false
	}

	log.Info("Reconciling")
	original := FindAttribute(&data, content.Language)
	if original == nil {
		self.monitor.GetReport().Purchaser.Errors.ContentMissing.Inc()
		return nil, &ContentMissingError{ContentId: contentId}
	}

	translated, err := self.translator.Translate(self.Ctx, content.Language, language, original.Value)
	if err != nil {
		self.monitor.GetReport().Purchaser.Errors.TranslationFailures.Inc()
		return nil, err
	}
	if strings.TrimSpace(translated) == "" {
		self.monitor.GetReport().Purchaser.Errors.TranslationFailures.Inc()
		return nil, fmt.Errorf("translator returned empty text for content %s", contentId)
	}

	persisted := false
	if persist {
		err = self.persistTranslation(ctx, contentId, language, translated)
		if err != nil {
			// The buyer paid and got the translation, losing the write
			// downgrades the result to a preview instead of failing
			self.monitor.GetReport().Purchaser.Errors.StoreWriteFailures.Inc()
			log.WithError(err).Error("Failed to save translation")
			mode = ModePreview
		} else {
			self.monitor.GetReport().Purchaser.State.TranslationsPersisted.Inc()
			persisted = true
		}
	}

	if mode == ModePurchased {
		self.monitor.GetReport().Purchaser.State.PurchasesSucceeded.Inc()
	} else {
		self.monitor.GetReport().Purchaser.State.PurchasesPreview.Inc()
	}

	result = &Result{
		AttemptId:      attemptId,
		ContentId:      contentId,
		Language:       language,
		TranslatedText: translated,
		Mode:           mode,
		Persisted:      persisted,
		Receipt:        receipt,
	}
	self.emit(result)
	return result, nil
}

// persistTranslation re-reads the record before merging, so a concurrent
// purchase of another language is not clobbered. There's no locking across
// the chain call and this write, last writer wins per language.
func (self *Orchestrator) persistTranslation(ctx context.Context, contentId, language, translated string) (err error) {
	content, err := self.store.Get(ctx, contentId)
	if err != nil {
		return
	}
	if content == nil {
		return ErrContentNotFound
	}

	data, err := content.GetData()
	if err != nil {
		return
	}

	MergeAttribute(&data, language, translated)

	err = content.SetData(data)
	if err != nil {
		return
	}

	return self.store.UpdateContentData(ctx, content)
}

func (self *Orchestrator) emit(result *Result) {
	if self.events == nil {
		return
	}
	event := &Event{
		AttemptId: result.AttemptId,
		ContentId: result.ContentId,
		Language:  result.Language,
		Mode:      result.Mode,
		Persisted: result.Persisted,
	}
	if result.Receipt != nil {
		event.TxHash = result.Receipt.TransactionHash
	}
	select {
	case self.events <- event:
	default:
		self.Log.Warn("Events channel full, dropping purchase event")
	}
}
