package purchaser

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	UpForSeconds *prometheus.Desc

	// State
	PurchasesSucceeded    *prometheus.Desc
	PurchasesPreview      *prometheus.Desc
	IdempotentHits        *prometheus.Desc
	TransientRpcSwallowed *prometheus.Desc
	TranslationsPersisted *prometheus.Desc
	MintsSucceeded        *prometheus.Desc
	MetadataExports       *prometheus.Desc
	MessagesPublished     *prometheus.Desc

	// Errors
	WalletFailures           *prometheus.Desc
	ChainFailures            *prometheus.Desc
	TranslationFailures      *prometheus.Desc
	ContentMissing           *prometheus.Desc
	StoreReadFailures        *prometheus.Desc
	StoreWriteFailures       *prometheus.Desc
	MintFailures             *prometheus.Desc
	MetadataBuildFailure     *prometheus.Desc
	PublishErrors            *prometheus.Desc
	PublishPersistentFailure *prometheus.Desc
}

func NewCollector() *Collector {
	return &Collector{
		UpForSeconds: prometheus.NewDesc("up_for_seconds", "", nil, nil),

		PurchasesSucceeded:    prometheus.NewDesc("purchases_succeeded", "", nil, nil),
		PurchasesPreview:      prometheus.NewDesc("purchases_preview", "", nil, nil),
		IdempotentHits:        prometheus.NewDesc("idempotent_hits", "", nil, nil),
		TransientRpcSwallowed: prometheus.NewDesc("transient_rpc_swallowed", "", nil, nil),
		TranslationsPersisted: prometheus.NewDesc("translations_persisted", "", nil, nil),
		MintsSucceeded:        prometheus.NewDesc("mints_succeeded", "", nil, nil),
		MetadataExports:       prometheus.NewDesc("metadata_exports", "", nil, nil),
		MessagesPublished:     prometheus.NewDesc("messages_published", "", nil, nil),

		WalletFailures:           prometheus.NewDesc("error_wallet_failures", "", nil, nil),
		ChainFailures:            prometheus.NewDesc("error_chain_failures", "", nil, nil),
		TranslationFailures:      prometheus.NewDesc("error_translation_failures", "", nil, nil),
		ContentMissing:           prometheus.NewDesc("error_content_missing", "", nil, nil),
		StoreReadFailures:        prometheus.NewDesc("error_store_read_failures", "", nil, nil),
		StoreWriteFailures:       prometheus.NewDesc("error_store_write_failures", "", nil, nil),
		MintFailures:             prometheus.NewDesc("error_mint_failures", "", nil, nil),
		MetadataBuildFailure:     prometheus.NewDesc("error_metadata_build_failure", "", nil, nil),
		PublishErrors:            prometheus.NewDesc("error_publish", "", nil, nil),
		PublishPersistentFailure: prometheus.NewDesc("error_publish_persistent_failure", "", nil, nil),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- self.UpForSeconds

	ch <- self.PurchasesSucceeded
	ch <- self.PurchasesPreview
	ch <- self.IdempotentHits
	ch <- self.TransientRpcSwallowed
	ch <- self.TranslationsPersisted
	ch <- self.MintsSucceeded
	ch <- self.MetadataExports
	ch <- self.MessagesPublished

	ch <- self.WalletFailures
	ch <- self.ChainFailures
	ch <- self.TranslationFailures
	ch <- self.ContentMissing
	ch <- self.StoreReadFailures
	ch <- self.StoreWriteFailures
	ch <- self.MintFailures
	ch <- self.MetadataBuildFailure
	ch <- self.PublishErrors
	ch <- self.PublishPersistentFailure
}

// Collect implements required collect function for all prometheus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(self.monitor.Report.Run.State.UpForSeconds.Load()))

	ch <- prometheus.MustNewConstMetric(self.PurchasesSucceeded, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.PurchasesSucceeded.Load()))
	ch <- prometheus.MustNewConstMetric(self.PurchasesPreview, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.PurchasesPreview.Load()))
	ch <- prometheus.MustNewConstMetric(self.IdempotentHits, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.IdempotentHits.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransientRpcSwallowed, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.TransientRpcSwallowed.Load()))
	ch <- prometheus.MustNewConstMetric(self.TranslationsPersisted, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.TranslationsPersisted.Load()))
	ch <- prometheus.MustNewConstMetric(self.MintsSucceeded, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.MintsSucceeded.Load()))
	ch <- prometheus.MustNewConstMetric(self.MetadataExports, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.State.MetadataExports.Load()))
	ch <- prometheus.MustNewConstMetric(self.MessagesPublished, prometheus.CounterValue, float64(self.monitor.Report.RedisPublisher.State.MessagesPublished.Load()))

	ch <- prometheus.MustNewConstMetric(self.WalletFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.WalletFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.ChainFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.ChainFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.TranslationFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.TranslationFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.ContentMissing, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.ContentMissing.Load()))
	ch <- prometheus.MustNewConstMetric(self.StoreReadFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.StoreReadFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.StoreWriteFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.StoreWriteFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.MintFailures, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.MintFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.MetadataBuildFailure, prometheus.CounterValue, float64(self.monitor.Report.Purchaser.Errors.MetadataBuildFailure.Load()))
	ch <- prometheus.MustNewConstMetric(self.PublishErrors, prometheus.CounterValue, float64(self.monitor.Report.RedisPublisher.Errors.Publish.Load()))
	ch <- prometheus.MustNewConstMetric(self.PublishPersistentFailure, prometheus.CounterValue, float64(self.monitor.Report.RedisPublisher.Errors.PersistentFailure.Load()))
}
