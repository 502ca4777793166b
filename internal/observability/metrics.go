package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	storeOperationsTotal  *prometheus.CounterVec
	notificationsDerived  *prometheus.CounterVec
	documentSizeBytes     prometheus.Gauge
	documentReseedsTotal  prometheus.Counter
	corruptDocumentsTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the store.
func RegisterMetrics() {
	registerOnce.Do(func() {
		storeOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of document store operations, by collection, operation and outcome.",
		}, []string{"collection", "op", "outcome"})

		notificationsDerived = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "store_notifications_derived_total",
			Help: "Total number of notifications derived from store mutations, by type.",
		}, []string{"type"})

		documentSizeBytes = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "store_document_size_bytes",
			Help: "Serialized size of the persisted document after the last write.",
		})

		documentReseedsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_document_reseeds_total",
			Help: "Number of times the fixture document was written, cold starts included.",
		})

		corruptDocumentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_corrupt_documents_total",
			Help: "Number of loads that found an unparseable or malformed document.",
		})

		prometheus.MustRegister(storeOperationsTotal, notificationsDerived, documentSizeBytes, documentReseedsTotal, corruptDocumentsTotal)
	})
}

// StoreOperations exposes the counter for store operations.
func StoreOperations() *prometheus.CounterVec {
	RegisterMetrics()
	return storeOperationsTotal
}

// NotificationsDerived exposes the counter for derived notifications.
func NotificationsDerived() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsDerived
}

// DocumentSize exposes the gauge for the persisted document size.
func DocumentSize() prometheus.Gauge {
	RegisterMetrics()
	return documentSizeBytes
}

// DocumentReseeds exposes the counter for fixture writes.
func DocumentReseeds() prometheus.Counter {
	RegisterMetrics()
	return documentReseedsTotal
}

// CorruptDocuments exposes the counter for corrupt document loads.
func CorruptDocuments() prometheus.Counter {
	RegisterMetrics()
	return corruptDocumentsTotal
}
