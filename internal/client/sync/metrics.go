package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the sync engine
type Metrics struct {
	DrainsTotal    prometheus.Counter
	DrainDuration  prometheus.Histogram
	ItemsSynced    *prometheus.CounterVec
	ItemsAbandoned *prometheus.CounterVec
	ItemsFailed    prometheus.Counter
	QueueDepth     prometheus.Gauge
}

// NewMetrics registers the engine metrics with the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DrainsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fieldsync_drains_total",
			Help: "Total number of drain passes started",
		}),

		DrainDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fieldsync_drain_duration_seconds",
			Help:    "Time spent on a full drain pass",
			Buckets: prometheus.DefBuckets,
		}),

		ItemsSynced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldsync_items_synced_total",
			Help: "Queue items acknowledged by the server",
		}, []string{"kind"}),

		ItemsAbandoned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldsync_items_abandoned_total",
			Help: "Queue items dropped after exhausting the retry budget",
		}, []string{"kind"}),

		ItemsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fieldsync_item_failures_total",
			Help: "Individual replay failures, including ones later retried",
		}),

		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fieldsync_queue_depth",
			Help: "Number of mutations currently queued",
		}),
	}
}
