package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhooksReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_webhooks_received_total",
			Help: "Total number of order webhooks received",
		},
	)

	WebhooksRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_webhooks_rejected_total",
			Help: "Total number of order webhooks rejected for a bad signature",
		},
	)

	WebhooksDedupedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_webhooks_deduped_total",
			Help: "Total number of order webhooks skipped as already processed",
		},
	)

	MintsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nft_mints_total",
			Help: "Total number of mint attempts by outcome",
		},
		[]string{"status"},
	)

	MintDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nft_mint_duration_seconds",
			Help:    "Duration of a single mint call including confirmation wait",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(WebhooksReceivedTotal)
	prometheus.MustRegister(WebhooksRejectedTotal)
	prometheus.MustRegister(WebhooksDedupedTotal)
	prometheus.MustRegister(MintsTotal)
	prometheus.MustRegister(MintDuration)
}
