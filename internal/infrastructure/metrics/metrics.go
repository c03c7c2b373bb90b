package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Wallet metrics
	WalletOperations *prometheus.CounterVec
	WalletFailures   *prometheus.CounterVec
	OperationAmount  *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide metrics set. Registration with the global
// registry happens once, no matter how many callers ask.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New()
	})

	return defaultMetrics
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		WalletOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_operations_total",
				Help: "Total wallet operations by type and outcome",
			},
			[]string{"operation", "outcome"},
		),
		WalletFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_failures_total",
				Help: "Total wallet business failures by reason",
			},
			[]string{"reason"},
		),
		OperationAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_operation_amount",
				Help:    "Operation amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"operation"},
		),
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
	}
}
