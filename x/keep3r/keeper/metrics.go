package keeper

import (
	"sync"

	"cosmossdk.io/math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Keep3rMetrics holds all Prometheus metrics for the keep3r module
type Keep3rMetrics struct {
	// Payment metrics
	Payments     *prometheus.CounterVec
	PaidAmount   *prometheus.CounterVec
	PaidGas      prometheus.Histogram
	Settlements  prometheus.Counter
	ForcedCredit prometheus.Counter

	// Oracle metrics
	TickObservations *prometheus.CounterVec
	OracleFailures   *prometheus.CounterVec

	// Bonding metrics
	BondingEvents *prometheus.CounterVec
	ActiveKeepers prometheus.Gauge
	ActiveJobs    prometheus.Gauge

	// Dispute metrics
	Slashes            *prometheus.CounterVec
	SwallowedTransfers *prometheus.CounterVec
	Migrations         prometheus.Counter
}

var (
	keep3rMetricsOnce sync.Once
	keep3rMetrics     *Keep3rMetrics
)

// NewKeep3rMetrics creates and registers keep3r metrics (singleton pattern)
func NewKeep3rMetrics() *Keep3rMetrics {
	keep3rMetricsOnce.Do(func() {
		keep3rMetrics = &Keep3rMetrics{
			Payments: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "work",
					Name:      "payments_total",
					Help:      "Total keeper payments by kind",
				},
				[]string{"kind"},
			),
			PaidAmount: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "work",
					Name:      "paid_amount_total",
					Help:      "Total amount paid to keepers by denom",
				},
				[]string{"denom"},
			),
			PaidGas: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "keep3r",
					Subsystem: "work",
					Name:      "gas_used",
					Help:      "Gas charged per worked call",
					Buckets:   prometheus.ExponentialBuckets(10_000, 2, 10),
				},
			),
			Settlements: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "credits",
					Name:      "settlements_total",
					Help:      "Total job accountance settlements",
				},
			),
			ForcedCredit: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "credits",
					Name:      "forced_total",
					Help:      "Total governance forced credit grants",
				},
			),
			TickObservations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "twap",
					Name:      "observations_total",
					Help:      "Tick cache observations by staleness",
				},
				[]string{"staleness"},
			),
			OracleFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "twap",
					Name:      "oracle_failures_total",
					Help:      "Failed pool oracle observations",
				},
				[]string{"pool"},
			),
			BondingEvents: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "bonding",
					Name:      "events_total",
					Help:      "Bonding lifecycle transitions by action",
				},
				[]string{"action"},
			),
			ActiveKeepers: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "keep3r",
					Subsystem: "bonding",
					Name:      "active_keepers",
					Help:      "Number of activated keepers",
				},
			),
			ActiveJobs: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "keep3r",
					Subsystem: "jobs",
					Name:      "active_jobs",
					Help:      "Number of registered jobs",
				},
			),
			Slashes: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "disputes",
					Name:      "slashes_total",
					Help:      "Total slashes by target kind",
				},
				[]string{"target"},
			),
			SwallowedTransfers: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "disputes",
					Name:      "swallowed_transfers_total",
					Help:      "Best-effort transfers that failed and were ignored",
				},
				[]string{"denom"},
			),
			Migrations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "keep3r",
					Subsystem: "jobs",
					Name:      "migrations_total",
					Help:      "Total accepted job migrations",
				},
			),
		}
	})
	return keep3rMetrics
}

func intToFloat(i math.Int) float64 {
	f, err := i.ToLegacyDec().Float64()
	if err != nil {
		return 0
	}
	return f
}
