package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts sponsorship decisions by outcome and denial reason
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arka_sponsorship_decisions_total",
			Help: "Total number of sponsorship decisions",
		},
		[]string{"outcome", "reason"},
	)

	// DecisionDuration tracks decision latency
	DecisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arka_sponsorship_decision_duration_seconds",
			Help:    "Sponsorship decision duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"outcome"},
	)

	// LedgerReservations counts limit ledger reservations by result
	LedgerReservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arka_ledger_reservations_total",
			Help: "Total number of limit ledger reservations",
		},
		[]string{"result"},
	)

	// PriceLookups counts price cache lookups by status
	PriceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arka_price_lookups_total",
			Help: "Total number of token price lookups",
		},
		[]string{"status"},
	)

	// PriceRefreshes counts price cache refresh runs by result
	PriceRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arka_price_refreshes_total",
			Help: "Total number of price cache refresh runs",
		},
		[]string{"result"},
	)

	// CachedPrices tracks the number of token prices held in the cache
	CachedPrices = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "arka_cached_prices",
			Help: "Number of token prices currently cached",
		},
	)

	// ErrorsTotal counts errors by component
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arka_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
