package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RoundsPlayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsPlayed,
			Help: HelpTextRoundsPlayed,
		},
		[]string{LabelGame, LabelOutcome},
	)

	RoundsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsRejected,
			Help: HelpTextRoundsRejected,
		},
		[]string{LabelReason},
	)

	PayoutCentavos = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutCentavos,
			Help: HelpTextPayoutCentavos,
		},
	)

	WagerCentavos = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWagerCentavos,
			Help: HelpTextWagerCentavos,
		},
	)

	SettlementFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettlementFailures,
			Help: HelpTextSettlementFailures,
		},
	)

	Deposits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDeposits,
			Help: HelpTextDeposits,
		},
		[]string{LabelStatus},
	)

	Withdrawals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawals,
			Help: HelpTextWithdrawals,
		},
	)

	OverridesFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOverridesFired,
			Help: HelpTextOverridesFired,
		},
	)
)
