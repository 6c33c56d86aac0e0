package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRoundsPlayed       = "rounds_played_total"
	MetricNameRoundsRejected     = "rounds_rejected_total"
	MetricNamePayoutCentavos     = "round_payout_centavos_total"
	MetricNameWagerCentavos      = "round_wager_centavos_total"
	MetricNameSettlementFailures = "settlement_failures_total"
	MetricNameDeposits           = "deposits_total"
	MetricNameWithdrawals        = "withdrawals_total"
	MetricNameOverridesFired     = "overrides_fired_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextRoundsPlayed       = "Total number of settled rounds"
	HelpTextRoundsRejected     = "Total number of rounds rejected before settlement"
	HelpTextPayoutCentavos     = "Total prize value credited, in centavos"
	HelpTextWagerCentavos      = "Total round prices debited, in centavos"
	HelpTextSettlementFailures = "Total settlement transactions that failed to commit"
	HelpTextDeposits           = "Total external deposit credits processed"
	HelpTextWithdrawals        = "Total withdrawal debits processed"
	HelpTextOverridesFired     = "Total rigged outcomes consumed"
)

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelGame    = "game"
	LabelReason  = "reason"
)

// HTTPLatencyBuckets covers the expected latency range of round settlement
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
