package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for upstream request metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTP      = "http_error"
	OutcomeFormat    = "format_error"
	OutcomeTransport = "transport_error"
)

var (
	// UpstreamRequestsTotal counts upstream data API requests by provider and outcome.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Number of upstream data API requests by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// VerificationAttemptsTotal counts token verification attempts by result.
	VerificationAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_attempts_total",
			Help: "Number of token verification attempts by terminal result.",
		},
		[]string{"result"},
	)
)

// MustRegisterMetrics registers all application collectors with the default
// Prometheus registry. It panics on duplicate registration.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		VerificationAttemptsTotal,
	)
}
