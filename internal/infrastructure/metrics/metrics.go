package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for gateway calls.
const (
	OutcomeSuccess        = "success"
	OutcomeAPIError       = "api_error"
	OutcomeTransportError = "transport_error"
	OutcomeFormatError    = "format_error"
	OutcomeCircuitOpen    = "circuit_open"
	OutcomeOther          = "other"
)

var (
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spayway",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "S-PayWay API calls by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "spayway",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "S-PayWay API call latency by action and outcome",
			// gateway calls are bounded by the client timeout (30s default)
			Buckets: []float64{
				0.05, 0.1, 0.2, 0.3, 0.5, 0.8, 1.2,
				2, 3, 5, 8, 13, 20, 30,
			},
		},
		[]string{"action", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(GatewayRequestsTotal, GatewayRequestDuration)
}

func ObserveGatewayCall(action, outcome string, seconds float64) {
	GatewayRequestsTotal.WithLabelValues(action, outcome).Inc()
	GatewayRequestDuration.WithLabelValues(action, outcome).Observe(seconds)
}
