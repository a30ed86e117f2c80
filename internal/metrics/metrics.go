package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for accountctl
type Metrics struct {
	// Command execution metrics
	CommandExecutions *prometheus.CounterVec
	CommandDuration   *prometheus.HistogramVec
	CommandErrors     *prometheus.CounterVec

	// API request metrics
	APIRequests        *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	APITransportErrors *prometheus.CounterVec

	// Session metrics
	AuthOperations *prometheus.CounterVec
	SessionExpired prometheus.Counter

	// Error metrics (by error code from structured errors)
	Errors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		CommandExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_command_executions_total",
				Help: "Total number of command executions",
			},
			[]string{"command", "success"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "accountctl_command_duration_seconds",
				Help:    "Command execution duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		CommandErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_command_errors_total",
				Help: "Total number of command errors",
			},
			[]string{"command", "error_code"},
		),

		APIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_api_requests_total",
				Help: "Total number of account API requests by response status",
			},
			[]string{"method", "path", "status"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "accountctl_api_request_duration_seconds",
				Help:    "Account API request latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path"},
		),
		APITransportErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_api_transport_errors_total",
				Help: "Requests that never produced an HTTP response",
			},
			[]string{"method", "path"},
		),

		AuthOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_auth_operations_total",
				Help: "Auth session operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		SessionExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "accountctl_session_expired_total",
				Help: "Number of 401 responses that signalled an expired session",
			},
		),

		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountctl_errors_total",
				Help: "Total number of errors by error code",
			},
			[]string{"error_code"},
		),
	}
}

// ObserveRequest records one API round trip. A zero status means the
// request failed before a response arrived.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.APIRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	if status == 0 {
		m.APITransportErrors.WithLabelValues(method, path).Inc()
		return
	}
	m.APIRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// RecordSessionExpired counts a stored token rejected by the server.
func (m *Metrics) RecordSessionExpired() {
	if m == nil {
		return
	}
	m.SessionExpired.Inc()
}

// RecordAuth counts a session operation. Outcome is "success", "failure"
// or "rejected" for calls refused before they started.
func (m *Metrics) RecordAuth(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordCommand records a finished command. errorCode is empty on success.
func (m *Metrics) RecordCommand(command string, elapsed time.Duration, errorCode string) {
	if m == nil {
		return
	}
	success := errorCode == ""
	m.CommandExecutions.WithLabelValues(command, strconv.FormatBool(success)).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
	if !success {
		m.CommandErrors.WithLabelValues(command, errorCode).Inc()
		m.Errors.WithLabelValues(errorCode).Inc()
	}
}
