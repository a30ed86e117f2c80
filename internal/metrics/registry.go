package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Job is the pushgateway job name.
const Job = "accountctl"

// NewRegistry creates a new Prometheus registry with metrics.
// accountctl is short-lived, so every process gets its own registry
// instead of the global default.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	return reg, m
}

// Push sends everything gathered by reg to a Prometheus pushgateway.
// instance groups the series, typically the hostname.
func Push(ctx context.Context, gatewayURL, instance string, reg prometheus.Gatherer) error {
	if gatewayURL == "" {
		return nil
	}
	pusher := push.New(gatewayURL, Job).Gatherer(reg)
	if instance != "" {
		pusher = pusher.Grouping("instance", instance)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
