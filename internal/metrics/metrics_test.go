package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	if m == nil {
		t.Fatal("expected metrics, got nil")
	}

	tests := []struct {
		name   string
		metric interface{}
	}{
		{"CommandExecutions", m.CommandExecutions},
		{"CommandDuration", m.CommandDuration},
		{"CommandErrors", m.CommandErrors},
		{"APIRequests", m.APIRequests},
		{"APIRequestDuration", m.APIRequestDuration},
		{"APITransportErrors", m.APITransportErrors},
		{"AuthOperations", m.AuthOperations},
		{"SessionExpired", m.SessionExpired},
		{"Errors", m.Errors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveRequest("POST", "/api/auth/login", 200, 120*time.Millisecond)
	m.ObserveRequest("GET", "/api/user/profile", 401, 30*time.Millisecond)
	m.ObserveRequest("GET", "/api/subscription", 0, time.Second)

	if got := testutil.ToFloat64(m.APIRequests.WithLabelValues("POST", "/api/auth/login", "200")); got != 1 {
		t.Errorf("APIRequests login/200 = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SessionExpired); got != 0 {
		t.Errorf("a bare 401 should not count as an expired session, got %v", got)
	}
	m.RecordSessionExpired()
	if got := testutil.ToFloat64(m.SessionExpired); got != 1 {
		t.Errorf("SessionExpired = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.APITransportErrors.WithLabelValues("GET", "/api/subscription")); got != 1 {
		t.Errorf("APITransportErrors = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.APIRequestDuration); got != 3 {
		t.Errorf("APIRequestDuration series = %v, want 3", got)
	}
}

func TestRecordAuthAndCommand(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordAuth("login", "success")
	m.RecordAuth("login", "failure")
	m.RecordCommand("auth login", 2*time.Second, "")
	m.RecordCommand("profile show", time.Second, "AUTH-001")

	if got := testutil.ToFloat64(m.AuthOperations.WithLabelValues("login", "failure")); got != 1 {
		t.Errorf("AuthOperations login/failure = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CommandExecutions.WithLabelValues("auth login", "true")); got != 1 {
		t.Errorf("CommandExecutions success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CommandErrors.WithLabelValues("profile show", "AUTH-001")); got != 1 {
		t.Errorf("CommandErrors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Errors.WithLabelValues("AUTH-001")); got != 1 {
		t.Errorf("Errors = %v, want 1", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.RecordAuth("logout", "success")
	m.RecordCommand("home", time.Millisecond, "")
}

func TestMetricsExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.RecordAuth("logout", "success")

	expected := `
# HELP accountctl_auth_operations_total Auth session operations by outcome
# TYPE accountctl_auth_operations_total counter
accountctl_auth_operations_total{operation="logout",outcome="success"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "accountctl_auth_operations_total"); err != nil {
		t.Errorf("unexpected metrics output: %v", err)
	}
}
