package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixgeelhaar/accountctl/internal/tokenstore"
)

// mockChecker is a test double for health checks
type mockChecker struct {
	name   string
	result *Result
	delay  time.Duration
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(ctx context.Context) *Result {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Unhealthy("check cancelled").WithDetail("error", ctx.Err().Error())
		}
	}
	return m.result
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("Status.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	result := Healthy("ok")
	if returned := result.WithDetail("foo", "bar"); returned != result {
		t.Error("WithDetail should return same result for chaining")
	}
	if result.Details["foo"] != "bar" {
		t.Errorf("Details[foo] = %v, want bar", result.Details["foo"])
	}
}

func TestManager_OrderAndNames(t *testing.T) {
	m := NewManager()
	m.AddChecker(&mockChecker{name: "slow", result: Healthy("ok"), delay: 20 * time.Millisecond})
	m.AddChecker(&mockChecker{name: "fast", result: Degraded("meh")})

	results := m.Check(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "slow" || results[1].Name != "fast" {
		t.Errorf("results not in registration order: %s, %s", results[0].Name, results[1].Name)
	}
	if results[0].Latency <= 0 {
		t.Error("latency should be recorded")
	}
}

func TestManager_Timeout(t *testing.T) {
	m := NewManager().WithTimeout(10 * time.Millisecond)
	m.AddChecker(&mockChecker{name: "hang", result: Healthy("ok"), delay: time.Second})

	results := m.Check(context.Background())
	if results[0].Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy after timeout", results[0].Status)
	}
}

func TestManager_NilResult(t *testing.T) {
	m := NewManager()
	m.AddChecker(NewCheckFunc("broken", func(context.Context) *Result { return nil }))

	results := m.Check(context.Background())
	if results[0].Status != StatusUnhealthy || results[0].Name != "broken" {
		t.Errorf("got %+v, want unhealthy broken", results[0])
	}
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []*Result
			for _, s := range tt.statuses {
				results = append(results, NewResult(s, ""))
			}
			if got := OverallStatus(results); got != tt.want {
				t.Errorf("OverallStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPChecker(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPChecker("api", srv.URL, srv.Client()).WithHeader("X-API-KEY", "k")
	if r := c.Check(context.Background()); r.Status != StatusHealthy {
		t.Errorf("404 should count as reachable, got %v: %s", r.Status, r.Message)
	}
	if gotKey != "k" {
		t.Errorf("X-API-KEY = %q, want k", gotKey)
	}

	broken := NewHTTPChecker("api", srv.URL+"/broken", srv.Client())
	if r := broken.Check(context.Background()); r.Status != StatusDegraded {
		t.Errorf("502 should be degraded, got %v", r.Status)
	}

	srv.Close()
	if r := c.Check(context.Background()); r.Status != StatusUnhealthy {
		t.Errorf("closed server should be unhealthy, got %v", r.Status)
	}
}

type failingStore struct{}

func (failingStore) Get(string) (string, error) { return "", errors.New("boom") }
func (failingStore) Set(string, string) error   { return errors.New("read-only file system") }
func (failingStore) Delete(string) error        { return nil }

func TestStorageChecker(t *testing.T) {
	mem := tokenstore.NewMemoryBackend()
	r := NewStorageChecker(mem, "memory").Check(context.Background())
	if r.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy: %s", r.Status, r.Message)
	}
	if _, ok := mem.Raw(probeKey); ok {
		t.Error("probe value should be removed")
	}

	r = NewStorageChecker(failingStore{}, "ro").Check(context.Background())
	if r.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", r.Status)
	}
}

func TestConfigChecker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if r := NewConfigChecker(path).Check(context.Background()); r.Status != StatusDegraded {
		t.Errorf("missing file: Status = %v, want degraded", r.Status)
	}

	if err := os.WriteFile(path, []byte("api:\n  url: https://api.example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if r := NewConfigChecker(path).Check(context.Background()); r.Status != StatusHealthy {
		t.Errorf("private file: Status = %v, want healthy", r.Status)
	}

	if err := os.Chmod(path, 0o644); err != nil {
		t.Fatal(err)
	}
	if r := NewConfigChecker(path).Check(context.Background()); r.Status != StatusDegraded {
		t.Errorf("world-readable file: Status = %v, want degraded", r.Status)
	}
}

func TestStatusWorse(t *testing.T) {
	if got := StatusHealthy.Worse(StatusDegraded); got != StatusDegraded {
		t.Errorf("healthy.Worse(degraded) = %s", got)
	}
	if got := StatusUnhealthy.Worse(StatusDegraded); got != StatusUnhealthy {
		t.Errorf("unhealthy.Worse(degraded) = %s", got)
	}
	if got := StatusDegraded.Worse(StatusHealthy); got != StatusDegraded {
		t.Errorf("degraded.Worse(healthy) = %s", got)
	}
}

func TestOverallStatusConstructors(t *testing.T) {
	if got := OverallStatus(nil); got != StatusHealthy {
		t.Errorf("no results should be healthy, got %s", got)
	}
	results := []*Result{Healthy("ok"), Degraded("no session"), Healthy("ok")}
	if got := OverallStatus(results); got != StatusDegraded {
		t.Errorf("expected degraded, got %s", got)
	}
	results = append(results, Unhealthy("api down"))
	if got := OverallStatus(results); got != StatusUnhealthy {
		t.Errorf("expected unhealthy, got %s", got)
	}
}
