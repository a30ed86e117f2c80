package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// HTTPChecker reports whether a server answers at all. Any response below
// 500 counts as healthy: the probe does not authenticate, so 401 and 404
// are expected.
type HTTPChecker struct {
	name   string
	url    string
	header http.Header
	client *http.Client
}

// NewHTTPChecker creates a checker that sends HEAD to url. A nil client
// uses http.DefaultClient; the manager's timeout still applies.
func NewHTTPChecker(name, url string, client *http.Client) *HTTPChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPChecker{name: name, url: url, header: http.Header{}, client: client}
}

// WithHeader adds a header to every probe.
func (c *HTTPChecker) WithHeader(key, value string) *HTTPChecker {
	c.header.Set(key, value)
	return c
}

// Name returns the checker name.
func (c *HTTPChecker) Name() string {
	return c.name
}

// Check sends the probe.
func (c *HTTPChecker) Check(ctx context.Context) *Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return Unhealthy("invalid URL").WithDetail("url", c.url).WithDetail("error", err.Error())
	}
	req.Header = c.header.Clone()

	start := time.Now()
	resp, err := c.client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return Unhealthy("not reachable").
			WithDetail("url", c.url).
			WithDetail("error", err.Error()).
			WithLatency(latency)
	}
	_ = resp.Body.Close()

	result := Healthy(fmt.Sprintf("reachable (HTTP %d)", resp.StatusCode))
	if resp.StatusCode >= 500 {
		result = Degraded(fmt.Sprintf("server error (HTTP %d)", resp.StatusCode))
	}
	return result.WithDetail("url", c.url).WithDetail("status_code", resp.StatusCode).WithLatency(latency)
}

// KeyValueStore is the storage the storage check writes through.
type KeyValueStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// probeKey is written and removed again by StorageChecker.
const probeKey = "doctor.probe"

// StorageChecker round-trips a value through the token storage.
type StorageChecker struct {
	store KeyValueStore
	where string
}

// NewStorageChecker creates a storage check. where is shown in details.
func NewStorageChecker(store KeyValueStore, where string) *StorageChecker {
	return &StorageChecker{store: store, where: where}
}

// Name returns the checker name.
func (c *StorageChecker) Name() string {
	return "storage"
}

// Check writes, reads back and deletes a probe value.
func (c *StorageChecker) Check(ctx context.Context) *Result {
	want := time.Now().UTC().Format(time.RFC3339Nano)
	if err := c.store.Set(probeKey, want); err != nil {
		return Unhealthy("not writable").WithDetail("path", c.where).WithDetail("error", err.Error())
	}
	defer func() { _ = c.store.Delete(probeKey) }()

	got, err := c.store.Get(probeKey)
	if err != nil {
		return Unhealthy("not readable").WithDetail("path", c.where).WithDetail("error", err.Error())
	}
	if got != want {
		return Unhealthy("read back a different value").WithDetail("path", c.where)
	}
	return Healthy("writable").WithDetail("path", c.where)
}

// ConfigChecker reports whether a config file is in use. Defaults are a
// degraded state because the API address is then localhost.
type ConfigChecker struct {
	path string
}

// NewConfigChecker creates a checker for the config file at path.
func NewConfigChecker(path string) *ConfigChecker {
	return &ConfigChecker{path: path}
}

// Name returns the checker name.
func (c *ConfigChecker) Name() string {
	return "config"
}

// Check stats the file. Parsing already happened when the command started.
func (c *ConfigChecker) Check(ctx context.Context) *Result {
	info, err := os.Stat(c.path)
	switch {
	case os.IsNotExist(err):
		return Degraded("no config file, using defaults and environment").WithDetail("path", c.path)
	case err != nil:
		return Unhealthy("cannot stat config file").WithDetail("path", c.path).WithDetail("error", err.Error())
	}

	result := Healthy("loaded").WithDetail("path", c.path)
	if info.Mode().Perm()&0o077 != 0 {
		result = Degraded("config file is readable by other users").
			WithDetail("path", c.path).
			WithDetail("mode", info.Mode().Perm().String())
	}
	return result
}

// CheckFunc adapts a function to Checker.
type CheckFunc struct {
	name string
	fn   func(context.Context) *Result
}

// NewCheckFunc creates a named checker from fn.
func NewCheckFunc(name string, fn func(context.Context) *Result) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

// Name returns the checker name.
func (c CheckFunc) Name() string {
	return c.name
}

// Check calls the function.
func (c CheckFunc) Check(ctx context.Context) *Result {
	return c.fn(ctx)
}
