// Package health runs the diagnostics behind `accountctl doctor`: whether
// the API answers, the home directory is writable, the configuration
// parses and the stored session is still accepted.
package health

import (
	"context"
	"time"
)

// Checker is one doctor probe. Name is short and lowercase ("api",
// "storage"); Check must return once ctx is done.
type Checker interface {
	Name() string
	Check(ctx context.Context) *Result
}

type Status string

// Degraded means accountctl still works in a reduced way, for example on
// default configuration or without a session. Unhealthy means the commands
// depending on the component will fail.
const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

var severity = map[Status]int{
	StatusHealthy:   0,
	StatusDegraded:  1,
	StatusUnhealthy: 2,
}

func (s Status) String() string { return string(s) }

// Worse returns whichever of s and other is more severe.
func (s Status) Worse(other Status) Status {
	if severity[other] > severity[s] {
		return other
	}
	return s
}

// Result is what one Checker reports. The Manager fills in Name, and
// Latency when the checker left it zero.
type Result struct {
	Name    string         `json:"name" yaml:"name"`
	Status  Status         `json:"status" yaml:"status"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	Latency time.Duration  `json:"latency_ns" yaml:"latency_ns"`
}

func NewResult(status Status, message string) *Result {
	return &Result{Status: status, Message: message, Details: map[string]any{}}
}

func Healthy(message string) *Result { return NewResult(StatusHealthy, message) }
func Degraded(message string) *Result { return NewResult(StatusDegraded, message) }
func Unhealthy(message string) *Result { return NewResult(StatusUnhealthy, message) }

// WithDetail records key for the structured doctor output.
func (r *Result) WithDetail(key string, value any) *Result {
	if r.Details == nil {
		r.Details = map[string]any{}
	}
	r.Details[key] = value
	return r
}

func (r *Result) WithLatency(d time.Duration) *Result {
	r.Latency = d
	return r
}

// OverallStatus is the worst status among results; no results is healthy.
func OverallStatus(results []*Result) Status {
	overall := StatusHealthy
	for _, r := range results {
		overall = overall.Worse(r.Status)
	}
	return overall
}
