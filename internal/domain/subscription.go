package domain

import "time"

// Status is the lifecycle state of a subscription.
type Status string

// Subscription states reported by the backend
const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCancelled Status = "cancelled"
	StatusPastDue   Status = "past_due"
	StatusTrial     Status = "trial"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusCancelled, StatusPastDue, StatusTrial:
		return true
	}
	return false
}

// SubscriptionStatus is a read-only projection of the user's subscription.
// It is fetched fresh for every view and never cached.
type SubscriptionStatus struct {
	ID                 string   `json:"id,omitempty" yaml:"id,omitempty"`
	Status             Status   `json:"status" yaml:"status"`
	PlanName           string   `json:"plan_name,omitempty" yaml:"plan_name,omitempty"`
	PlanInterval       Interval `json:"plan_interval,omitempty" yaml:"plan_interval,omitempty"`
	CurrentPeriodStart string   `json:"current_period_start,omitempty" yaml:"current_period_start,omitempty"`
	CurrentPeriodEnd   string   `json:"current_period_end,omitempty" yaml:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool     `json:"cancel_at_period_end,omitempty" yaml:"cancel_at_period_end,omitempty"`
	TrialEnd           string   `json:"trial_end,omitempty" yaml:"trial_end,omitempty"`
}

// HasPremium reports whether premium features are unlocked.
func (s *SubscriptionStatus) HasPremium() bool {
	if s == nil {
		return false
	}
	return s.Status == StatusActive || s.Status == StatusTrial
}

// HasSubscription is false for a missing or inactive subscription.
func (s *SubscriptionStatus) HasSubscription() bool {
	return s != nil && s.Status != "" && s.Status != StatusInactive
}

// PeriodEnd parses CurrentPeriodEnd.
func (s *SubscriptionStatus) PeriodEnd() time.Time {
	if s == nil {
		return time.Time{}
	}
	return parseTimestamp(s.CurrentPeriodEnd)
}

// TrialEndsAt returns the trial end, only meaningful while in trial.
func (s *SubscriptionStatus) TrialEndsAt() (time.Time, bool) {
	if s == nil || s.Status != StatusTrial || s.TrialEnd == "" {
		return time.Time{}, false
	}
	t := parseTimestamp(s.TrialEnd)
	return t, !t.IsZero()
}
