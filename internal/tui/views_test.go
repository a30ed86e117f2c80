package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
)

func newTestRenderer() *Renderer {
	return NewRenderer(i18n.New(i18n.English), theme.New(theme.Light, true))
}

func TestHome(t *testing.T) {
	out := newTestRenderer().Home()

	for _, want := range []string{
		"Simplify your business with our SaaS solution",
		"Powerful Analytics",
		"Automation Tools",
		"14M+",
		"Sarah Johnson",
		"Emma Rodriguez",
		"Ready to transform your business with AI?",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPricing(t *testing.T) {
	r := newTestRenderer()

	monthly := r.Pricing(false)
	assert.Contains(t, monthly, "$29")
	assert.Contains(t, monthly, "$79")
	assert.Contains(t, monthly, "$199")
	assert.NotContains(t, monthly, "billed annually")
	assert.Contains(t, monthly, "Most Popular")
	assert.Contains(t, monthly, "Up to 20 team members")
	assert.Contains(t, monthly, "What payment methods do you accept?")
	assert.Contains(t, monthly, "Company F")

	annual := r.Pricing(true)
	assert.Contains(t, annual, "$23")
	assert.Contains(t, annual, "$63")
	assert.Contains(t, annual, "$159")
	assert.Contains(t, annual, "billed annually")
}

func TestSubscriptionStatus(t *testing.T) {
	r := newTestRenderer()

	assert.Contains(t, r.SubscriptionStatus(nil), "No active subscription")
	assert.Contains(t, r.SubscriptionStatus(&domain.SubscriptionStatus{Status: domain.StatusInactive}), "No active subscription")

	out := r.SubscriptionStatus(&domain.SubscriptionStatus{
		Status:            domain.StatusActive,
		PlanName:          "Pro",
		PlanInterval:      domain.IntervalYear,
		CurrentPeriodEnd:  "2026-12-01T00:00:00Z",
		CancelAtPeriodEnd: true,
	})
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "Pro (Yearly)")
	assert.Contains(t, out, "Expires on")
	assert.Contains(t, out, "2026-12-01")
	assert.Contains(t, out, "Will cancel at period end")

	renewing := r.SubscriptionStatus(&domain.SubscriptionStatus{
		Status:           domain.StatusTrial,
		CurrentPeriodEnd: "2026-12-01T00:00:00Z",
		TrialEnd:         "2026-11-15T00:00:00Z",
	})
	assert.Contains(t, renewing, "Renews on")
	assert.Contains(t, renewing, "Trial ends on")
	assert.Contains(t, renewing, "2026-11-15")
}

func TestSubscriptionManagement(t *testing.T) {
	r := newTestRenderer()

	none := r.SubscriptionManagement(nil)
	assert.Contains(t, none, "checkout --plan monthly")
	assert.Contains(t, none, "subscription trial")
	assert.NotContains(t, none, "subscription portal")

	active := r.SubscriptionManagement(&domain.SubscriptionStatus{Status: domain.StatusActive})
	assert.Contains(t, active, "subscription portal")
	assert.Contains(t, active, "Download invoices and billing history")
}

func TestPremium(t *testing.T) {
	r := newTestRenderer()

	locked := r.Premium(&domain.SubscriptionStatus{Status: domain.StatusPastDue})
	assert.Contains(t, locked, "Access Denied")
	assert.NotContains(t, locked, "87%")

	trial := r.Premium(&domain.SubscriptionStatus{Status: domain.StatusTrial})
	assert.Contains(t, trial, "Trial Plan")
	assert.Contains(t, trial, "87%")
	assert.Contains(t, trial, "12.3k")
	assert.Contains(t, trial, "Priority Support")

	active := r.Premium(&domain.SubscriptionStatus{Status: domain.StatusActive})
	assert.Contains(t, active, "Active")
	assert.NotContains(t, active, "Access Denied")
}

func TestCheckoutResult(t *testing.T) {
	r := newTestRenderer()
	assert.Contains(t, r.CheckoutResult(true), "Subscription Successful!")
	assert.Contains(t, r.CheckoutResult(false), "Subscription Cancelled")
}

func TestProfileAndPreferences(t *testing.T) {
	r := newTestRenderer()

	out := r.Profile(&domain.UserRecord{ID: "7", Name: "Jane", Email: "jane@example.com", CreatedAt: "2024-03-05T10:00:00Z"})
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "2024-03-05")

	assert.Contains(t, r.Preferences(theme.Light, i18n.Polish), "Light mode")
	assert.Contains(t, r.Preferences(theme.Light, i18n.Polish), "Polish")
}

func TestTokenExpiry(t *testing.T) {
	r := newTestRenderer()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Contains(t, r.TokenExpiry(now.Add(time.Hour), now), "Token expires")
	assert.Contains(t, r.TokenExpiry(now.Add(-time.Hour), now), "Token expired")
}
