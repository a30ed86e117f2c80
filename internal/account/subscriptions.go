package account

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/notify"
)

// Subscription endpoints
const (
	PathSubscription  = "/api/subscription"
	PathCheckout      = "/api/subscription/checkout"
	PathBillingPortal = "/api/subscription/billing-portal"
	PathStartTrial    = "/api/subscription/start-trial"
)

// Notification keys
const (
	KeyStatusError       = "subscription.status.error"
	KeyCheckoutError     = "subscription.checkoutError"
	KeyBillingPortalErr  = "subscription.billingPortalError"
	KeyTrialStartSuccess = "subscription.trialStartSuccess"
	KeyTrialStartError   = "subscription.trialStartError"
)

// Fallback messages
const (
	MsgStatusFailed   = "Failed to load subscription status"
	MsgCheckoutFailed = "Failed to create checkout session"
	MsgPortalFailed   = "Failed to open billing portal"
	MsgTrialFailed    = "Failed to start trial"
	MsgNoRedirectURL  = "No redirect URL received from the server"
)

// StartTrialResult is the start-trial response. It is not wrapped in a
// data envelope.
type StartTrialResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type checkoutRequest struct {
	Plan       domain.Plan `json:"plan"`
	SuccessURL string      `json:"success_url"`
	CancelURL  string      `json:"cancel_url"`
}

type portalRequest struct {
	ReturnURL string `json:"return_url,omitempty"`
}

type redirect struct {
	URL string `json:"url"`
}

// Subscriptions manages the Stripe subscription. Checkout and the billing
// portal return a URL the user must be sent to; completion is only seen
// when they land back on the success or cancel page.
type Subscriptions struct {
	service
}

// NewSubscriptions creates the subscription service.
func NewSubscriptions(deps Deps) *Subscriptions {
	return &Subscriptions{service: newService(deps, "subscriptions")}
}

// Status fetches the current subscription. It is never cached.
func (s *Subscriptions) Status(ctx context.Context) (*domain.SubscriptionStatus, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	var env api.Envelope[*domain.SubscriptionStatus]
	if err := s.api.Get(ctx, PathSubscription, &env); err != nil {
		return nil, s.fail(ctx, "subscription.status", KeyStatusError, MsgStatusFailed, err)
	}
	if env.Data == nil {
		return &domain.SubscriptionStatus{Status: domain.StatusInactive}, nil
	}
	return env.Data, nil
}

// Checkout creates a Checkout session for plan and returns its URL.
func (s *Subscriptions) Checkout(ctx context.Context, plan domain.Plan, successURL, cancelURL string) (string, error) {
	if err := plan.Validate(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPlan, "invalid plan", err).
			WithSuggestion("Use --plan monthly or --plan yearly")
	}
	if err := s.requireToken(); err != nil {
		return "", err
	}

	body := checkoutRequest{Plan: plan, SuccessURL: successURL, CancelURL: cancelURL}
	return s.redirect(ctx, "subscription.checkout", PathCheckout, body, KeyCheckoutError, MsgCheckoutFailed)
}

// BillingPortal creates a billing portal session and returns its URL.
// An empty returnURL is left out of the request.
func (s *Subscriptions) BillingPortal(ctx context.Context, returnURL string) (string, error) {
	if err := s.requireToken(); err != nil {
		return "", err
	}
	return s.redirect(ctx, "subscription.portal", PathBillingPortal, portalRequest{ReturnURL: returnURL}, KeyBillingPortalErr, MsgPortalFailed)
}

// StartTrial starts a free trial. A response with success false is an
// error carrying the server message.
func (s *Subscriptions) StartTrial(ctx context.Context) (*StartTrialResult, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}

	var res StartTrialResult
	if err := s.api.Post(ctx, PathStartTrial, struct{}{}, &res); err != nil {
		return nil, s.fail(ctx, "subscription.trial", KeyTrialStartError, MsgTrialFailed, err)
	}
	if !res.Success {
		msg := res.Message
		s.notifier.Notify(ctx, notify.Error(KeyTrialStartError, msg))
		if msg == "" {
			msg = MsgTrialFailed
		}
		return nil, &ServiceError{Op: "subscription.trial", Message: msg, Err: errors.New(errors.ErrCodeRequestFailed, msg)}
	}

	s.notifier.Notify(ctx, notify.Success(KeyTrialStartSuccess))
	return &res, nil
}

func (s *Subscriptions) redirect(ctx context.Context, op, path string, body any, key, fallback string) (string, error) {
	var env api.Envelope[redirect]
	if err := s.api.Post(ctx, path, body, &env); err != nil {
		return "", s.fail(ctx, op, key, fallback, err)
	}
	if env.Data.URL == "" {
		return "", s.fail(ctx, op, key, MsgNoRedirectURL, errors.New(errors.ErrCodeRequestDecode, MsgNoRedirectURL))
	}
	s.logger.DebugContext(ctx, "redirect received", "operation", op)
	return env.Data.URL, nil
}
