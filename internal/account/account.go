// Package account wraps the authenticated account endpoints: the user
// profile, password changes and the Stripe-backed subscription.
//
// Every call checks for a token first and fails with ErrNotAuthenticated
// without touching the network.
package account

import (
	"context"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/notify"
)

// ErrNotAuthenticated is returned when no token is stored.
var ErrNotAuthenticated = errors.New(errors.ErrCodeAuthRequired, "Authentication token is missing").
	WithSuggestion("Run 'accountctl auth login' to sign in")

// API is the subset of *api.Client the services use.
type API interface {
	Get(ctx context.Context, path string, out any, opts ...api.HeaderOption) error
	Post(ctx context.Context, path string, body, out any, opts ...api.HeaderOption) error
	Put(ctx context.Context, path string, body, out any, opts ...api.HeaderOption) error
}

// Deps are shared by Profiles and Subscriptions.
type Deps struct {
	API      API
	Tokens   api.TokenSource
	Notifier notify.Notifier
	Logger   *log.Logger
}

// ServiceError is a failed account call. Message is the server message or
// the operation's fallback text.
type ServiceError struct {
	Op      string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

type service struct {
	api      API
	tokens   api.TokenSource
	notifier notify.Notifier
	logger   *log.Logger
}

func newService(deps Deps, component string) service {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return service{
		api:      deps.API,
		tokens:   deps.Tokens,
		notifier: notifier,
		logger:   logger.WithComponent(component),
	}
}

func (s service) requireToken() error {
	if s.tokens == nil {
		return ErrNotAuthenticated
	}
	if _, ok := s.tokens.Token(); !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// fail logs and announces a failed call. The notification carries the
// server message when there is one, otherwise the i18n key is shown.
func (s service) fail(ctx context.Context, op, key, fallback string, err error) error {
	msg := api.MessageOr(err, "")
	s.notifier.Notify(ctx, notify.Error(key, msg))
	s.logger.WithError(err).InfoContext(ctx, "account operation failed", "operation", op)
	if msg == "" {
		msg = fallback
	}
	return &ServiceError{Op: op, Message: msg, Err: err}
}
