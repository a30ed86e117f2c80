package ux

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// ErrorWithSuggestion attaches a recovery hint to an error for display.
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
}

func (e *ErrorWithSuggestion) Unwrap() error { return e.Err }

// NewErrorWithSuggestion returns nil for a nil err.
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{Err: err, Suggestion: suggestion}
}

type hint struct {
	match      func(err error, reqErr *api.RequestError) bool
	suggestion string
}

func status(code int) func(error, *api.RequestError) bool {
	return func(_ error, r *api.RequestError) bool { return r != nil && r.StatusCode == code }
}

func contains(s string) func(error, *api.RequestError) bool {
	return func(err error, r *api.RequestError) bool { return r == nil && strings.Contains(err.Error(), s) }
}

// hints are tried in order; the first match wins.
var hints = []hint{
	{
		match:      func(_ error, r *api.RequestError) bool { return r != nil && r.IsTransport() },
		suggestion: "Check your network connection and the API address: accountctl config get api.url",
	},
	{status(http.StatusUnauthorized), "Your session is no longer valid. Run 'accountctl auth login' to sign in again"},
	{status(http.StatusForbidden), "Check that ACCOUNTCTL_API_KEY matches the key issued for this client"},
	{status(http.StatusTooManyRequests), "Too many requests. Wait a minute and try again"},
	{
		match:      func(_ error, r *api.RequestError) bool { return r != nil && r.StatusCode >= 500 },
		suggestion: "The server had a problem. Try again later and include the request id when reporting it",
	},
	{contains("permission denied"), "Check the permissions of the accountctl home directory (see 'accountctl config path')"},
	{contains("could not open a browser"), "Copy the printed URL into your browser"},
}

// EnhanceError adds a recovery suggestion for the failures users hit most.
// AccountErrors that already carry suggestions are returned unchanged, as
// is anything no hint matches.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	var accErr *errors.AccountError
	if stderrors.As(err, &accErr) && len(accErr.Suggestions) > 0 {
		return err
	}

	var reqErr *api.RequestError
	_ = stderrors.As(err, &reqErr)
	for _, h := range hints {
		if h.match(err, reqErr) {
			return NewErrorWithSuggestion(err, h.suggestion)
		}
	}
	return err
}
