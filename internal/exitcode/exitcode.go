// Package exitcode maps command errors to the process exit status, so
// scripts can tell a rejected login from an unreachable server.
package exitcode

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// Code is a process exit status.
type Code int

const (
	Success       Code = 0
	GeneralError  Code = 1
	UsageError    Code = 2 // bad flags, arguments or form input
	RequestFailed Code = 3 // the server answered with an error
	Interrupted   Code = 4
	AuthError     Code = 5 // no session, or the token was refused
	NetworkError  Code = 6 // the server could not be reached
)

var descriptions = map[Code]string{
	Success:       "Success",
	GeneralError:  "General error",
	UsageError:    "Usage error (invalid flags, arguments or input)",
	RequestFailed: "Request rejected by the server",
	Interrupted:   "Interrupted",
	AuthError:     "Authentication error",
	NetworkError:  "Network error",
}

func (c Code) String() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "Unknown error"
}

// cobra reports usage problems as plain errors.
var usageMessages = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"required flag",
	"invalid argument",
	"accepts ",
}

// For returns the exit code for err. Typed errors decide first; untyped
// ones fall back to cobra's usage messages.
func For(err error) Code {
	switch {
	case err == nil:
		return Success
	case stderrors.Is(err, context.Canceled):
		return Interrupted
	case stderrors.Is(err, context.DeadlineExceeded):
		return NetworkError
	}

	var reqErr *api.RequestError
	if stderrors.As(err, &reqErr) {
		return forRequest(reqErr)
	}

	if code, ok := errors.CodeOf(err); ok {
		return forAccountCode(code)
	}

	msg := strings.ToLower(err.Error())
	for _, m := range usageMessages {
		if strings.Contains(msg, m) {
			return UsageError
		}
	}
	return GeneralError
}

func forRequest(reqErr *api.RequestError) Code {
	switch {
	case reqErr.IsTransport():
		return NetworkError
	case reqErr.StatusCode == http.StatusUnauthorized, reqErr.StatusCode == http.StatusForbidden:
		return AuthError
	default:
		return RequestFailed
	}
}

func forAccountCode(code errors.ErrorCode) Code {
	switch code {
	case errors.ErrCodeConfigUnknown:
		return UsageError
	case errors.ErrCodeAuthRequired, errors.ErrCodeAuthSessionExpired, errors.ErrCodeAuthMissingToken:
		return AuthError
	case errors.ErrCodeRequestTransport:
		return NetworkError
	}

	family, _, _ := strings.Cut(string(code), "-")
	switch family {
	case "VAL":
		return UsageError
	case "REQ":
		return RequestFailed
	default:
		return GeneralError
	}
}
