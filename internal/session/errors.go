package session

import (
	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// Sentinel errors
var (
	ErrOperationInFlight = errors.New(errors.ErrCodeAuthOperationPending, "another session operation is in progress")
	ErrDisposed          = errors.New(errors.ErrCodeAuthDisposed, "session controller has been disposed")
	ErrNoToken           = errors.New(errors.ErrCodeAuthMissingToken, MsgNoToken)
)

// Messages recorded in Session.Error
const (
	MsgSessionExpired = "Session expired. Please log in again."
	MsgNoToken        = "No token received from the server"
	MsgLoginFailed    = "Failed to login"
	MsgRegisterFailed = "Registration failed"
	MsgLogoutFailed   = "Logout failed"
	MsgForgotFailed   = "Failed to send password reset email"
	MsgResetFailed    = "Password reset failed"
	MsgProfileFailed  = "Failed to fetch user profile"
)

// OpError is returned by a failed session operation. Its message is the
// text recorded in Session.Error.
type OpError struct {
	Op      string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return e.Message
}

func (e *OpError) Unwrap() error {
	return e.Err
}
