// Package session holds the authentication state machine: who is logged
// in, whether the stored token has been validated, and the last error.
// All state changes go through a Controller so that the token store and
// the in-memory session never disagree.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/metrics"
	"github.com/felixgeelhaar/accountctl/internal/notify"
)

// API endpoints
const (
	PathLogin          = "/api/auth/login"
	PathRegister       = "/api/auth/register"
	PathLogout         = "/api/auth/logout"
	PathForgotPassword = "/api/auth/forgot-password"
	PathResetPassword  = "/api/auth/reset-password"
	PathProfile        = "/api/user/profile"
)

// Notification keys
const (
	KeyLoginSuccess          = "toasts.loginSuccess"
	KeyRegisterSuccess       = "toasts.registerSuccess"
	KeyLogoutSuccess         = "toasts.logoutSuccess"
	KeyForgotPasswordSuccess = "auth.forgotPasswordSuccess"
	KeyResetPasswordSuccess  = "toasts.resetPasswordSuccess"
)

// API is the subset of *api.Client the controller uses.
type API interface {
	Get(ctx context.Context, path string, out any, opts ...api.HeaderOption) error
	Post(ctx context.Context, path string, body, out any, opts ...api.HeaderOption) error
}

// Store is the subset of *tokenstore.Store the controller uses.
type Store interface {
	Token() (string, bool)
	SetToken(token string)
	User() (*domain.UserRecord, bool)
	SetUser(user domain.UserRecord)
	Clear()
}

// Deps are the controller collaborators. API and Store are required.
type Deps struct {
	API      API
	Store    Store
	Notifier notify.Notifier
	Logger   *log.Logger
	Metrics  *metrics.Metrics
}

// Controller owns the session.
type Controller struct {
	api      API
	store    Store
	notifier notify.Notifier
	logger   *log.Logger
	metrics  *metrics.Metrics

	mu       sync.Mutex
	state    Session
	busy     bool
	disposed bool
	subs     map[int]func(Session)
	nextSub  int
}

// New creates a controller and restores the persisted token and user.
// A restored token leaves the session Validating until Init runs.
func New(deps Deps) *Controller {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}

	c := &Controller{
		api:      deps.API,
		store:    deps.Store,
		notifier: notifier,
		logger:   logger.WithComponent("session"),
		metrics:  deps.Metrics,
		subs:     make(map[int]func(Session)),
	}

	c.state = anonymous("")
	if token, ok := c.store.Token(); ok {
		c.state = Session{Token: token, State: Validating}
		if user, ok := c.store.User(); ok {
			c.state.User = user
		}
	}
	return c
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.State
}

// Subscribe registers fn to receive every state transition. The returned
// function removes the subscription.
func (c *Controller) Subscribe(fn func(Session)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Dispose drops all subscribers. Later operations return ErrDisposed.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.subs = make(map[int]func(Session))
}

// Init validates a restored token by fetching the profile. Without a token
// the session becomes Anonymous and no request is made.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.begin("init"); err != nil {
		return err
	}
	defer c.end()

	token, ok := c.store.Token()
	if !ok {
		c.update(func(s *Session) { *s = anonymous("") })
		return nil
	}

	c.update(func(s *Session) {
		s.Token = token
		s.State = Validating
		s.IsAuthenticated = false
		s.IsLoading = true
	})

	user, err := c.fetchProfile(ctx)
	if err != nil {
		c.store.Clear()
		c.update(func(s *Session) { *s = anonymous(MsgSessionExpired) })
		c.logger.WithError(err).InfoContext(ctx, "stored session rejected")
		c.metrics.RecordAuth("init", "failure")
		return &OpError{Op: "init", Message: MsgSessionExpired, Err: err}
	}

	c.store.SetUser(user)
	c.update(func(s *Session) { *s = authenticated(token, user) })
	c.metrics.RecordAuth("init", "success")
	return nil
}

// Login exchanges credentials for a token and hydrates the user. The
// session is Authenticated only once the profile fetch succeeds.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := c.begin("login"); err != nil {
		return err
	}
	defer c.end()

	c.update(func(s *Session) {
		s.IsLoading = true
		s.Error = ""
	})

	body := map[string]string{"email": email, "password": password}
	var raw json.RawMessage
	if err := c.api.Post(ctx, PathLogin, body, &raw, api.WithoutAuth()); err != nil {
		return c.fail(ctx, "login", api.MessageOr(err, MsgLoginFailed), err)
	}

	token := extractToken(raw)
	if token == "" {
		return c.fail(ctx, "login", MsgNoToken, ErrNoToken)
	}

	if err := c.authenticate(ctx, token); err != nil {
		return c.fail(ctx, "login", api.MessageOr(err, MsgProfileFailed), err)
	}

	c.notifier.Notify(ctx, notify.Success(KeyLoginSuccess))
	c.metrics.RecordAuth("login", "success")
	return nil
}

// RegisterResult tells the caller where to go next.
type RegisterResult struct {
	// AutoAuthenticated is false when the server created the account but
	// returned no token, so the user must log in separately.
	AutoAuthenticated bool
}

// Register creates an account. When the response carries a token the
// session is authenticated exactly as in Login.
func (c *Controller) Register(ctx context.Context, name, email, password, passwordConfirmation string) (RegisterResult, error) {
	if err := c.begin("register"); err != nil {
		return RegisterResult{}, err
	}
	defer c.end()

	c.update(func(s *Session) {
		s.IsLoading = true
		s.Error = ""
	})

	body := map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": passwordConfirmation,
	}
	var raw json.RawMessage
	if err := c.api.Post(ctx, PathRegister, body, &raw, api.WithoutAuth()); err != nil {
		return RegisterResult{}, c.failKeep(ctx, "register", api.MessageOr(err, MsgRegisterFailed), err)
	}

	token := extractToken(raw)
	if token == "" {
		c.update(func(s *Session) {
			s.IsLoading = false
			s.Error = ""
		})
		c.notifier.Notify(ctx, notify.Success(KeyRegisterSuccess))
		c.metrics.RecordAuth("register", "success")
		return RegisterResult{}, nil
	}

	if err := c.authenticate(ctx, token); err != nil {
		return RegisterResult{}, c.fail(ctx, "register", api.MessageOr(err, MsgProfileFailed), err)
	}

	c.notifier.Notify(ctx, notify.Success(KeyRegisterSuccess))
	c.metrics.RecordAuth("register", "success")
	return RegisterResult{AutoAuthenticated: true}, nil
}

// Logout ends the session. The server call is best-effort: its failure is
// recorded in Session.Error but local state is always cleared.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.begin("logout"); err != nil {
		return err
	}
	defer c.end()

	c.update(func(s *Session) { s.IsLoading = true })

	errMsg := ""
	if _, ok := c.store.Token(); ok {
		if err := c.api.Post(ctx, PathLogout, nil, nil); err != nil {
			errMsg = api.MessageOr(err, MsgLogoutFailed)
			c.logger.WithError(err).WarnContext(ctx, "server logout failed, clearing local session")
		}
	}

	c.store.Clear()
	c.update(func(s *Session) { *s = anonymous(errMsg) })
	c.notifier.Notify(ctx, notify.Success(KeyLogoutSuccess))

	outcome := "success"
	if errMsg != "" {
		outcome = "failure"
	}
	c.metrics.RecordAuth("logout", outcome)
	return nil
}

// ForgotPassword requests a reset link. The confirmation is the same
// whether or not the address is registered; the response body is ignored.
func (c *Controller) ForgotPassword(ctx context.Context, email string) error {
	if err := c.begin("forgot_password"); err != nil {
		return err
	}
	defer c.end()

	c.update(func(s *Session) {
		s.IsLoading = true
		s.Error = ""
	})

	body := map[string]string{"email": email}
	if err := c.api.Post(ctx, PathForgotPassword, body, nil, api.WithoutAuth()); err != nil {
		return c.failKeep(ctx, "forgot_password", api.MessageOr(err, MsgForgotFailed), err)
	}

	c.update(func(s *Session) { s.IsLoading = false })
	c.notifier.Notify(ctx, notify.Success(KeyForgotPasswordSuccess))
	c.metrics.RecordAuth("forgot_password", "success")
	return nil
}

// ResetPassword sets a new password using an emailed reset token. It does
// not log the user in.
func (c *Controller) ResetPassword(ctx context.Context, token, email, password, passwordConfirmation string) error {
	if err := c.begin("reset_password"); err != nil {
		return err
	}
	defer c.end()

	c.update(func(s *Session) {
		s.IsLoading = true
		s.Error = ""
	})

	body := map[string]string{
		"token":                 token,
		"email":                 email,
		"password":              password,
		"password_confirmation": passwordConfirmation,
	}
	if err := c.api.Post(ctx, PathResetPassword, body, nil, api.WithoutAuth()); err != nil {
		return c.failKeep(ctx, "reset_password", api.MessageOr(err, MsgResetFailed), err)
	}

	c.update(func(s *Session) { s.IsLoading = false })
	c.notifier.Notify(ctx, notify.Success(KeyResetPasswordSuccess))
	c.metrics.RecordAuth("reset_password", "success")
	return nil
}

// ClearError resets Session.Error and nothing else.
// Subscribers are not notified when there was no error to clear.
func (c *Controller) ClearError() {
	c.updateIf(func(s *Session) bool {
		if s.Error == "" {
			return false
		}
		s.Error = ""
		return true
	})
}

// SetUser replaces the cached user in the store and the session.
func (c *Controller) SetUser(user domain.UserRecord) {
	c.store.SetUser(user)
	c.update(func(s *Session) {
		u := user
		s.User = &u
	})
}

// Expire drops the session after the server rejected its token. It is a
// no-op when no token is held.
func (c *Controller) Expire(ctx context.Context) {
	c.mu.Lock()
	held := c.state.Token != ""
	c.mu.Unlock()
	if !held {
		return
	}

	c.store.Clear()
	c.update(func(s *Session) {
		loading := s.IsLoading
		*s = anonymous(MsgSessionExpired)
		s.IsLoading = loading
	})
	c.logger.InfoContext(ctx, "session expired")
}

// HandleNotification expires the session on the API's 401 signal. It is
// meant to be subscribed to the notification bus.
func (c *Controller) HandleNotification(ctx context.Context, n notify.Notification) {
	if n.Kind == notify.KindError && n.Key == api.SessionExpiredKey {
		c.Expire(ctx)
	}
}

// TokenExpiry returns the exp claim when the token is a JWT. The token is
// not verified; the value is informational.
func (c *Controller) TokenExpiry() (time.Time, bool) {
	c.mu.Lock()
	token := c.state.Token
	c.mu.Unlock()
	return tokenExpiry(token)
}

func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// authenticate stores token, hydrates the user and marks the session
// Authenticated. The token must be in the store before the profile fetch
// since the API client reads the bearer from there.
func (c *Controller) authenticate(ctx context.Context, token string) error {
	c.store.SetToken(token)

	user, err := c.fetchProfile(ctx)
	if err != nil {
		return err
	}

	c.store.SetUser(user)
	c.update(func(s *Session) { *s = authenticated(token, user) })
	return nil
}

func (c *Controller) fetchProfile(ctx context.Context) (domain.UserRecord, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, PathProfile, &raw); err != nil {
		return domain.UserRecord{}, err
	}
	user, err := api.Unwrap[domain.UserRecord](raw, "data", "user")
	if err != nil {
		return domain.UserRecord{}, errors.Wrap(errors.ErrCodeRequestDecode, MsgProfileFailed, err)
	}
	if user.ID == "" && user.Email == "" {
		return domain.UserRecord{}, errors.New(errors.ErrCodeRequestDecode, MsgProfileFailed)
	}
	return user, nil
}

// fail reverts to Anonymous with msg, clearing any stored credentials.
func (c *Controller) fail(ctx context.Context, op, msg string, cause error) error {
	c.store.Clear()
	c.update(func(s *Session) { *s = anonymous(msg) })
	c.logger.WithError(cause).InfoContext(ctx, "session operation failed", "operation", op)
	c.metrics.RecordAuth(op, "failure")
	return &OpError{Op: op, Message: msg, Err: cause}
}

// failKeep records msg without touching authentication state.
func (c *Controller) failKeep(ctx context.Context, op, msg string, cause error) error {
	c.update(func(s *Session) {
		s.IsLoading = false
		s.Error = msg
	})
	c.logger.WithError(cause).InfoContext(ctx, "session operation failed", "operation", op)
	c.metrics.RecordAuth(op, "failure")
	return &OpError{Op: op, Message: msg, Err: cause}
}

func (c *Controller) begin(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	if c.busy {
		c.metrics.RecordAuth(op, "rejected")
		return ErrOperationInFlight
	}
	c.busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

// update applies fn and notifies subscribers outside the lock.
func (c *Controller) update(fn func(*Session)) {
	c.updateIf(func(s *Session) bool {
		fn(s)
		return true
	})
}

// updateIf applies fn under the lock and notifies subscribers only when fn
// reports a change.
func (c *Controller) updateIf(fn func(*Session) bool) {
	c.mu.Lock()
	if !fn(&c.state) {
		c.mu.Unlock()
		return
	}
	snapshot := c.state.clone()
	subs := make([]func(Session), 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot.clone())
	}
}

// extractToken reads data.token, then a top-level token.
func extractToken(raw json.RawMessage) string {
	var body struct {
		Data  json.RawMessage `json:"data"`
		Token string          `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	var data struct {
		Token string `json:"token"`
	}
	if len(body.Data) > 0 && json.Unmarshal(body.Data, &data) == nil && data.Token != "" {
		return data.Token
	}
	return body.Token
}
