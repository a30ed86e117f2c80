// Package api is the HTTP client for the account REST API. It attaches
// the API key, request id and bearer token, maps non-2xx responses to
// *RequestError and announces 401 responses as an expired session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/metrics"
	"github.com/felixgeelhaar/accountctl/internal/notify"
	"github.com/felixgeelhaar/accountctl/internal/telemetry"
)

// Header names
const (
	HeaderAPIKey    = "X-API-KEY"
	HeaderRequestID = "X-Request-ID"
)

// SessionExpiredKey is the i18n key of the 401 notification.
const SessionExpiredKey = "toasts.sessionExpired"

// DefaultTimeout applies when Options carries neither a client nor a timeout.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token. The token store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Tokens     TokenSource
	Notifier   notify.Notifier
	Logger     *log.Logger
	Metrics    *metrics.Metrics
	Tracer     trace.Tracer
}

// Client is the account API client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tokens     TokenSource
	notifier   notify.Notifier
	logger     *log.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

// New creates a client. Missing collaborators get no-op defaults.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		notifier:   notifier,
		logger:     logger.WithComponent("api"),
		metrics:    opts.Metrics,
		tracer:     opts.Tracer,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	Body   any
	Header http.Header
}

// HeaderOption overrides a request header.
type HeaderOption func(http.Header)

// WithHeader sets a header, replacing any default.
func WithHeader(key, value string) HeaderOption {
	return func(h http.Header) {
		h.Set(key, value)
	}
}

// WithoutAuth drops the bearer token for this request.
func WithoutAuth() HeaderOption {
	return func(h http.Header) {
		h.Del("Authorization")
	}
}

// Do performs req and decodes a successful JSON body into out. out may be
// nil, and an empty body leaves it untouched.
func (c *Client) Do(ctx context.Context, req Request, out any, opts ...HeaderOption) error {
	requestID := uuid.NewString()

	ctx, span := telemetry.StartRequestSpan(ctx, c.tracer, req.Method, req.Path)
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	httpReq, err := c.newRequest(ctx, req, requestID, opts)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	authed := httpReq.Header.Get("Authorization") != ""

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveRequest(req.Method, req.Path, 0, elapsed)
		reqErr := &RequestError{Message: transportMessage(err), RequestID: requestID, Cause: err}
		telemetry.RecordError(span, reqErr)
		c.logger.WithError(reqErr).DebugContext(ctx, "request failed", "method", req.Method, "path", req.Path)
		return reqErr
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(req.Method, req.Path, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	c.logger.DebugContext(ctx, "request completed",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", elapsed.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := parseError(resp, requestID)
		// Only a rejected token means the session is over; a 401 on an
		// unauthenticated call such as login is an ordinary failure.
		if resp.StatusCode == http.StatusUnauthorized && authed {
			c.metrics.RecordSessionExpired()
			c.notifier.Notify(ctx, notify.Error(SessionExpiredKey, ""))
		}
		telemetry.RecordError(span, reqErr)
		return reqErr
	}

	if err := decodeBody(resp.Body, out); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	telemetry.RecordSuccess(span)
	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, out any, opts ...HeaderOption) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path}, out, opts...)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...HeaderOption) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out, opts...)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...HeaderOption) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out, opts...)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...HeaderOption) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out, opts...)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...HeaderOption) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out, opts...)
}

func (c *Client) newRequest(ctx context.Context, req Request, requestID string, opts []HeaderOption) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRequestEncode, "failed to marshal request body", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestTransport, "failed to create request", err)
	}

	h := httpReq.Header
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	h.Set(HeaderAPIKey, c.apiKey)
	h.Set(HeaderRequestID, requestID)
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			h.Set("Authorization", "Bearer "+token)
		}
	}

	for k, vs := range req.Header {
		h.Del(k)
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	for _, opt := range opts {
		opt(h)
	}

	return httpReq, nil
}

// errorBody is the JSON error shape returned by the API
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func parseError(resp *http.Response, requestID string) *RequestError {
	data, _ := io.ReadAll(resp.Body)

	msg := ""
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = statusMessage(resp.StatusCode)
	}

	if id := resp.Header.Get(HeaderRequestID); id != "" {
		requestID = id
	}

	return &RequestError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		RequestID:  requestID,
	}
}

func decodeBody(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &RequestError{Message: transportMessage(err), Cause: err}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.ErrCodeRequestDecode, "failed to decode response", err)
	}
	return nil
}

func transportMessage(err error) string {
	return "Unable to reach the server: " + err.Error()
}
