package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	accerrors "github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/metrics"
	"github.com/felixgeelhaar/accountctl/internal/notify"
	"github.com/felixgeelhaar/accountctl/internal/tokenstore"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *tokenstore.Store, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := tokenstore.New(tokenstore.NewMemoryBackend(), log.Discard())
	rec := &notify.Recorder{}
	client := New(Options{
		BaseURL:  srv.URL + "/",
		APIKey:   "test-key",
		Tokens:   store,
		Notifier: rec,
		Logger:   log.Discard(),
	})
	return client, store, rec
}

func TestClient_DefaultHeaders(t *testing.T) {
	var got http.Header
	client, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	})
	store.SetToken("abc")

	require.NoError(t, client.Get(context.Background(), "/api/user/profile", nil))

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "test-key", got.Get(HeaderAPIKey))
	assert.Equal(t, "Bearer abc", got.Get("Authorization"))

	_, err := uuid.Parse(got.Get(HeaderRequestID))
	assert.NoError(t, err, "request id should be a uuid")
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	var got http.Header
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	})

	require.NoError(t, client.Post(context.Background(), "/api/auth/login", map[string]string{"email": "a@b.co"}, nil))
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_HeaderOverridesApplyLast(t *testing.T) {
	var got http.Header
	client, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	})
	store.SetToken("abc")

	err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/api/subscription",
		Header: http.Header{"Accept": []string{"text/plain"}},
	}, nil, WithHeader(HeaderAPIKey, "override"), WithoutAuth())
	require.NoError(t, err)

	assert.Equal(t, "text/plain", got.Get("Accept"))
	assert.Equal(t, "override", got.Get(HeaderAPIKey))
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_SendsJSONBody(t *testing.T) {
	var body map[string]string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"name":"Ada"}}`))
	})

	var out Envelope[map[string]string]
	require.NoError(t, client.Put(context.Background(), "/api/user/profile", map[string]string{"name": "Ada"}, &out))

	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "Ada", out.Data["name"])
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusUnprocessableEntity, `{"message":"The email has already been taken."}`, "The email has already been taken."},
		{"error field", http.StatusBadRequest, `{"error":"bad_request"}`, "bad_request"},
		{"message wins over error", http.StatusBadRequest, `{"message":"Invalid credentials","error":"x"}`, "Invalid credentials"},
		{"empty json", http.StatusInternalServerError, `{}`, "Request failed with status 500"},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, "Request failed with status 502"},
		{"no body", http.StatusServiceUnavailable, ``, "Request failed with status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Get(context.Background(), "/api/subscription", nil)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantMsg, reqErr.Error())
			assert.NotEmpty(t, reqErr.RequestID)
			assert.Empty(t, rec.All(), "only 401 responses notify")
		})
	}
}

func TestClient_UnauthorizedNotifiesWithoutClearing(t *testing.T) {
	client, store, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	store.SetToken("abc")

	err := client.Get(context.Background(), "/api/user/profile", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Unauthenticated.", err.Error())

	notes := rec.All()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.KindError, notes[0].Kind)
	assert.Equal(t, SessionExpiredKey, notes[0].Key)

	token, ok := store.Token()
	assert.True(t, ok, "the client must not clear the session")
	assert.Equal(t, "abc", token)
}

func TestClient_UnauthorizedWithoutTokenIsNotExpiry(t *testing.T) {
	client, store, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	err := client.Post(context.Background(), "/api/auth/login", map[string]string{"email": "a@b.co"}, nil)
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Empty(t, rec.All(), "no token was sent, so nothing expired")

	store.SetToken("abc")
	err = client.Post(context.Background(), "/api/auth/login", map[string]string{"email": "a@b.co"}, nil, WithoutAuth())
	require.Error(t, err)
	assert.Empty(t, rec.All(), "a request sent without auth cannot expire the session")
}

func TestClient_EmptySuccessLeavesOutUntouched(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	out := map[string]string{"keep": "me"}
	require.NoError(t, client.Post(context.Background(), "/api/auth/logout", nil, &out))
	assert.Equal(t, map[string]string{"keep": "me"}, out)
}

func TestClient_InvalidJSONIsDecodeError(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	var out map[string]any
	err := client.Get(context.Background(), "/api/subscription", &out)
	require.Error(t, err)

	code, ok := accerrors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, accerrors.ErrCodeRequestDecode, code)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &notify.Recorder{}
	client := New(Options{BaseURL: url, Notifier: rec, Logger: log.Discard()})

	err := client.Get(context.Background(), "/api/subscription", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, reqErr.IsTransport())
	assert.Equal(t, 0, StatusCode(err))
	assert.Contains(t, reqErr.Error(), "Unable to reach the server")
	assert.Empty(t, rec.All())
}

func TestClient_RecordsMetricsAndSpans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/user/profile" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	store := tokenstore.New(tokenstore.NewMemoryBackend(), log.Discard())
	store.SetToken("abc")

	client := New(Options{
		BaseURL: srv.URL,
		Tokens:  store,
		Logger:  log.Discard(),
		Metrics: m,
		Tracer:  tp.Tracer("api"),
	})

	require.NoError(t, client.Get(context.Background(), "/api/subscription", nil))
	require.Error(t, client.Get(context.Background(), "/api/user/profile", nil))
	require.Error(t, client.Get(context.Background(), "/api/user/profile", nil, WithoutAuth()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET", "/api/subscription", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET", "/api/user/profile", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionExpired), "only the request carrying a token counts")

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "GET /api/subscription", spans[0].Name())
	assert.Equal(t, "GET /api/user/profile", spans[1].Name())
}

func TestMessageOr(t *testing.T) {
	assert.Equal(t, "server says no", MessageOr(&RequestError{StatusCode: 400, Message: "server says no"}, "fallback"))
	assert.Equal(t, "fallback", MessageOr(&RequestError{StatusCode: 400}, "fallback"))
	assert.Equal(t, "fallback", MessageOr(context.Canceled, "fallback"))
}
