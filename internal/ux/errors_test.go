package ux

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/felixgeelhaar/accountctl/internal/api"
	accerrors "github.com/felixgeelhaar/accountctl/internal/errors"
)

func TestErrorWithSuggestion(t *testing.T) {
	base := errors.New("checkout failed")

	if NewErrorWithSuggestion(nil, "retry") != nil {
		t.Error("nil error should stay nil")
	}

	withHint := NewErrorWithSuggestion(base, "retry")
	if got, want := withHint.Error(), "checkout failed\n\n💡 Suggestion: retry"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(withHint, base) {
		t.Error("suggestion wrapper should unwrap to the original error")
	}

	if got := NewErrorWithSuggestion(base, "").Error(); got != "checkout failed" {
		t.Errorf("empty suggestion should not change the message, got %q", got)
	}
}

func TestEnhanceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport failure", &api.RequestError{Message: "Unable to reach the server: connection refused"}, "accountctl config get api.url"},
		{"unauthorized", &api.RequestError{StatusCode: http.StatusUnauthorized, Message: "Unauthenticated."}, "accountctl auth login"},
		{"forbidden", &api.RequestError{StatusCode: http.StatusForbidden, Message: "Invalid API key"}, "ACCOUNTCTL_API_KEY"},
		{"rate limited", &api.RequestError{StatusCode: http.StatusTooManyRequests, Message: "Too Many Attempts."}, "Wait a minute"},
		{"wrapped server error", fmt.Errorf("checkout: %w", &api.RequestError{StatusCode: http.StatusBadGateway, Message: "Bad gateway"}), "request id"},
		{"permission denied", errors.New("open /home/u/.accountctl/storage.json: permission denied"), "accountctl config path"},
		{"browser failure", errors.New("could not open a browser: exec: xdg-open not found"), "printed URL"},
		{"validation error left alone", &api.RequestError{StatusCode: http.StatusUnprocessableEntity, Message: "The email has already been taken."}, ""},
		{"unknown error left alone", errors.New("some random error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnhanceError(tt.err)
			if got == nil {
				t.Fatal("EnhanceError() returned nil")
			}
			if tt.want == "" {
				if got != tt.err {
					t.Errorf("EnhanceError() changed %v into %v", tt.err, got)
				}
				return
			}
			msg := got.Error()
			if !strings.Contains(msg, tt.err.Error()) || !strings.Contains(msg, tt.want) {
				t.Errorf("EnhanceError() = %q, want original message plus %q", msg, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Error("enhanced error should unwrap to the original")
			}
		})
	}
}

func TestEnhanceError_Passthrough(t *testing.T) {
	if EnhanceError(nil) != nil {
		t.Error("nil error should stay nil")
	}

	authErr := accerrors.NewAuthRequiredError()
	if got := EnhanceError(authErr); got != error(authErr) {
		t.Errorf("errors with their own suggestions should pass through, got %v", got)
	}

	hinted := NewErrorWithSuggestion(errors.New("base"), "first")
	if got := EnhanceError(hinted); got != hinted {
		t.Errorf("unmatched errors should pass through, got %v", got)
	}
}
