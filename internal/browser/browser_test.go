package browser

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/accountctl/internal/log"
)

func TestOpen(t *testing.T) {
	var opened string
	var out bytes.Buffer
	b := New(func(u string) error { opened = u; return nil }, &out, log.Discard())

	err := b.Open(context.Background(), "https://checkout.stripe.com/c/pay/cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", opened)
	assert.Contains(t, out.String(), "cs_test_123")
}

func TestOpen_RejectsNonHTTP(t *testing.T) {
	called := false
	b := New(func(string) error { called = true; return nil }, nil, log.Discard())

	for _, target := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "https://"} {
		assert.Error(t, b.Open(context.Background(), target), target)
	}
	assert.False(t, called)
}

func TestOpen_LauncherFailure(t *testing.T) {
	var out bytes.Buffer
	b := New(func(string) error { return errors.New("exec: xdg-open not found") }, &out, log.Discard())

	err := b.Open(context.Background(), "https://billing.stripe.com/p/session/abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgOpenFailed)
	assert.Contains(t, out.String(), "billing.stripe.com", "URL is still printed for copying")
}
