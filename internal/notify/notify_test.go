package notify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapTranslator map[string]string

func (m mapTranslator) T(key string) string { return m[key] }

func TestBus_FansOutInOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.Subscribe(func(_ context.Context, n Notification) { order = append(order, "first:"+n.Key) })
	bus.Subscribe(func(_ context.Context, n Notification) { order = append(order, "second:"+n.Key) })

	bus.Notify(context.Background(), Success("toasts.loginSuccess"))

	assert.Equal(t, []string{"first:toasts.loginSuccess", "second:toasts.loginSuccess"}, order)
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.Notify(context.Background(), Success("toasts.logoutSuccess"))
	rec.Notify(context.Background(), Error("toasts.loginError", "Invalid credentials"))

	assert.Equal(t, []string{"toasts.logoutSuccess", "toasts.loginError"}, rec.Keys())
	assert.Equal(t, KindError, rec.All()[1].Kind)
	assert.Equal(t, "Invalid credentials", rec.All()[1].Message)

	rec.Reset()
	assert.Empty(t, rec.All())
}

func TestConsole_TranslatesKeys(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, mapTranslator{"toasts.loginSuccess": "Successfully logged in"}, nil)

	c.Handle(context.Background(), Success("toasts.loginSuccess"))

	assert.Equal(t, "✓ Successfully logged in\n", buf.String())
}

func TestConsole_MessageWinsOverKey(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, mapTranslator{"toasts.loginError": "Failed to log in"}, func(k Kind, s string) string {
		return strings.ToUpper(string(k)) + " " + s
	})

	c.Handle(context.Background(), Error("toasts.loginError", "Invalid credentials"))
	c.Handle(context.Background(), Notification{Kind: KindInfo, Key: "untranslated.key"})

	assert.Equal(t, "ERROR ✗ Invalid credentials\nINFO • untranslated.key\n", buf.String())
}
