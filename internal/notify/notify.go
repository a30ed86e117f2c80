// Package notify carries one-shot user notifications (the CLI's toasts)
// from the session, account and api packages to whatever renders them.
package notify

import (
	"context"
	"sync"
)

// Kind is the severity of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Notification is a single toast. Key is an i18n key; Message, when set,
// is shown verbatim instead (server-supplied error text).
type Notification struct {
	Kind    Kind
	Key     string
	Message string
}

// Success builds a success notification for an i18n key.
func Success(key string) Notification {
	return Notification{Kind: KindSuccess, Key: key}
}

// Error builds an error notification. A non-empty message wins over the key.
func Error(key, message string) Notification {
	return Notification{Kind: KindError, Key: key, Message: message}
}

// Notifier publishes notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Handler receives published notifications.
type Handler func(context.Context, Notification)

// Bus is a synchronous in-memory dispatcher. Handlers run in
// subscription order on the publishing goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Notify invokes every subscribed handler.
func (b *Bus) Notify(ctx context.Context, n Notification) {
	b.mu.RLock()
	handlers := append([]Handler{}, b.handlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, n)
	}
}

// Subscribe registers a handler.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Nop discards notifications.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, Notification) {}

// Recorder keeps every notification it receives. Tests use it.
type Recorder struct {
	mu   sync.Mutex
	seen []Notification
}

// Notify records n.
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.seen...)
}

// Keys returns the i18n keys in publication order.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.seen))
	for _, n := range r.seen {
		keys = append(keys, n.Key)
	}
	return keys
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = nil
}
