package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Translator resolves i18n keys.
type Translator interface {
	T(key string) string
}

// Styler decorates a rendered line for its kind, e.g. with theme colors.
type Styler func(Kind, string) string

// Console writes notifications as single lines, typically to stderr.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	tr     Translator
	styler Styler
}

// NewConsole creates a console renderer. styler may be nil.
func NewConsole(out io.Writer, tr Translator, styler Styler) *Console {
	return &Console{out: out, tr: tr, styler: styler}
}

// Handle renders n. It satisfies Handler.
func (c *Console) Handle(_ context.Context, n Notification) {
	text := n.Message
	if text == "" && c.tr != nil {
		text = c.tr.T(n.Key)
	}
	if text == "" {
		text = n.Key
	}

	line := fmt.Sprintf("%s %s", icon(n.Kind), text)
	if c.styler != nil {
		line = c.styler(n.Kind, line)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}

func icon(k Kind) string {
	switch k {
	case KindSuccess:
		return "✓"
	case KindError:
		return "✗"
	case KindWarning:
		return "!"
	default:
		return "•"
	}
}
