// Package browser opens Stripe checkout and billing portal URLs.
package browser

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/skratchdot/open-golang/open"

	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/log"
)

// MsgOpenFailed prefixes the error when no browser could be started.
const MsgOpenFailed = "could not open a browser"

// Opener launches a URL in the user's browser.
type Opener func(url string) error

// Browser opens redirect URLs and always echoes them so they can be copied
// when no browser is available.
type Browser struct {
	open   Opener
	out    io.Writer
	logger *log.Logger
}

// New creates a Browser. A nil opener uses the system default.
func New(opener Opener, out io.Writer, logger *log.Logger) *Browser {
	if opener == nil {
		opener = open.Run
	}
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Browser{open: opener, out: out, logger: logger.WithComponent("browser")}
}

// Open validates target and hands it to the opener. The URL is printed
// first in every case.
func (b *Browser) Open(ctx context.Context, target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return errors.New(errors.ErrCodeValidationFailed, fmt.Sprintf("refusing to open %q", target))
	}

	if b.out != nil {
		fmt.Fprintln(b.out, target)
	}

	if err := b.open(target); err != nil {
		b.logger.WarnContext(ctx, "browser launch failed", "url", target, "error", err)
		return fmt.Errorf("%s: %w", MsgOpenFailed, err)
	}
	b.logger.DebugContext(ctx, "opened browser", "host", u.Host)
	return nil
}
