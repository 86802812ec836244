package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"meckano-helper/config"
	pkgLog "meckano-helper/pkg/log"
)

// Client owns the DevTools session against the Chrome instance that has
// the Meckano page open.
type Client struct {
	l           pkgLog.Logger
	browserCtx  context.Context
	cancelFns   []context.CancelFunc
	evalTimeout time.Duration
}

// NewClient attaches to a running Chrome via its remote debugging endpoint.
// The connection itself is established lazily on the first evaluation.
func NewClient(l pkgLog.Logger, cfg config.BrowserConfig) *Client {
	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(context.Background(), cfg.DevToolsURL)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	evalTimeout := cfg.EvalTimeout
	if evalTimeout <= 0 {
		evalTimeout = 10 * time.Second
	}

	return &Client{
		l:           l,
		browserCtx:  browserCtx,
		cancelFns:   []context.CancelFunc{cancelBrowser, cancelAlloc},
		evalTimeout: evalTimeout,
	}
}

// Close tears down the DevTools session. The browser itself keeps running.
func (c *Client) Close() {
	for _, cancel := range c.cancelFns {
		cancel()
	}
}

// Ping verifies the page is reachable and parsed.
func (c *Client) Ping(ctx context.Context) error {
	var state string
	if err := c.eval(ctx, `document.readyState`, &state); err != nil {
		return err
	}
	c.l.Debugf(ctx, "browser: document.readyState=%s", state)
	return nil
}

// eval runs a JS expression in the page and unmarshals the result.
// The session context owns the CDP connection; the caller's context only
// contributes cancellation.
func (c *Client) eval(ctx context.Context, expr string, out any) error {
	runCtx, cancel := context.WithTimeout(c.browserCtx, c.evalTimeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, chromedp.Evaluate(expr, out))
}
