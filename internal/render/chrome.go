// Package render drives a headless Chrome instance for pages whose product
// data only exists after client-side rendering.
package render

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/thomas-ramirez/scraper-leomadeiras/logger"
	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

const (
	// settleDelay gives client-side frameworks a moment to hydrate after
	// navigation. Advisory only; the wait-selector pass below is what
	// actually gates on content.
	settleDelay = 500 * time.Millisecond

	// selectorTimeout bounds each wait-selector attempt. First selector to
	// appear wins, the rest are abandoned.
	selectorTimeout = 4 * time.Second
)

// Renderer fetches fully rendered HTML through a headless browser.
type Renderer struct {
	timeout time.Duration
	log     *logger.Logger
}

// NewRenderer creates a renderer whose page loads are bounded by timeout.
func NewRenderer(timeout time.Duration) *Renderer {
	return &Renderer{
		timeout: timeout,
		log:     logger.ForRenderer(),
	}
}

// Render navigates to url, waits for the page to settle and for the first of
// waitSelectors to attach, then returns the document's outer HTML. A timeout
// or browser failure comes back as a render error so the caller can fall back
// to a static fetch; it never aborts the batch.
func (r *Renderer) Render(ctx context.Context, url string, waitSelectors []string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	start := time.Now()
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(settleDelay),
	)
	if err != nil {
		return "", scraperErrors.NewRender(url, "navigation failed", err)
	}

	r.waitForFirst(browserCtx, waitSelectors)

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", scraperErrors.NewRender(url, "failed to capture rendered HTML", err)
	}

	r.log.Debug().
		Str("url", url).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(html)).
		Msg("Page rendered")
	return html, nil
}

// waitForFirst waits for the first of the selectors to attach to the DOM.
// Selector timeouts are swallowed; a page without any of the expected
// containers still yields whatever HTML it has.
func (r *Renderer) waitForFirst(ctx context.Context, selectors []string) {
	for _, sel := range selectors {
		selCtx, cancel := context.WithTimeout(ctx, selectorTimeout)
		err := chromedp.Run(selCtx, chromedp.WaitReady(sel, chromedp.ByQuery))
		cancel()
		if err == nil {
			return
		}
		r.log.Debug().Str("selector", sel).Msg("Wait selector not found, trying next")
	}
}
