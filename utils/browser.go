package utils

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"product-extractor/internal/types"
)

// stealthScript patches the automation tells stock headless Chrome exposes.
// It must run before any page script: navigator.webdriver is the first
// thing trivial bot checks look at, and an empty plugin list or a missing
// window.chrome gives headless away just as quickly.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
window.chrome = { runtime: {} };
`

var extraHeaders = network.Headers{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// BrowserClient fetches pages through a headless Chrome session. Each Fetch
// launches an isolated session; there is no pooling or session reuse.
type BrowserClient struct {
	config *types.Config
	logger types.Logger
}

// NewBrowserClient creates a new browser client
func NewBrowserClient(config *types.Config, logger types.Logger) *BrowserClient {
	// Suppress chromedp debug logging
	log.SetOutput(io.Discard)

	return &BrowserClient{
		config: config,
		logger: logger,
	}
}

// Fetch navigates to the URL like a real desktop user (spoofed UA, 1920x1080
// viewport, US locale and timezone, pre-load fingerprint patches), waits the
// configured settle delay for client-rendered price widgets, and returns the
// rendered page. The returned handle owns the browser session; closing it
// tears the session down. On error the session is torn down here.
func (b *BrowserClient) Fetch(ctx context.Context, url string) (*types.Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(b.config.UserAgent),
		chromedp.WindowSize(1920, 1080),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-web-security", true),
		chromedp.Flag("disable-features", "IsolateOrigins,site-per-process"),
		chromedp.Flag("lang", "en-US"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, b.config.Timeout)

	teardown := func() {
		cancelTimeout()
		cancelBrowser()
		cancelAlloc()
	}

	var html string
	err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(extraHeaders),
		emulation.SetTimezoneOverride("America/New_York"),
		emulation.SetLocaleOverride().WithLocale("en-US"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(stealthScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(url),
		chromedp.Sleep(b.config.SettleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		teardown()
		return nil, fmt.Errorf("failed to get page content: %w", err)
	}

	b.logger.Debugf("Successfully retrieved rendered page from %s (%d bytes)", url, len(html))
	return types.NewPage(html, teardown), nil
}
