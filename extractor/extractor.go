// Package extractor turns one product URL into one structured snapshot.
// The pipeline is strictly linear per invocation: classify the store, fetch
// the rendered page, read schema.org JSON-LD if present, fall back to
// per-store selector heuristics, normalize the price, assemble the result.
// Invocations share no state; concurrency is entirely the caller's choice.
package extractor

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"product-extractor/internal/types"
	"product-extractor/stores"
	"product-extractor/utils"
)

// PageFetcher loads a URL and hands back a rendered-page handle. The caller
// owns the handle and must Close it.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*types.Page, error)
}

// Engine is the product extraction engine.
type Engine struct {
	config  *types.Config
	logger  types.Logger
	fetcher PageFetcher
	metrics *Metrics
}

// NewEngine creates an engine using the headless browser fetcher, or the
// plain HTTP fetcher when the config disables the browser.
func NewEngine(config *types.Config, logger types.Logger) *Engine {
	var fetcher PageFetcher
	if config.UseHeadlessBrowser {
		fetcher = utils.NewBrowserClient(config, logger)
	} else {
		fetcher = utils.NewHTTPClient(config, logger)
	}
	return &Engine{
		config:  config,
		logger:  logger,
		fetcher: fetcher,
		metrics: NewMetrics(),
	}
}

// Metrics exposes the engine's Prometheus registry for callers that scrape.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// ScrapeProduct extracts a product snapshot from one absolute URL. It
// returns ErrInvalidInput for unparsable URLs (before any network activity)
// and ErrFetchFailed when the page cannot be loaded; in both cases there is
// no partial result. A returned snapshot may still carry a zero price — use
// ClassifyOutcome to tell a blocked page from an unsupported layout.
func (e *Engine) ScrapeProduct(ctx context.Context, rawURL string) (*types.ScrapedProduct, error) {
	start := time.Now()

	storeID, currency, err := stores.Classify(rawURL)
	if err != nil {
		e.metrics.IncFailure("invalid_input")
		return nil, ErrInvalidInput{Err: err}
	}
	// Classify already validated the URL.
	pageURL, _ := url.Parse(rawURL)

	e.logger.Infof("Scraping %s product, currency: %s", storeID, currency)

	page, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		e.metrics.IncFailure("fetch_failed")
		e.logger.Errorf("Fetch failed for %s: %v", rawURL, err)
		return nil, ErrFetchFailed{Err: err}
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		e.metrics.IncFailure("fetch_failed")
		return nil, ErrFetchFailed{Err: fmt.Errorf("parse rendered page: %w", err)}
	}

	raw := tryStructuredData(doc)
	if raw != nil {
		e.logger.Debugf("JSON-LD extraction successful for %s", rawURL)
	} else {
		raw = tryHeuristics(doc, stores.ProfileFor(storeID))
	}

	product := assemble(raw, pageURL, currency)
	outcome := ClassifyOutcome(product)
	e.metrics.ObserveExtraction(outcome, raw.Source, time.Since(start))

	e.logger.Infof("Scraped %q price=%.2f %s available=%t outcome=%s source=%s",
		truncate(product.Title, 40), product.Price, product.Currency,
		product.IsAvailable, outcome, raw.Source)

	return product, nil
}

// Close cleans up the fetcher's resources.
func (e *Engine) Close() {
	if closer, ok := e.fetcher.(interface{ Close() }); ok {
		closer.Close()
	}
}

// assemble merges a raw extraction into the final snapshot: placeholder
// title, normalized price, page-reported currency over domain currency, and
// relative image paths resolved against the product URL.
func assemble(raw *types.RawExtraction, pageURL *url.URL, domainCurrency string) *types.ScrapedProduct {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = "Unknown Product"
	}

	currency := raw.Currency
	if currency == "" {
		currency = domainCurrency
	}

	image := raw.ImageURL
	if image != "" && !strings.HasPrefix(image, "http") {
		if ref, err := url.Parse(image); err == nil {
			image = pageURL.ResolveReference(ref).String()
		}
	}

	return &types.ScrapedProduct{
		Title:       title,
		Price:       NormalizePrice(raw.PriceText),
		Currency:    currency,
		ImageURL:    image,
		IsAvailable: raw.Available,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
