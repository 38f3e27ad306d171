package utils

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
	"product-extractor/internal/types"
)

// HTTPClient fetches pages without a browser, for server-rendered product
// pages. It still presents as a desktop browser (spoofed UA, cloudflare
// bypass transport, cookie jar) and rate-limits itself.
type HTTPClient struct {
	client  *resty.Client
	config  *types.Config
	logger  types.Logger
	limiter *rate.Limiter
}

// NewHTTPClient creates a new HTTP client with the given configuration
func NewHTTPClient(config *types.Config, logger types.Logger) *HTTPClient {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("User-Agent", config.UserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")

	interval := config.RequestDelay
	if interval <= 0 {
		interval = time.Second
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	return &HTTPClient{
		client:  client,
		config:  config,
		logger:  logger,
		limiter: limiter,
	}
}

// Get performs a GET request with rate limiting and retries
func (h *HTTPClient) Get(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= h.config.MaxRetries; attempt++ {
		h.logger.Debugf("Making request to %s (attempt %d/%d)", url, attempt+1, h.config.MaxRetries+1)

		resp, err := h.client.R().SetContext(ctx).Get(url)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			h.logger.Warnf("Request failed (attempt %d): %v", attempt+1, err)
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}

		if resp.StatusCode() != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode())
			h.logger.Warnf("Unexpected status code %d (attempt %d)", resp.StatusCode(), attempt+1)
			continue
		}

		h.logger.Debugf("Successfully retrieved %d bytes from %s", len(resp.Body()), url)
		return string(resp.Body()), nil
	}

	return "", fmt.Errorf("all retry attempts failed: %w", lastErr)
}

// Fetch adapts Get to the engine's fetcher contract. There is no browser
// session behind the page handle, so Close has nothing to release.
func (h *HTTPClient) Fetch(ctx context.Context, url string) (*types.Page, error) {
	html, err := h.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return types.NewPage(html, nil), nil
}
