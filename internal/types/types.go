package types

import (
	"sync"
	"time"
)

// ScrapedProduct is the engine's output contract: one snapshot of a product
// page at extraction time.
type ScrapedProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
	IsAvailable bool    `json:"is_available"`
}

// RawExtraction is the intermediate result produced by either the
// structured-data extractor or the heuristic DOM extractor. It is consumed
// immediately by the result assembler and never persisted.
type RawExtraction struct {
	Title     string
	PriceText string // locale-formatted, as found on the page
	ImageURL  string // absolute or relative
	Currency  string // set only when the page itself reports one (JSON-LD)
	Available bool
	Source    string // "jsonld" or "heuristic"
}

// Page is a rendered-page handle returned by a fetcher. Close releases the
// underlying browser session and is safe to call more than once.
type Page struct {
	HTML string

	closeOnce sync.Once
	close     func()
}

// NewPage wraps rendered HTML together with its release function.
func NewPage(html string, close func()) *Page {
	return &Page{HTML: html, close: close}
}

// Close releases the page's resources. Subsequent calls are no-ops.
func (p *Page) Close() {
	p.closeOnce.Do(func() {
		if p.close != nil {
			p.close()
		}
	})
}

// Config holds the configuration for the extraction engine
type Config struct {
	Timeout            time.Duration // navigation timeout for the whole fetch
	SettleDelay        time.Duration // post-load pause for client-rendered widgets
	RequestDelay       time.Duration // minimum spacing between HTTP-only requests
	MaxRetries         int           // HTTP-only fetch retries; the browser path never retries
	UseHeadlessBrowser bool
	UserAgent          string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Timeout:            45 * time.Second,
		SettleDelay:        2 * time.Second,
		RequestDelay:       1 * time.Second,
		MaxRetries:         3,
		UseHeadlessBrowser: true,
		UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	}
}

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
