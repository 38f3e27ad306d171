// Package stores holds the static per-store knowledge the extraction engine
// relies on: which e-commerce site a URL belongs to, which currency that
// site's prices are quoted in, and which CSS selectors are worth trying on
// its product pages. Everything here is compiled in and immutable.
package stores

import (
	"fmt"
	"net/url"
	"strings"
)

// ID identifies a known e-commerce store, or Generic for everything else.
type ID string

const (
	Amazon     ID = "amazon"
	Flipkart   ID = "flipkart"
	Walmart    ID = "walmart"
	Ebay       ID = "ebay"
	AliExpress ID = "aliexpress"
	Etsy       ID = "etsy"
	Target     ID = "target"
	BestBuy    ID = "bestbuy"
	Newegg     ID = "newegg"
	Shopee     ID = "shopee"
	Lazada     ID = "lazada"
	Zalando    ID = "zalando"
	Asos       ID = "asos"
	Myntra     ID = "myntra"
	Generic    ID = "generic"
)

// detectionOrder is checked first-match-wins against the hostname.
var detectionOrder = []ID{
	Amazon, Flipkart, Walmart, Ebay, AliExpress, Etsy, Target,
	BestBuy, Newegg, Shopee, Lazada, Zalando, Asos, Myntra,
}

// Classify maps a product URL to a store id and that store's default
// currency. Unknown hostnames classify as Generic with USD. A URL that does
// not parse, or parses without a hostname, is rejected before any network
// activity happens.
func Classify(rawURL string) (ID, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Generic, "", fmt.Errorf("parse url: %w", err)
	}
	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return Generic, "", fmt.Errorf("url %q has no hostname", rawURL)
	}
	hostname = strings.TrimPrefix(hostname, "www.")

	id := Generic
	for _, candidate := range detectionOrder {
		if strings.Contains(hostname, string(candidate)) {
			id = candidate
			break
		}
	}

	return id, CurrencyFor(hostname), nil
}
