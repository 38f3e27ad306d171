package stores

import "strings"

// currencyByDomain maps registrable domains to ISO 4217 currency codes. The
// domain keys are more specific than the store detection substrings so that
// regional TLDs (amazon.in vs amazon.co.uk) resolve to different currencies
// while sharing one selector profile.
var currencyByDomain = map[string]string{
	"amazon.com":     "USD",
	"amazon.co.uk":   "GBP",
	"amazon.de":      "EUR",
	"amazon.fr":      "EUR",
	"amazon.in":      "INR",
	"amazon.ca":      "CAD",
	"amazon.com.au":  "AUD",
	"amazon.co.jp":   "JPY",
	"walmart.com":    "USD",
	"target.com":     "USD",
	"bestbuy.com":    "USD",
	"flipkart.com":   "INR",
	"myntra.com":     "INR",
	"ebay.com":       "USD",
	"ebay.co.uk":     "GBP",
	"ebay.de":        "EUR",
	"aliexpress.com": "USD",
	"etsy.com":       "USD",
	"newegg.com":     "USD",
	"zalando.de":     "EUR",
	"zalando.co.uk":  "GBP",
	"asos.com":       "GBP",
	"shopee.sg":      "SGD",
	"shopee.com.my":  "MYR",
	"lazada.sg":      "SGD",
	"lazada.com.my":  "MYR",
}

// CurrencyFor returns the currency for a hostname, defaulting to USD. When
// several domain keys match (amazon.com inside amazon.com.au), the longest
// match wins.
func CurrencyFor(hostname string) string {
	best := ""
	currency := "USD"
	for domain, code := range currencyByDomain {
		if strings.Contains(hostname, domain) && len(domain) > len(best) {
			best = domain
			currency = code
		}
	}
	return currency
}
