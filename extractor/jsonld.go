package extractor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"product-extractor/internal/types"
)

const (
	sourceJSONLD    = "jsonld"
	sourceHeuristic = "heuristic"
)

// tryStructuredData scans the page's schema.org JSON-LD blocks for a
// Product entry with a usable offer price. Malformed blocks are skipped;
// returns nil when no block yields a price so the pipeline falls through to
// the heuristic extractor.
func tryStructuredData(doc *goquery.Document) *types.RawExtraction {
	var result *types.RawExtraction
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		product := findProduct(payload)
		if product == nil {
			return true
		}
		extraction := fromProduct(product)
		if extraction == nil {
			// Product block without an offer price, keep scanning.
			return true
		}
		result = extraction
		return false
	})
	return result
}

// findProduct handles the three document shapes seen in the wild: a direct
// Product object, an array containing one, or an object with a "@graph"
// array (Walmart, some Shopify themes).
func findProduct(payload interface{}) map[string]interface{} {
	switch v := payload.(type) {
	case map[string]interface{}:
		if v["@type"] == "Product" {
			return v
		}
		if graph, ok := v["@graph"].([]interface{}); ok {
			return firstProduct(graph)
		}
	case []interface{}:
		return firstProduct(v)
	}
	return nil
}

func firstProduct(items []interface{}) map[string]interface{} {
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok && m["@type"] == "Product" {
			return m
		}
	}
	return nil
}

func fromProduct(product map[string]interface{}) *types.RawExtraction {
	offer := firstOffer(product["offers"])
	if offer == nil {
		return nil
	}
	priceText := stringify(offer["price"])
	if priceText == "" {
		return nil
	}

	raw := &types.RawExtraction{
		Title:     stringify(product["name"]),
		PriceText: priceText,
		Currency:  stringify(offer["priceCurrency"]),
		ImageURL:  imageURL(product["image"]),
		Available: true,
		Source:    sourceJSONLD,
	}
	if availability := stringify(offer["availability"]); availability != "" {
		raw.Available = strings.Contains(availability, "InStock")
	}
	return raw
}

// firstOffer accepts offers as either a single object or an array, taking
// the first entry.
func firstOffer(offers interface{}) map[string]interface{} {
	switch v := offers.(type) {
	case map[string]interface{}:
		return v
	case []interface{}:
		if len(v) > 0 {
			if m, ok := v[0].(map[string]interface{}); ok {
				return m
			}
		}
	}
	return nil
}

// imageURL accepts the image field as a plain URL, an array of URLs (first
// wins), or an ImageObject with a nested url.
func imageURL(image interface{}) string {
	switch v := image.(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			return imageURL(v[0])
		}
	case map[string]interface{}:
		return stringify(v["url"])
	}
	return ""
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}
