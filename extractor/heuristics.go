package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"product-extractor/internal/types"
	"product-extractor/stores"
)

var outOfStockPhrases = []string{"out of stock", "sold out", "unavailable"}

// tryHeuristics pulls title, price text, image, and stock signals straight
// from the rendered markup using the store's selector table. This is the
// fallback of last resort: it always returns a best-effort result, possibly
// with empty fields, and never fails.
func tryHeuristics(doc *goquery.Document, profile stores.Profile) *types.RawExtraction {
	raw := &types.RawExtraction{Available: true, Source: sourceHeuristic}

	// Page metadata is a decent generic baseline for title and image; the
	// store selectors override it when they hit.
	raw.Title = metaContent(doc, "og:title", "twitter:title")
	for _, sel := range profile.Title {
		if text := firstText(doc, sel); text != "" {
			raw.Title = text
			break
		}
	}
	if raw.Title == "" {
		raw.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	for _, sel := range profile.Price {
		if text := textOrContent(doc, sel); text != "" {
			raw.PriceText = text
			break
		}
	}

	raw.ImageURL = metaContent(doc, "og:image", "twitter:image")
	if raw.ImageURL == "" {
		for _, sel := range profile.Image {
			src, _ := doc.Find(sel).First().Attr("src")
			// Rejects data URIs and empty lazy-load placeholders.
			if strings.HasPrefix(src, "http") {
				raw.ImageURL = src
				break
			}
		}
	}

	for _, sel := range profile.OutOfStock {
		matched := false
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.ToLower(s.Text())
			for _, phrase := range outOfStockPhrases {
				if strings.Contains(text, phrase) {
					matched = true
					return false
				}
			}
			return true
		})
		if matched {
			raw.Available = false
			break
		}
	}

	return raw
}

// metaContent returns the first non-empty content attribute among the named
// meta tags, checking both property= and name= variants.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		selectors := []string{
			`meta[property="` + name + `"]`,
			`meta[name="` + name + `"]`,
		}
		for _, sel := range selectors {
			if content, ok := doc.Find(sel).First().Attr("content"); ok {
				if trimmed := strings.TrimSpace(content); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

// textOrContent returns the first matched element's text, or its content
// attribute when the element has no text (meta/itemprop price tags).
func textOrContent(doc *goquery.Document, selector string) string {
	result := ""
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			result = text
			return false
		}
		if content, ok := s.Attr("content"); ok {
			if trimmed := strings.TrimSpace(content); trimmed != "" {
				result = trimmed
				return false
			}
		}
		return true
	})
	return result
}
