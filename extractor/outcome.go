package extractor

import (
	"strings"

	"product-extractor/internal/types"
)

// Outcome classifies a successful extraction for callers. A zero price is
// ambiguous on its own: it can mean a bot-challenge interstitial, an
// unsupported page layout, or (rarely) a genuinely free item. The title is
// the only extra signal available to split those apart.
type Outcome string

const (
	// OutcomeResolved means a non-zero price was extracted.
	OutcomeResolved Outcome = "resolved"
	// OutcomeBlocked means the page looks like a bot challenge: zero price
	// and a title containing challenge wording.
	OutcomeBlocked Outcome = "blocked"
	// OutcomeNoPrice means no numeric price could be derived; treat as an
	// unsupported page layout, not a free product.
	OutcomeNoPrice Outcome = "no_price"
)

// ClassifyOutcome inspects an assembled snapshot and reports whether its
// price can be trusted.
func ClassifyOutcome(product *types.ScrapedProduct) Outcome {
	if product.Price > 0 {
		return OutcomeResolved
	}
	if strings.Contains(strings.ToLower(product.Title), "robot") {
		return OutcomeBlocked
	}
	return OutcomeNoPrice
}
