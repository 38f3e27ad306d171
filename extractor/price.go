package extractor

import (
	"strconv"
	"strings"
)

// NormalizePrice converts a locale-formatted price string into a canonical
// number. Currency symbols and whitespace are stripped first; the remaining
// separators are disambiguated as follows:
//
//   - both "," and "." present: whichever occurs last is the decimal point,
//     the other is a thousands separator ("1.234,56" and "1,234.56" both
//     normalize to 1234.56)
//   - only "," present: exactly two digits after the last comma means it is
//     a decimal separator ("12,34" -> 12.34), otherwise every comma is a
//     thousands separator ("1,234" -> 1234)
//   - only "." or neither: parsed as a plain decimal
//
// Unparsable input yields 0. A lone comma followed by two digits is read as
// a decimal even when the value was genuinely thousands ("12,34" truncated
// from "12,340"); the page text does not carry enough information to tell
// those apart.
func NormalizePrice(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	hasComma := strings.Contains(cleaned, ",")
	hasPeriod := strings.Contains(cleaned, ".")

	switch {
	case hasComma && hasPeriod:
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			// European format: 1.234,56
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			// US format: 1,234.56
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasComma:
		idx := strings.LastIndex(cleaned, ",")
		if len(cleaned)-idx-1 == 2 {
			cleaned = strings.ReplaceAll(cleaned[:idx], ",", "") + "." + cleaned[idx+1:]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
