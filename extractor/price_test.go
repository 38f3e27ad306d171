package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		// US format: last separator is the decimal point.
		{"1,234.56", 1234.56},
		// European format: same value, separators swapped.
		{"1.234,56", 1234.56},
		// Lone comma with two trailing digits reads as a decimal.
		{"12,34", 12.34},
		// Lone comma otherwise is a thousands separator.
		{"1,234", 1234},
		{"1,234,567", 1234567},
		// Currency symbols and whitespace are stripped.
		{"₹999", 999},
		{"$ 49.99", 49.99},
		{"1 299,00 kr", 1299},
		{"£1,099.00", 1099},
		// Plain numbers pass through.
		{"999", 999},
		{"12.5", 12.5},
		// Unparsable input yields the zero sentinel.
		{"garbage", 0},
		{"", 0},
		{"...", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePrice(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizePrice_AmbiguousLoneComma(t *testing.T) {
	// Known ambiguity: a genuine thousands value whose text happens to end
	// in two digits after the comma is read as a decimal. The source text
	// does not disambiguate further.
	assert.Equal(t, 12.34, NormalizePrice("12,34"))
	assert.Equal(t, float64(12340), NormalizePrice("12,340"))
}
