package ledger

import (
	"fmt"
	"strings"
)

// Currency is one of the two currencies the shop operates in.
// Amounts are never converted between them; every report carries
// parallel totals per currency.
type Currency string

const (
	BOB Currency = "BOB" // Bolivianos
	USD Currency = "USD" // US Dollars
)

// Currencies returns both currencies in display order.
func Currencies() []Currency {
	return []Currency{BOB, USD}
}

// currencyLabels maps the spellings observed in the source data to
// canonical codes. Matching is case-insensitive.
var currencyLabels = map[string]Currency{
	"bob":        BOB,
	"bs":         BOB,
	"bs.":        BOB,
	"boliviano":  BOB,
	"bolivianos": BOB,
	"usd":        USD,
	"$us":        USD,
	"us$":        USD,
	"dolar":      USD,
	"dólar":      USD,
	"dolares":    USD,
	"dólares":    USD,
}

// ParseCurrency maps a raw currency label to a canonical code.
// Returns false if the label is empty or not recognized.
func ParseCurrency(label string) (Currency, bool) {
	c, ok := currencyLabels[strings.ToLower(strings.TrimSpace(label))]
	return c, ok
}

// ResolveCurrency resolves a raw label in the context of a category.
// An unrecognized or empty label falls back to the category's default
// currency; if the category has none, the record is ambiguous and must
// not be guessed.
func ResolveCurrency(label string, cat Category) (Currency, error) {
	if c, ok := ParseCurrency(label); ok {
		return c, nil
	}

	if def, ok := cat.DefaultCurrency(); ok {
		return def, nil
	}

	return "", fmt.Errorf("%w: %q", ErrAmbiguousCurrency, label)
}
