// Package classify normalizes the heterogeneous record shapes of the
// shop's data sources into canonical ledger transactions. One pure
// function per source; each reads only the fields declared on its
// record type, so every mapping is testable without a live backend.
package classify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nmontano/shopledger/internal/ledger"
)

// parseAmount coerces a raw amount into a non-negative decimal.
// Negative and non-numeric values are malformed source data.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty", ledger.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ledger.ErrInvalidAmount, raw)
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative %q", ledger.ErrInvalidAmount, raw)
	}

	return d, nil
}

// counterparty substitutes a dash when the linked entity was missing.
// A payment whose parent row is gone still counts; only its display
// metadata degrades.
func counterparty(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "-"
	}

	return name
}

// describe joins the non-empty parts into a display description.
func describe(parts ...string) string {
	kept := parts[:0:0]

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && p != "-" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " - ")
}

func recordID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func recordErr(cat ledger.Category, id int64, err error) error {
	return &ledger.RecordError{Category: cat, RecordID: recordID(id), Err: err}
}
