package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical unit of money movement. Every source
// record is normalized into this shape before aggregation.
type Transaction struct {
	// ID is the source-local identifier. Unique within its source only.
	ID string

	// Date is the payment/occurrence date. Only the calendar date is
	// meaningful; any time-of-day component is ignored in comparisons.
	Date time.Time

	// Amount is a non-negative magnitude. The sign of the movement is
	// implied by the category's kind, never encoded here.
	Amount decimal.Decimal

	Currency Currency
	Category Category

	// Display metadata, all optional.
	Description   string
	Counterparty  string
	PaymentMethod string
	DocumentRef   string
}
