package classify

import (
	"time"

	"github.com/nmontano/shopledger/internal/ledger"
)

// DailyExpenseRecord is an ad-hoc disbursement logged day by day.
type DailyExpenseRecord struct {
	ID            int64
	Detail        string
	Amount        string
	Currency      string
	Method        string
	ReceiptNumber string
	SpentAt       time.Time
}

// DailyExpense classifies a daily disbursement.
func DailyExpense(rec DailyExpenseRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryDailyExpense

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.SpentAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   describe(rec.Detail, rec.ReceiptNumber),
		Counterparty:  "-",
		PaymentMethod: rec.Method,
		DocumentRef:   rec.ReceiptNumber,
	}, nil
}

// FixedExpenseRecord is a payment of a recurring fixed cost (rent,
// utilities, insurance).
type FixedExpenseRecord struct {
	ID       int64
	Name     string
	Amount   string
	Currency string
	Method   string
	PaidAt   time.Time
}

// FixedExpense classifies a fixed-cost payment.
func FixedExpense(rec FixedExpenseRecord) (ledger.Transaction, error) {
	const cat = ledger.CategoryFixedExpense

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	cur, err := ledger.ResolveCurrency(rec.Currency, cat)
	if err != nil {
		return ledger.Transaction{}, recordErr(cat, rec.ID, err)
	}

	who := counterparty(rec.Name)

	return ledger.Transaction{
		ID:            recordID(rec.ID),
		Date:          rec.PaidAt,
		Amount:        amount,
		Currency:      cur,
		Category:      cat,
		Description:   who,
		Counterparty:  who,
		PaymentMethod: rec.Method,
	}, nil
}
